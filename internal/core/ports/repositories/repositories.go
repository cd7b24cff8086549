package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo       UserRepository
	SessionRepo    SessionRepository
	InviteRepo     InviteRepository
	PatientRepo    PatientRepository
	VisitRepo      ClinicVisitRepository
	AdmissionRepo  WardAdmissionRepository
	SurgeryRepo    SurgeryRepository
	EmergencyRepo  EmergencyCaseRepository
	FileRepo       MedicalFileRepository
	FileStore      FileStore
	StatisticsRepo StatisticsRepository
}
