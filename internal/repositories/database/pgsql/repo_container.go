package pgsql

import (
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository over the shared pool. The
// file store is filesystem-backed and injected by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, fileStore portsrepo.FileStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       NewUserRepository(dbPool),
		SessionRepo:    NewSessionRepository(dbPool),
		InviteRepo:     NewInviteRepository(dbPool),
		PatientRepo:    NewPatientRepository(dbPool),
		VisitRepo:      NewClinicVisitRepository(dbPool),
		AdmissionRepo:  NewWardAdmissionRepository(dbPool),
		SurgeryRepo:    NewSurgeryRepository(dbPool),
		EmergencyRepo:  NewEmergencyCaseRepository(dbPool),
		FileRepo:       NewMedicalFileRepository(dbPool),
		FileStore:      fileStore,
		StatisticsRepo: NewStatisticsRepository(dbPool),
	}
}
