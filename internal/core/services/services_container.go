package services

import (
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.SessionRepo)
	container.Registration = NewRegistrationService(cfg, repos.UserRepo, repos.InviteRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Patient = NewPatientService(repos.PatientRepo)
	container.ClinicVisit = NewClinicVisitService(repos.VisitRepo, repos.PatientRepo)
	container.Admission = NewWardAdmissionService(repos.AdmissionRepo, repos.PatientRepo)
	container.Surgery = NewSurgeryService(repos.SurgeryRepo, repos.PatientRepo)
	container.Emergency = NewEmergencyService(repos.EmergencyRepo, repos.PatientRepo)
	container.MedicalFile = NewMedicalFileService(cfg, repos.FileRepo, repos.FileStore, repos.PatientRepo)
	container.Statistics = NewStatisticsService(repos.StatisticsRepo)

	return container
}
