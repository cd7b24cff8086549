package services

import (
	"context"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
)

// ClinicVisitSvcFacade covers outpatient visit records.
type ClinicVisitSvcFacade interface {
	CreateVisit(ctx context.Context, req dto.CreateClinicVisitRequest) (*domain.ClinicVisit, error)
	GetVisitByID(ctx context.Context, visitID string) (*domain.ClinicVisit, error)
	ListVisits(ctx context.Context) ([]domain.ClinicVisit, error)
	UpdateVisit(ctx context.Context, visitID string, req dto.UpdateClinicVisitRequest) (*domain.ClinicVisit, error)
}

// WardAdmissionSvcFacade covers inpatient stays.
type WardAdmissionSvcFacade interface {
	CreateAdmission(ctx context.Context, req dto.CreateWardAdmissionRequest) (*domain.WardAdmission, error)
	GetAdmissionByID(ctx context.Context, admissionID string) (*domain.WardAdmission, error)
	// ListCurrentAdmissions returns only patients still on the ward.
	ListCurrentAdmissions(ctx context.Context) ([]domain.WardAdmission, error)
	UpdateAdmission(ctx context.Context, admissionID string, req dto.UpdateWardAdmissionRequest) (*domain.WardAdmission, error)
}

// SurgerySvcFacade covers surgery scheduling and progression.
type SurgerySvcFacade interface {
	CreateSurgery(ctx context.Context, req dto.CreateSurgeryRequest) (*domain.Surgery, error)
	GetSurgeryByID(ctx context.Context, surgeryID string) (*domain.Surgery, error)
	ListSurgeries(ctx context.Context) ([]domain.Surgery, error)
	UpdateSurgery(ctx context.Context, surgeryID string, req dto.UpdateSurgeryRequest) (*domain.Surgery, error)
}

// EmergencySvcFacade covers emergency-department encounters.
type EmergencySvcFacade interface {
	CreateCase(ctx context.Context, req dto.CreateEmergencyCaseRequest) (*domain.EmergencyCase, error)
	GetCaseByID(ctx context.Context, caseID string) (*domain.EmergencyCase, error)
	// ListOpenCases returns cases not yet discharged.
	ListOpenCases(ctx context.Context) ([]domain.EmergencyCase, error)
	UpdateCase(ctx context.Context, caseID string, req dto.UpdateEmergencyCaseRequest) (*domain.EmergencyCase, error)
}

// StatisticsSvcFacade computes the dashboard summary.
type StatisticsSvcFacade interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}
