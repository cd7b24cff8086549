package repositories

import (
	"context"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
)

// ClinicVisitRepository persists outpatient visit records.
type ClinicVisitRepository interface {
	SaveVisit(ctx context.Context, visit domain.ClinicVisit) error
	FindVisitByID(ctx context.Context, visitID string) (*domain.ClinicVisit, error)
	// FindVisits retrieves all visits ordered by visit date, newest first.
	FindVisits(ctx context.Context) ([]domain.ClinicVisit, error)
	UpdateVisit(ctx context.Context, visit domain.ClinicVisit) error
}

// WardAdmissionRepository persists inpatient stay records.
type WardAdmissionRepository interface {
	SaveAdmission(ctx context.Context, admission domain.WardAdmission) error
	FindAdmissionByID(ctx context.Context, admissionID string) (*domain.WardAdmission, error)
	// FindAdmissionsByStatus retrieves admissions in the given status.
	FindAdmissionsByStatus(ctx context.Context, status domain.AdmissionStatus) ([]domain.WardAdmission, error)
	UpdateAdmission(ctx context.Context, admission domain.WardAdmission) error
}

// SurgeryRepository persists surgery records.
type SurgeryRepository interface {
	SaveSurgery(ctx context.Context, surgery domain.Surgery) error
	FindSurgeryByID(ctx context.Context, surgeryID string) (*domain.Surgery, error)
	// FindSurgeries retrieves all surgeries ordered by surgery date, newest first.
	FindSurgeries(ctx context.Context) ([]domain.Surgery, error)
	UpdateSurgery(ctx context.Context, surgery domain.Surgery) error
}

// EmergencyCaseRepository persists emergency-department encounters.
type EmergencyCaseRepository interface {
	SaveCase(ctx context.Context, emergency domain.EmergencyCase) error
	FindCaseByID(ctx context.Context, caseID string) (*domain.EmergencyCase, error)
	// FindOpenCases retrieves cases not yet discharged, newest arrival first.
	FindOpenCases(ctx context.Context) ([]domain.EmergencyCase, error)
	UpdateCase(ctx context.Context, emergency domain.EmergencyCase) error
}

// StatisticsRepository aggregates the dashboard counters.
type StatisticsRepository interface {
	// DashboardCounts computes the practice-wide summary for the given day.
	DashboardCounts(ctx context.Context, today time.Time) (*domain.DashboardStats, error)
}
