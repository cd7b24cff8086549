package repositories

import (
	"context"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
)

// PatientRepository persists patient master records.
type PatientRepository interface {
	// SavePatient persists a new patient. A duplicate national ID surfaces as
	// apperrors.ErrDuplicate.
	SavePatient(ctx context.Context, patient domain.Patient) error

	// FindPatientByID retrieves a patient by ID.
	FindPatientByID(ctx context.Context, patientID string) (*domain.Patient, error)

	// FindPatients retrieves all patients, newest first.
	FindPatients(ctx context.Context) ([]domain.Patient, error)

	// UpdatePatient updates an existing patient record.
	UpdatePatient(ctx context.Context, patient domain.Patient) error
}
