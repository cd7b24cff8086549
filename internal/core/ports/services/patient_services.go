package services

import (
	"context"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
)

// PatientSvcFacade covers the patient master records.
type PatientSvcFacade interface {
	CreatePatient(ctx context.Context, req dto.CreatePatientRequest) (*domain.Patient, error)
	GetPatientByID(ctx context.Context, patientID string) (*domain.Patient, error)
	ListPatients(ctx context.Context) ([]domain.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, req dto.UpdatePatientRequest) (*domain.Patient, error)
}
