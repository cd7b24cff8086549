package services

import (
	"context"
	"fmt"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/google/uuid"
)

type patientService struct {
	patientRepo portsrepo.PatientRepository
}

// NewPatientService creates the patient master record service.
func NewPatientService(patientRepo portsrepo.PatientRepository) portssvc.PatientSvcFacade {
	return &patientService{patientRepo: patientRepo}
}

var _ portssvc.PatientSvcFacade = (*patientService)(nil)

func (s *patientService) CreatePatient(ctx context.Context, req dto.CreatePatientRequest) (*domain.Patient, error) {
	now := time.Now()
	patient := domain.Patient{
		PatientID:       uuid.NewString(),
		Name:            req.Name,
		Age:             req.Age,
		Phone:           req.Phone,
		NationalID:      req.NationalID,
		Gender:          req.Gender,
		BloodType:       req.BloodType,
		Allergies:       req.Allergies,
		ChronicDiseases: req.ChronicDiseases,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.patientRepo.SavePatient(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return &patient, nil
}

func (s *patientService) GetPatientByID(ctx context.Context, patientID string) (*domain.Patient, error) {
	patient, err := s.patientRepo.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient by ID: %w", err)
	}
	return patient, nil
}

func (s *patientService) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	patients, err := s.patientRepo.FindPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *patientService) UpdatePatient(ctx context.Context, patientID string, req dto.UpdatePatientRequest) (*domain.Patient, error) {
	patient, err := s.patientRepo.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient for update: %w", err)
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.NationalID != nil {
		patient.NationalID = *req.NationalID
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.BloodType != nil {
		patient.BloodType = *req.BloodType
	}
	if req.Allergies != nil {
		patient.Allergies = *req.Allergies
	}
	if req.ChronicDiseases != nil {
		patient.ChronicDiseases = *req.ChronicDiseases
	}
	patient.UpdatedAt = time.Now()

	if err := s.patientRepo.UpdatePatient(ctx, *patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}
