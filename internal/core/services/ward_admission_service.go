package services

import (
	"context"
	"fmt"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/google/uuid"
)

type wardAdmissionService struct {
	admissionRepo portsrepo.WardAdmissionRepository
	patientRepo   portsrepo.PatientRepository
}

// NewWardAdmissionService creates the inpatient stay service.
func NewWardAdmissionService(admissionRepo portsrepo.WardAdmissionRepository, patientRepo portsrepo.PatientRepository) portssvc.WardAdmissionSvcFacade {
	return &wardAdmissionService{admissionRepo: admissionRepo, patientRepo: patientRepo}
}

var _ portssvc.WardAdmissionSvcFacade = (*wardAdmissionService)(nil)

func (s *wardAdmissionService) CreateAdmission(ctx context.Context, req dto.CreateWardAdmissionRequest) (*domain.WardAdmission, error) {
	if err := requirePatient(ctx, s.patientRepo, req.PatientID); err != nil {
		return nil, err
	}

	now := time.Now()
	admission := domain.WardAdmission{
		AdmissionID:   uuid.NewString(),
		PatientID:     req.PatientID,
		AdmissionDate: now,
		RoomNumber:    req.RoomNumber,
		BedNumber:     req.BedNumber,
		Diagnosis:     req.Diagnosis,
		Condition:     req.Condition,
		Medications:   req.Medications,
		DailyNotes:    req.DailyNotes,
		Status:        domain.AdmissionInpatient,
		CreatedAt:     now,
	}

	if err := s.admissionRepo.SaveAdmission(ctx, admission); err != nil {
		return nil, fmt.Errorf("failed to create ward admission: %w", err)
	}
	return s.admissionRepo.FindAdmissionByID(ctx, admission.AdmissionID)
}

func (s *wardAdmissionService) GetAdmissionByID(ctx context.Context, admissionID string) (*domain.WardAdmission, error) {
	admission, err := s.admissionRepo.FindAdmissionByID(ctx, admissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ward admission: %w", err)
	}
	return admission, nil
}

func (s *wardAdmissionService) ListCurrentAdmissions(ctx context.Context) ([]domain.WardAdmission, error) {
	admissions, err := s.admissionRepo.FindAdmissionsByStatus(ctx, domain.AdmissionInpatient)
	if err != nil {
		return nil, fmt.Errorf("failed to list current admissions: %w", err)
	}
	return admissions, nil
}

func (s *wardAdmissionService) UpdateAdmission(ctx context.Context, admissionID string, req dto.UpdateWardAdmissionRequest) (*domain.WardAdmission, error) {
	admission, err := s.admissionRepo.FindAdmissionByID(ctx, admissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ward admission for update: %w", err)
	}

	if req.RoomNumber != nil {
		admission.RoomNumber = *req.RoomNumber
	}
	if req.BedNumber != nil {
		admission.BedNumber = *req.BedNumber
	}
	if req.Diagnosis != nil {
		admission.Diagnosis = *req.Diagnosis
	}
	if req.Condition != nil {
		admission.Condition = *req.Condition
	}
	if req.Medications != nil {
		admission.Medications = *req.Medications
	}
	if req.DailyNotes != nil {
		admission.DailyNotes = *req.DailyNotes
	}
	if req.Status != nil {
		next := domain.AdmissionStatus(*req.Status)
		if !next.Valid() {
			return nil, fmt.Errorf("%w: unknown admission status %q", apperrors.ErrValidation, *req.Status)
		}
		if !admission.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: admission status cannot move from %q to %q", apperrors.ErrValidation, admission.Status, next)
		}
		// Discharging stamps the discharge date exactly once.
		if next == domain.AdmissionDischarged && admission.DischargeDate == nil {
			now := time.Now()
			admission.DischargeDate = &now
		}
		admission.Status = next
	}

	if err := s.admissionRepo.UpdateAdmission(ctx, *admission); err != nil {
		return nil, fmt.Errorf("failed to update ward admission: %w", err)
	}
	return admission, nil
}
