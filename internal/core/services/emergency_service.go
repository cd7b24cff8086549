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

type emergencyService struct {
	caseRepo    portsrepo.EmergencyCaseRepository
	patientRepo portsrepo.PatientRepository
}

// NewEmergencyService creates the emergency department service.
func NewEmergencyService(caseRepo portsrepo.EmergencyCaseRepository, patientRepo portsrepo.PatientRepository) portssvc.EmergencySvcFacade {
	return &emergencyService{caseRepo: caseRepo, patientRepo: patientRepo}
}

var _ portssvc.EmergencySvcFacade = (*emergencyService)(nil)

func (s *emergencyService) CreateCase(ctx context.Context, req dto.CreateEmergencyCaseRequest) (*domain.EmergencyCase, error) {
	if err := requirePatient(ctx, s.patientRepo, req.PatientID); err != nil {
		return nil, err
	}

	priority := domain.EmergencyPriority(req.Priority)
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", apperrors.ErrValidation, req.Priority)
	}

	status := domain.EmergencyStatus(req.Status)
	if req.Status == "" {
		status = domain.EmergencyWaiting
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown emergency status %q", apperrors.ErrValidation, req.Status)
	}

	now := time.Now()
	emergency := domain.EmergencyCase{
		CaseID:            uuid.NewString(),
		PatientID:         req.PatientID,
		ArrivalTime:       now,
		Complaint:         req.Complaint,
		Priority:          priority,
		Status:            status,
		VitalSigns:        req.VitalSigns,
		InitialAssessment: req.InitialAssessment,
		Decision:          req.Decision,
		Notes:             req.Notes,
		CreatedAt:         now,
	}

	if err := s.caseRepo.SaveCase(ctx, emergency); err != nil {
		return nil, fmt.Errorf("failed to create emergency case: %w", err)
	}
	return s.caseRepo.FindCaseByID(ctx, emergency.CaseID)
}

func (s *emergencyService) GetCaseByID(ctx context.Context, caseID string) (*domain.EmergencyCase, error) {
	emergency, err := s.caseRepo.FindCaseByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get emergency case: %w", err)
	}
	return emergency, nil
}

func (s *emergencyService) ListOpenCases(ctx context.Context) ([]domain.EmergencyCase, error) {
	cases, err := s.caseRepo.FindOpenCases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open emergency cases: %w", err)
	}
	return cases, nil
}

func (s *emergencyService) UpdateCase(ctx context.Context, caseID string, req dto.UpdateEmergencyCaseRequest) (*domain.EmergencyCase, error) {
	emergency, err := s.caseRepo.FindCaseByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load emergency case for update: %w", err)
	}

	if req.Complaint != nil {
		emergency.Complaint = *req.Complaint
	}
	if req.Priority != nil {
		priority := domain.EmergencyPriority(*req.Priority)
		if !priority.Valid() {
			return nil, fmt.Errorf("%w: unknown priority %q", apperrors.ErrValidation, *req.Priority)
		}
		emergency.Priority = priority
	}
	if req.Status != nil {
		next := domain.EmergencyStatus(*req.Status)
		if !next.Valid() {
			return nil, fmt.Errorf("%w: unknown emergency status %q", apperrors.ErrValidation, *req.Status)
		}
		if !emergency.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: emergency status cannot move from %q to %q", apperrors.ErrValidation, emergency.Status, next)
		}
		emergency.Status = next
	}
	if req.VitalSigns != nil {
		emergency.VitalSigns = *req.VitalSigns
	}
	if req.InitialAssessment != nil {
		emergency.InitialAssessment = *req.InitialAssessment
	}
	if req.Decision != nil {
		emergency.Decision = *req.Decision
	}
	if req.Notes != nil {
		emergency.Notes = *req.Notes
	}

	if err := s.caseRepo.UpdateCase(ctx, *emergency); err != nil {
		return nil, fmt.Errorf("failed to update emergency case: %w", err)
	}
	return emergency, nil
}
