package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// parseDate parses the YYYY-MM-DD wire format used by all record dates.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, value)
	}
	return t, nil
}

// requirePatient verifies the referenced patient exists before a record is
// created against them.
func requirePatient(ctx context.Context, patientRepo portsrepo.PatientRepository, patientID string) error {
	if _, err := patientRepo.FindPatientByID(ctx, patientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: patient %s", apperrors.ErrNotFound, patientID)
		}
		return fmt.Errorf("failed to verify patient: %w", err)
	}
	return nil
}

type clinicVisitService struct {
	visitRepo   portsrepo.ClinicVisitRepository
	patientRepo portsrepo.PatientRepository
}

// NewClinicVisitService creates the outpatient visit service.
func NewClinicVisitService(visitRepo portsrepo.ClinicVisitRepository, patientRepo portsrepo.PatientRepository) portssvc.ClinicVisitSvcFacade {
	return &clinicVisitService{visitRepo: visitRepo, patientRepo: patientRepo}
}

var _ portssvc.ClinicVisitSvcFacade = (*clinicVisitService)(nil)

func (s *clinicVisitService) CreateVisit(ctx context.Context, req dto.CreateClinicVisitRequest) (*domain.ClinicVisit, error) {
	if err := requirePatient(ctx, s.patientRepo, req.PatientID); err != nil {
		return nil, err
	}

	visitDate, err := parseDate(req.VisitDate)
	if err != nil {
		return nil, err
	}

	status := domain.VisitStatus(req.Status)
	if req.Status == "" {
		status = domain.VisitWaiting
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown visit status %q", apperrors.ErrValidation, req.Status)
	}

	visit := domain.ClinicVisit{
		VisitID:   uuid.NewString(),
		PatientID: req.PatientID,
		VisitDate: visitDate,
		VisitTime: req.VisitTime,
		VisitType: req.VisitType,
		Status:    status,
		Complaint: req.Complaint,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	if err := s.visitRepo.SaveVisit(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to create clinic visit: %w", err)
	}
	return s.visitRepo.FindVisitByID(ctx, visit.VisitID)
}

func (s *clinicVisitService) GetVisitByID(ctx context.Context, visitID string) (*domain.ClinicVisit, error) {
	visit, err := s.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get clinic visit: %w", err)
	}
	return visit, nil
}

func (s *clinicVisitService) ListVisits(ctx context.Context) ([]domain.ClinicVisit, error) {
	visits, err := s.visitRepo.FindVisits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinic visits: %w", err)
	}
	return visits, nil
}

func (s *clinicVisitService) UpdateVisit(ctx context.Context, visitID string, req dto.UpdateClinicVisitRequest) (*domain.ClinicVisit, error) {
	visit, err := s.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to load clinic visit for update: %w", err)
	}

	if req.VisitDate != nil {
		visitDate, err := parseDate(*req.VisitDate)
		if err != nil {
			return nil, err
		}
		visit.VisitDate = visitDate
	}
	if req.VisitTime != nil {
		visit.VisitTime = *req.VisitTime
	}
	if req.VisitType != nil {
		visit.VisitType = *req.VisitType
	}
	if req.Status != nil {
		next := domain.VisitStatus(*req.Status)
		if !next.Valid() {
			return nil, fmt.Errorf("%w: unknown visit status %q", apperrors.ErrValidation, *req.Status)
		}
		if !visit.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: visit status cannot move from %q to %q", apperrors.ErrValidation, visit.Status, next)
		}
		visit.Status = next
	}
	if req.Complaint != nil {
		visit.Complaint = *req.Complaint
	}
	if req.Diagnosis != nil {
		visit.Diagnosis = *req.Diagnosis
	}
	if req.Treatment != nil {
		visit.Treatment = *req.Treatment
	}
	if req.Notes != nil {
		visit.Notes = *req.Notes
	}

	if err := s.visitRepo.UpdateVisit(ctx, *visit); err != nil {
		return nil, fmt.Errorf("failed to update clinic visit: %w", err)
	}
	return visit, nil
}
