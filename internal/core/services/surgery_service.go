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

type surgeryService struct {
	surgeryRepo portsrepo.SurgeryRepository
	patientRepo portsrepo.PatientRepository
}

// NewSurgeryService creates the surgery scheduling service.
func NewSurgeryService(surgeryRepo portsrepo.SurgeryRepository, patientRepo portsrepo.PatientRepository) portssvc.SurgerySvcFacade {
	return &surgeryService{surgeryRepo: surgeryRepo, patientRepo: patientRepo}
}

var _ portssvc.SurgerySvcFacade = (*surgeryService)(nil)

func (s *surgeryService) CreateSurgery(ctx context.Context, req dto.CreateSurgeryRequest) (*domain.Surgery, error) {
	if err := requirePatient(ctx, s.patientRepo, req.PatientID); err != nil {
		return nil, err
	}

	surgeryDate, err := parseDate(req.SurgeryDate)
	if err != nil {
		return nil, err
	}

	status := domain.SurgeryStatus(req.Status)
	if req.Status == "" {
		status = domain.SurgeryScheduled
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown surgery status %q", apperrors.ErrValidation, req.Status)
	}

	surgery := domain.Surgery{
		SurgeryID:      uuid.NewString(),
		PatientID:      req.PatientID,
		SurgeryType:    req.SurgeryType,
		SurgeryDate:    surgeryDate,
		SurgeryTime:    req.SurgeryTime,
		Duration:       req.Duration,
		OperatingRoom:  req.OperatingRoom,
		AnesthesiaType: req.AnesthesiaType,
		Status:         status,
		PreOpNotes:     req.PreOpNotes,
		PostOpNotes:    req.PostOpNotes,
		Complications:  req.Complications,
		CreatedAt:      time.Now(),
	}

	if err := s.surgeryRepo.SaveSurgery(ctx, surgery); err != nil {
		return nil, fmt.Errorf("failed to create surgery: %w", err)
	}
	return s.surgeryRepo.FindSurgeryByID(ctx, surgery.SurgeryID)
}

func (s *surgeryService) GetSurgeryByID(ctx context.Context, surgeryID string) (*domain.Surgery, error) {
	surgery, err := s.surgeryRepo.FindSurgeryByID(ctx, surgeryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get surgery: %w", err)
	}
	return surgery, nil
}

func (s *surgeryService) ListSurgeries(ctx context.Context) ([]domain.Surgery, error) {
	surgeries, err := s.surgeryRepo.FindSurgeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list surgeries: %w", err)
	}
	return surgeries, nil
}

func (s *surgeryService) UpdateSurgery(ctx context.Context, surgeryID string, req dto.UpdateSurgeryRequest) (*domain.Surgery, error) {
	surgery, err := s.surgeryRepo.FindSurgeryByID(ctx, surgeryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load surgery for update: %w", err)
	}

	if req.SurgeryType != nil {
		surgery.SurgeryType = *req.SurgeryType
	}
	if req.SurgeryDate != nil {
		surgeryDate, err := parseDate(*req.SurgeryDate)
		if err != nil {
			return nil, err
		}
		surgery.SurgeryDate = surgeryDate
	}
	if req.SurgeryTime != nil {
		surgery.SurgeryTime = *req.SurgeryTime
	}
	if req.Duration != nil {
		surgery.Duration = *req.Duration
	}
	if req.OperatingRoom != nil {
		surgery.OperatingRoom = *req.OperatingRoom
	}
	if req.AnesthesiaType != nil {
		surgery.AnesthesiaType = *req.AnesthesiaType
	}
	if req.Status != nil {
		next := domain.SurgeryStatus(*req.Status)
		if !next.Valid() {
			return nil, fmt.Errorf("%w: unknown surgery status %q", apperrors.ErrValidation, *req.Status)
		}
		if !surgery.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: surgery status cannot move from %q to %q", apperrors.ErrValidation, surgery.Status, next)
		}
		surgery.Status = next
	}
	if req.PreOpNotes != nil {
		surgery.PreOpNotes = *req.PreOpNotes
	}
	if req.PostOpNotes != nil {
		surgery.PostOpNotes = *req.PostOpNotes
	}
	if req.Complications != nil {
		surgery.Complications = *req.Complications
	}

	if err := s.surgeryRepo.UpdateSurgery(ctx, *surgery); err != nil {
		return nil, fmt.Errorf("failed to update surgery: %w", err)
	}
	return surgery, nil
}
