package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/alnahhas/surgery_clinic_app/internal/middleware"
	"github.com/alnahhas/surgery_clinic_app/internal/platform/config"
	"github.com/alnahhas/surgery_clinic_app/internal/utils"
	"github.com/google/uuid"
)

type medicalFileService struct {
	cfg         *config.Config
	fileRepo    portsrepo.MedicalFileRepository
	fileStore   portsrepo.FileStore
	patientRepo portsrepo.PatientRepository
}

// NewMedicalFileService creates the file ingestion service.
func NewMedicalFileService(cfg *config.Config, fileRepo portsrepo.MedicalFileRepository, fileStore portsrepo.FileStore, patientRepo portsrepo.PatientRepository) portssvc.MedicalFileSvcFacade {
	return &medicalFileService{cfg: cfg, fileRepo: fileRepo, fileStore: fileStore, patientRepo: patientRepo}
}

var _ portssvc.MedicalFileSvcFacade = (*medicalFileService)(nil)

func (s *medicalFileService) Upload(ctx context.Context, patientID string, actor domain.Identity, upload portssvc.FileUpload) (*domain.MedicalFile, error) {
	if err := requirePatient(ctx, s.patientRepo, patientID); err != nil {
		return nil, err
	}

	originalName := filepath.Base(strings.TrimSpace(upload.Filename))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: missing filename", apperrors.ErrValidation)
	}
	if upload.Size <= 0 {
		return nil, fmt.Errorf("%w: empty file", apperrors.ErrValidation)
	}
	if upload.Size > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", apperrors.ErrValidation, s.cfg.MaxUploadBytes)
	}

	fileType := domain.FileTypeForName(originalName)
	if !fileType.Uploadable() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFileType, originalName)
	}

	category := domain.FileCategory(upload.Category)
	if upload.Category == "" {
		category = domain.CategoryOther
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, upload.Category)
	}

	// Stored names are random per upload, so identical originals never
	// collide on disk.
	random, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate stored name: %w", err)
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	storedName := fmt.Sprintf("%s_%s.%s", random, patientID, ext)

	path, size, err := s.fileStore.Save(ctx, patientID, storedName, upload.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}
	if size != upload.Size {
		if removeErr := s.fileStore.Remove(ctx, path); removeErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to remove truncated upload", slog.String("path", path), slog.String("error", removeErr.Error()))
		}
		return nil, fmt.Errorf("%w: upload truncated, expected %d bytes, stored %d", apperrors.ErrStorage, upload.Size, size)
	}

	file := domain.MedicalFile{
		FileID:      uuid.NewString(),
		PatientID:   patientID,
		UploadedBy:  actor.UserID,
		FileName:    originalName,
		FilePath:    path,
		FileType:    fileType,
		FileSize:    size,
		MimeType:    upload.ContentType,
		Category:    category,
		Description: upload.Description,
		DateTaken:   upload.DateTaken,
		UploadedAt:  time.Now(),
	}

	if err := s.fileRepo.SaveFile(ctx, file); err != nil {
		// The row is the source of truth; without it the artifact is garbage.
		if removeErr := s.fileStore.Remove(ctx, path); removeErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to remove orphaned upload", slog.String("path", path), slog.String("error", removeErr.Error()))
		}
		return nil, fmt.Errorf("failed to index uploaded file: %w", err)
	}

	return s.fileRepo.FindFileByID(ctx, file.FileID)
}

func (s *medicalFileService) GetFileByID(ctx context.Context, fileID string) (*domain.MedicalFile, error) {
	file, err := s.fileRepo.FindFileByID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get medical file: %w", err)
	}
	return file, nil
}

func (s *medicalFileService) GetServableFile(ctx context.Context, fileID string) (*domain.MedicalFile, error) {
	file, err := s.fileRepo.FindFileByID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load medical file for serving: %w", err)
	}
	if !s.fileStore.Exists(file.FilePath) {
		middleware.GetLoggerFromCtx(ctx).Warn("Stored file missing on disk", slog.String("path", file.FilePath), slog.String("file_id", fileID))
		return nil, fmt.Errorf("%w: stored artifact missing", apperrors.ErrNotFound)
	}
	return file, nil
}

func (s *medicalFileService) ListPatientFiles(ctx context.Context, patientID string, category string) ([]domain.MedicalFile, error) {
	if err := requirePatient(ctx, s.patientRepo, patientID); err != nil {
		return nil, err
	}
	if category != "" && !domain.FileCategory(category).Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
	}
	files, err := s.fileRepo.FindFilesByPatient(ctx, patientID, domain.FileCategory(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list patient files: %w", err)
	}
	return files, nil
}

func (s *medicalFileService) UpdateFile(ctx context.Context, fileID string, req dto.UpdateFileRequest) (*domain.MedicalFile, error) {
	file, err := s.fileRepo.FindFileByID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load medical file for update: %w", err)
	}

	if req.Category != nil {
		category := domain.FileCategory(*req.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, *req.Category)
		}
		file.Category = category
	}
	if req.Description != nil {
		file.Description = *req.Description
	}
	if req.DateTaken != nil {
		if *req.DateTaken == "" {
			file.DateTaken = nil
		} else {
			dateTaken, err := parseDate(*req.DateTaken)
			if err != nil {
				return nil, err
			}
			file.DateTaken = &dateTaken
		}
	}

	if err := s.fileRepo.UpdateFile(ctx, *file); err != nil {
		return nil, fmt.Errorf("failed to update medical file: %w", err)
	}
	return file, nil
}

func (s *medicalFileService) DeleteFile(ctx context.Context, fileID string) error {
	file, err := s.fileRepo.FindFileByID(ctx, fileID)
	if err != nil {
		return fmt.Errorf("failed to load medical file for deletion: %w", err)
	}

	// Artifact first, then row. A row without an artifact is a recoverable
	// inconsistency; an artifact without a row is invisible garbage.
	if err := s.fileStore.Remove(ctx, file.FilePath); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to remove stored file: %w", err)
		}
		middleware.GetLoggerFromCtx(ctx).Warn("Stored file already missing at deletion", slog.String("path", file.FilePath), slog.String("file_id", fileID))
	}

	if err := s.fileRepo.DeleteFile(ctx, fileID); err != nil {
		return fmt.Errorf("failed to delete medical file row: %w", err)
	}
	return nil
}

func (s *medicalFileService) PatientFileStats(ctx context.Context, patientID string) (*domain.FileStats, error) {
	if err := requirePatient(ctx, s.patientRepo, patientID); err != nil {
		return nil, err
	}
	stats, err := s.fileRepo.FileStats(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate patient files: %w", err)
	}
	return stats, nil
}
