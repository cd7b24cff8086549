package services

import (
	"context"
	"io"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
)

// FileUpload carries one incoming upload stream plus its declared metadata.
type FileUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
	Category    string
	Description string
	DateTaken   *time.Time
}

// MedicalFileSvcFacade is the file ingestion component: it validates, stores
// and indexes uploaded medical files per patient.
type MedicalFileSvcFacade interface {
	// Upload validates and stores one file for a patient. Failure modes:
	// missing patient (apperrors.ErrNotFound), empty filename or payload
	// (apperrors.ErrValidation), extension outside the accepted sets
	// (apperrors.ErrUnsupportedFileType), oversized payload
	// (apperrors.ErrValidation), disk write or verification failure
	// (apperrors.ErrStorage, no row is created).
	Upload(ctx context.Context, patientID string, actor domain.Identity, upload FileUpload) (*domain.MedicalFile, error)

	// GetFileByID retrieves one file's metadata.
	GetFileByID(ctx context.Context, fileID string) (*domain.MedicalFile, error)

	// GetServableFile retrieves a file whose stored artifact is confirmed
	// present; a row whose artifact has gone missing from the store returns
	// apperrors.ErrNotFound.
	GetServableFile(ctx context.Context, fileID string) (*domain.MedicalFile, error)

	// ListPatientFiles lists a patient's files, optionally filtered by
	// category (empty string means all).
	ListPatientFiles(ctx context.Context, patientID string, category string) ([]domain.MedicalFile, error)

	// UpdateFile edits a file's metadata.
	UpdateFile(ctx context.Context, fileID string, req dto.UpdateFileRequest) (*domain.MedicalFile, error)

	// DeleteFile removes the on-disk artifact first, then the row. A missing
	// artifact is logged and tolerated; any other storage failure aborts
	// before the row is touched.
	DeleteFile(ctx context.Context, fileID string) error

	// PatientFileStats aggregates one patient's files.
	PatientFileStats(ctx context.Context, patientID string) (*domain.FileStats, error)
}
