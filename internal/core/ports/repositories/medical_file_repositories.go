package repositories

import (
	"context"
	"io"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
)

// MedicalFileRepository persists medical file metadata rows. The rows are the
// sole source of truth for where the stored bytes live.
type MedicalFileRepository interface {
	// SaveFile persists a new medical file row.
	SaveFile(ctx context.Context, file domain.MedicalFile) error

	// FindFileByID retrieves a file row by ID, with patient and uploader
	// names projected in.
	FindFileByID(ctx context.Context, fileID string) (*domain.MedicalFile, error)

	// FindFilesByPatient retrieves a patient's files, newest upload first,
	// optionally filtered by category (empty means all).
	FindFilesByPatient(ctx context.Context, patientID string, category domain.FileCategory) ([]domain.MedicalFile, error)

	// UpdateFile updates the editable metadata of a file row.
	UpdateFile(ctx context.Context, file domain.MedicalFile) error

	// DeleteFile removes a file row.
	DeleteFile(ctx context.Context, fileID string) error

	// FileStats aggregates one patient's files by category and type.
	FileStats(ctx context.Context, patientID string) (*domain.FileStats, error)
}

// FileStore owns the on-disk artifacts referenced by medical file rows.
type FileStore interface {
	// Save writes the stream under the patient's directory (created lazily)
	// and verifies the written size before returning the stored path.
	Save(ctx context.Context, patientID string, storedName string, r io.Reader) (path string, size int64, err error)

	// Remove deletes a stored artifact. A missing artifact returns
	// apperrors.ErrNotFound so callers can decide whether that is fatal.
	Remove(ctx context.Context, path string) error

	// Exists reports whether the artifact is present on disk.
	Exists(path string) bool
}
