package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
)

// LocalStore keeps medical file artifacts on the local filesystem under one
// root, with a patient_{id} directory per patient created on first upload.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create upload root %s: %v", apperrors.ErrStorage, root, err)
	}
	return &LocalStore{root: root}, nil
}

var _ portsrepo.FileStore = (*LocalStore)(nil)

func (s *LocalStore) patientDir(patientID string) string {
	return filepath.Join(s.root, "patient_"+patientID)
}

// Save streams the upload to disk and verifies the written size against a
// fresh stat before reporting success. A partial write leaves no artifact
// behind.
func (s *LocalStore) Save(ctx context.Context, patientID string, storedName string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	dir := s.patientDir(patientID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("%w: failed to create patient directory: %v", apperrors.ErrStorage, err)
	}

	path := filepath.Join(dir, storedName)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("%w: failed to create %s: %v", apperrors.ErrStorage, path, err)
	}

	written, err := io.Copy(dst, r)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("%w: failed to write %s: %v", apperrors.ErrStorage, path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("%w: written file missing at %s: %v", apperrors.ErrStorage, path, err)
	}
	if info.Size() != written {
		os.Remove(path)
		return "", 0, fmt.Errorf("%w: size mismatch for %s: wrote %d, stat %d", apperrors.ErrStorage, path, written, info.Size())
	}

	return path, written, nil
}

func (s *LocalStore) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("%w: failed to remove %s: %v", apperrors.ErrStorage, path, err)
	}
	return nil
}

func (s *LocalStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
