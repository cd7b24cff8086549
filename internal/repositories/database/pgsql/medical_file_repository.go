package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	"github.com/alnahhas/surgery_clinic_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMedicalFileRepository struct {
	db *pgxpool.Pool
}

func NewMedicalFileRepository(db *pgxpool.Pool) portsrepo.MedicalFileRepository {
	return &PgxMedicalFileRepository{db: db}
}

var _ portsrepo.MedicalFileRepository = (*PgxMedicalFileRepository)(nil)

func toModelFile(d domain.MedicalFile) models.MedicalFile {
	return models.MedicalFile{
		FileID:      d.FileID,
		PatientID:   d.PatientID,
		UploadedBy:  d.UploadedBy,
		FileName:    d.FileName,
		FilePath:    d.FilePath,
		FileType:    string(d.FileType),
		FileSize:    d.FileSize,
		MimeType:    nullString(d.MimeType),
		Category:    string(d.Category),
		Description: nullString(d.Description),
		DateTaken:   nullTime(d.DateTaken),
		UploadedAt:  d.UploadedAt,
	}
}

// fileSelect joins the patient row and the uploading user so reads carry the
// display names without a second round trip.
const fileSelect = `
    SELECT f.file_id, f.patient_id, f.uploaded_by, f.file_name, f.file_path,
           f.file_type, f.file_size, f.mime_type, f.category, f.description,
           f.date_taken, f.uploaded_at,
           p.name, u.full_name
    FROM medical_files f
    JOIN patients p ON p.patient_id = f.patient_id
    JOIN users u ON u.user_id = f.uploaded_by
`

func scanFile(row pgx.Row) (*domain.MedicalFile, error) {
	var m models.MedicalFile
	var patientName, uploaderName string
	err := row.Scan(
		&m.FileID,
		&m.PatientID,
		&m.UploadedBy,
		&m.FileName,
		&m.FilePath,
		&m.FileType,
		&m.FileSize,
		&m.MimeType,
		&m.Category,
		&m.Description,
		&m.DateTaken,
		&m.UploadedAt,
		&patientName,
		&uploaderName,
	)
	if err != nil {
		return nil, err
	}
	file := domain.MedicalFile{
		FileID:       m.FileID,
		PatientID:    m.PatientID,
		UploadedBy:   m.UploadedBy,
		FileName:     m.FileName,
		FilePath:     m.FilePath,
		FileType:     domain.FileType(m.FileType),
		FileSize:     m.FileSize,
		MimeType:     stringOrEmpty(m.MimeType),
		Category:     domain.FileCategory(m.Category),
		Description:  stringOrEmpty(m.Description),
		DateTaken:    timePtr(m.DateTaken),
		UploadedAt:   m.UploadedAt,
		PatientName:  patientName,
		UploaderName: uploaderName,
	}
	return &file, nil
}

func (r *PgxMedicalFileRepository) SaveFile(ctx context.Context, file domain.MedicalFile) error {
	m := toModelFile(file)
	query := `
        INSERT INTO medical_files (file_id, patient_id, uploaded_by, file_name, file_path, file_type, file_size, mime_type, category, description, date_taken, uploaded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		m.FileID,
		m.PatientID,
		m.UploadedBy,
		m.FileName,
		m.FilePath,
		m.FileType,
		m.FileSize,
		m.MimeType,
		m.Category,
		m.Description,
		m.DateTaken,
		m.UploadedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "medical_files_file_path_key") {
			return fmt.Errorf("%w: file_path", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save medical file: %w", err)
	}
	return nil
}

func (r *PgxMedicalFileRepository) FindFileByID(ctx context.Context, fileID string) (*domain.MedicalFile, error) {
	query := fileSelect + ` WHERE f.file_id = $1;`
	file, err := scanFile(r.db.QueryRow(ctx, query, fileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find medical file by ID %s: %w", fileID, err)
	}
	return file, nil
}

func (r *PgxMedicalFileRepository) FindFilesByPatient(ctx context.Context, patientID string, category domain.FileCategory) ([]domain.MedicalFile, error) {
	query := fileSelect + ` WHERE f.patient_id = $1`
	args := []any{patientID}
	if category != "" {
		query += ` AND f.category = $2`
		args = append(args, string(category))
	}
	query += ` ORDER BY f.uploaded_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query medical files: %w", err)
	}
	defer rows.Close()

	files := []domain.MedicalFile{}
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medical file row: %w", err)
		}
		files = append(files, *file)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating medical file rows: %w", rows.Err())
	}
	return files, nil
}

func (r *PgxMedicalFileRepository) UpdateFile(ctx context.Context, file domain.MedicalFile) error {
	m := toModelFile(file)
	query := `
        UPDATE medical_files
        SET category = $2, description = $3, date_taken = $4
        WHERE file_id = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query, m.FileID, m.Category, m.Description, m.DateTaken)
	if err != nil {
		return fmt.Errorf("failed to update medical file: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("medical file not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMedicalFileRepository) DeleteFile(ctx context.Context, fileID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM medical_files WHERE file_id = $1;`, fileID)
	if err != nil {
		return fmt.Errorf("failed to delete medical file: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("medical file not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMedicalFileRepository) FileStats(ctx context.Context, patientID string) (*domain.FileStats, error) {
	stats := &domain.FileStats{
		ByCategory: map[domain.FileCategory]int{},
		ByType:     map[domain.FileType]int{},
	}

	byCategory := `
        SELECT category, COUNT(*), COALESCE(SUM(file_size), 0)
        FROM medical_files
        WHERE patient_id = $1
        GROUP BY category;
    `
	rows, err := r.db.Query(ctx, byCategory, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate files by category: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var category string
		var count int
		var size int64
		if err := rows.Scan(&category, &count, &size); err != nil {
			return nil, fmt.Errorf("failed to scan category aggregate: %w", err)
		}
		stats.ByCategory[domain.FileCategory(category)] = count
		stats.Total += count
		stats.TotalSize += size
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category aggregates: %w", rows.Err())
	}

	byType := `
        SELECT file_type, COUNT(*)
        FROM medical_files
        WHERE patient_id = $1
        GROUP BY file_type;
    `
	typeRows, err := r.db.Query(ctx, byType, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate files by type: %w", err)
	}
	defer typeRows.Close()
	for typeRows.Next() {
		var fileType string
		var count int
		if err := typeRows.Scan(&fileType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan type aggregate: %w", err)
		}
		stats.ByType[domain.FileType(fileType)] = count
	}
	if typeRows.Err() != nil {
		return nil, fmt.Errorf("error iterating type aggregates: %w", typeRows.Err())
	}

	return stats, nil
}
