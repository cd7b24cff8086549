package models

import (
	"database/sql"
	"time"
)

// MedicalFile is the database row backing domain.MedicalFile.
type MedicalFile struct {
	FileID      string         `db:"file_id"`
	PatientID   string         `db:"patient_id"`
	UploadedBy  string         `db:"uploaded_by"`
	FileName    string         `db:"file_name"`
	FilePath    string         `db:"file_path"`
	FileType    string         `db:"file_type"`
	FileSize    int64          `db:"file_size"`
	MimeType    sql.NullString `db:"mime_type"`
	Category    string         `db:"category"`
	Description sql.NullString `db:"description"`
	DateTaken   sql.NullTime   `db:"date_taken"`
	UploadedAt  time.Time      `db:"uploaded_at"`
}
