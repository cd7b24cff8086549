package dto

import (
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
)

// UploadFileForm carries the multipart form fields accompanying an upload.
// The file part itself is read from the request directly.
type UploadFileForm struct {
	Category    string `form:"category"`
	Description string `form:"description"`
	DateTaken   string `form:"date_taken" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateFileRequest carries a metadata edit for a stored file.
type UpdateFileRequest struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
	DateTaken   *string `json:"date_taken" binding:"omitempty,datetime=2006-01-02"`
}

// FileResponse is the projection of a stored medical file.
type FileResponse struct {
	ID           string     `json:"id"`
	PatientID    string     `json:"patient_id"`
	PatientName  string     `json:"patient_name,omitempty"`
	UploadedBy   string     `json:"uploaded_by"`
	UploaderName string     `json:"uploader_name,omitempty"`
	FileName     string     `json:"file_name"`
	FileType     string     `json:"file_type"`
	FileSize     int64      `json:"file_size"`
	MimeType     string     `json:"mime_type"`
	Category     string     `json:"category"`
	CategoryAr   string     `json:"category_ar"`
	Description  string     `json:"description"`
	DateTaken    *time.Time `json:"date_taken,omitempty"`
	UploadedAt   time.Time  `json:"uploaded_at"`
}

// ToFileResponse converts a domain.MedicalFile to its projection. The stored
// path stays server-side; clients fetch bytes through the download endpoints.
func ToFileResponse(file *domain.MedicalFile) FileResponse {
	return FileResponse{
		ID:           file.FileID,
		PatientID:    file.PatientID,
		PatientName:  file.PatientName,
		UploadedBy:   file.UploadedBy,
		UploaderName: file.UploaderName,
		FileName:     file.FileName,
		FileType:     string(file.FileType),
		FileSize:     file.FileSize,
		MimeType:     file.MimeType,
		Category:     string(file.Category),
		CategoryAr:   file.Category.ArabicLabel(),
		Description:  file.Description,
		DateTaken:    file.DateTaken,
		UploadedAt:   file.UploadedAt,
	}
}

// ToFileResponseList converts a slice of domain medical files.
func ToFileResponseList(files []domain.MedicalFile) []FileResponse {
	out := make([]FileResponse, len(files))
	for i := range files {
		out[i] = ToFileResponse(&files[i])
	}
	return out
}

// FileUploadResponse wraps a successful upload.
type FileUploadResponse struct {
	Message string       `json:"message"`
	File    FileResponse `json:"file"`
}

// FileStatsResponse is the aggregation of one patient's files.
type FileStatsResponse struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
	ByType     map[string]int `json:"by_type"`
	TotalSize  int64          `json:"total_size"`
}

// ToFileStatsResponse converts domain.FileStats, normalising nil maps to
// empty ones so the JSON is always {} rather than null.
func ToFileStatsResponse(stats domain.FileStats) FileStatsResponse {
	out := FileStatsResponse{
		Total:      stats.Total,
		ByCategory: map[string]int{},
		ByType:     map[string]int{},
		TotalSize:  stats.TotalSize,
	}
	for category, n := range stats.ByCategory {
		out.ByCategory[string(category)] = n
	}
	for fileType, n := range stats.ByType {
		out.ByType[string(fileType)] = n
	}
	return out
}

// CategoryResponse is one entry of the fixed category enumeration.
type CategoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
