package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// FileType is the coarse classification derived from a filename extension.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypePDF      FileType = "pdf"
	FileTypeDocument FileType = "document"
	FileTypeOther    FileType = "other"
)

// allowedExtensions maps each accepted file type to its extension set.
// Anything outside these sets classifies as FileTypeOther, which uploads
// reject.
var allowedExtensions = map[FileType]map[string]bool{
	FileTypeImage:    {"png": true, "jpg": true, "jpeg": true, "gif": true, "bmp": true, "tiff": true, "dicom": true},
	FileTypePDF:      {"pdf": true},
	FileTypeDocument: {"doc": true, "docx": true, "xls": true, "xlsx": true, "txt": true},
}

// FileTypeForName classifies a filename by its extension.
func FileTypeForName(filename string) FileType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return FileTypeOther
	}
	for fileType, exts := range allowedExtensions {
		if exts[ext] {
			return fileType
		}
	}
	return FileTypeOther
}

// Uploadable reports whether files of this type are accepted at upload time.
func (t FileType) Uploadable() bool {
	return t == FileTypeImage || t == FileTypePDF || t == FileTypeDocument
}

// FileCategory is the medical classification of an attachment.
type FileCategory string

const (
	CategoryLabResults    FileCategory = "lab_results"
	CategoryCTScan        FileCategory = "ct_scan"
	CategoryXRay          FileCategory = "xray"
	CategorySurgicalImage FileCategory = "surgical_image"
	CategoryReport        FileCategory = "report"
	CategoryOther         FileCategory = "other"
)

// FileCategories lists every category in display order.
var FileCategories = []FileCategory{
	CategoryLabResults,
	CategoryCTScan,
	CategoryXRay,
	CategorySurgicalImage,
	CategoryReport,
	CategoryOther,
}

var categoryLabels = map[FileCategory]string{
	CategoryLabResults:    "نتائج فحوصات",
	CategoryCTScan:        "أشعة مقطعية",
	CategoryXRay:          "أشعة سينية",
	CategorySurgicalImage: "صور جراحية",
	CategoryReport:        "تقرير طبي",
	CategoryOther:         "أخرى",
}

// Valid reports whether the category is one of the known values.
func (c FileCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ArabicLabel returns the display label for the category. Unknown categories
// fall back to their raw value.
func (c FileCategory) ArabicLabel() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// MedicalFile is a stored clinical attachment associated with one patient.
// The database row is the sole source of truth for where the bytes live.
type MedicalFile struct {
	FileID      string       `json:"id"`
	PatientID   string       `json:"patient_id"`
	UploadedBy  string       `json:"uploaded_by"`
	FileName    string       `json:"file_name"` // sanitized original name, for display/download
	FilePath    string       `json:"file_path"` // synthesized stored path, never reused
	FileType    FileType     `json:"file_type"`
	FileSize    int64        `json:"file_size"`
	MimeType    string       `json:"mime_type"`
	Category    FileCategory `json:"category"`
	Description string       `json:"description"`
	DateTaken   *time.Time   `json:"date_taken,omitempty"`
	UploadedAt  time.Time    `json:"uploaded_at"`

	// Projection fields populated on reads.
	PatientName  string `json:"patient_name,omitempty"`
	UploaderName string `json:"uploader_name,omitempty"`
}

// FileStats is the aggregation of one patient's attachments.
type FileStats struct {
	Total      int                  `json:"total"`
	ByCategory map[FileCategory]int `json:"by_category"`
	ByType     map[FileType]int     `json:"by_type"`
	TotalSize  int64                `json:"total_size"`
}
