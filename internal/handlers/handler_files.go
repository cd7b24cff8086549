package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/alnahhas/surgery_clinic_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fileHandler handles medical file uploads, metadata and byte serving.
type fileHandler struct {
	fileService portssvc.MedicalFileSvcFacade
}

func newFileHandler(fs portssvc.MedicalFileSvcFacade) *fileHandler {
	return &fileHandler{fileService: fs}
}

// registerPublicFileRoutes registers the read-only file endpoints, which the
// viewing front end calls without a session.
func registerPublicFileRoutes(rg *gin.RouterGroup, fileService portssvc.MedicalFileSvcFacade) {
	h := newFileHandler(fileService)

	rg.GET("/patients/:id/files", h.listPatientFiles)
	rg.GET("/patients/:id/files/stats", h.patientFileStats)
	rg.GET("/files/categories", h.listCategories)
	rg.GET("/files/:id", h.getFile)
	rg.GET("/files/:id/download", h.downloadFile)
	rg.GET("/files/:id/view", h.viewFile)
}

// registerSessionFileRoutes registers the mutating file endpoints.
func registerSessionFileRoutes(rg *gin.RouterGroup, fileService portssvc.MedicalFileSvcFacade) {
	h := newFileHandler(fileService)

	rg.POST("/patients/:id/files/upload", h.uploadFile)
	rg.PUT("/files/:id", h.updateFile)
	rg.DELETE("/files/:id", h.deleteFile)
}

// uploadFile godoc
// @Summary Upload a medical file
// @Description Accepts image, pdf and document extensions up to the configured size limit
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Patient ID"
// @Param file formData file true "The file"
// @Param category formData string false "File category"
// @Param description formData string false "Description"
// @Param date_taken formData string false "Date taken (YYYY-MM-DD)"
// @Success 201 {object} dto.FileUploadResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /patients/{id}/files/upload [post]
func (h *fileHandler) uploadFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "يجب تسجيل الدخول", Code: "unauthenticated"})
		return
	}

	var form dto.UploadFileForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "لم يتم إرفاق ملف", Code: "validation_error"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file part", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "تعذر قراءة الملف المرفق", Code: "validation_error"})
		return
	}
	defer src.Close()

	var dateTaken *time.Time
	if form.DateTaken != "" {
		t, err := time.Parse("2006-01-02", form.DateTaken)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "بيانات غير صالحة", Code: "validation_error"})
			return
		}
		dateTaken = &t
	}

	file, err := h.fileService.Upload(c.Request.Context(), c.Param("id"), *identity, portssvc.FileUpload{
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     src,
		Category:    form.Category,
		Description: form.Description,
		DateTaken:   dateTaken,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Medical file uploaded", slog.String("file_id", file.FileID), slog.String("patient_id", file.PatientID))
	c.JSON(http.StatusCreated, dto.FileUploadResponse{
		Message: "تم رفع الملف بنجاح",
		File:    dto.ToFileResponse(file),
	})
}

// listPatientFiles godoc
// @Summary List a patient's files
// @Tags files
// @Produce json
// @Param id path string true "Patient ID"
// @Param category query string false "Filter by category"
// @Success 200 {array} dto.FileResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /patients/{id}/files [get]
func (h *fileHandler) listPatientFiles(c *gin.Context) {
	files, err := h.fileService.ListPatientFiles(c.Request.Context(), c.Param("id"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFileResponseList(files))
}

// patientFileStats godoc
// @Summary Aggregate a patient's files
// @Tags files
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} dto.FileStatsResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /patients/{id}/files/stats [get]
func (h *fileHandler) patientFileStats(c *gin.Context) {
	stats, err := h.fileService.PatientFileStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFileStatsResponse(*stats))
}

// listCategories godoc
// @Summary List file categories
// @Tags files
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /files/categories [get]
func (h *fileHandler) listCategories(c *gin.Context) {
	categories := make([]dto.CategoryResponse, 0, len(domain.FileCategories))
	for _, category := range domain.FileCategories {
		categories = append(categories, dto.CategoryResponse{
			Value: string(category),
			Label: category.ArabicLabel(),
		})
	}
	c.JSON(http.StatusOK, categories)
}

// getFile godoc
// @Summary Get a file's metadata
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} dto.FileResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /files/{id} [get]
func (h *fileHandler) getFile(c *gin.Context) {
	file, err := h.fileService.GetFileByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFileResponse(file))
}

// loadServableFile resolves the row with its artifact confirmed present, so
// no bytes are served for a row whose file has gone missing.
func (h *fileHandler) loadServableFile(c *gin.Context) (*domain.MedicalFile, bool) {
	file, err := h.fileService.GetServableFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return file, true
}

// downloadFile godoc
// @Summary Download a file
// @Description Serves the stored bytes as an attachment under the original filename
// @Tags files
// @Produce octet-stream
// @Param id path string true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} handlers.ErrorResponse
// @Router /files/{id}/download [get]
func (h *fileHandler) downloadFile(c *gin.Context) {
	file, ok := h.loadServableFile(c)
	if !ok {
		return
	}
	c.FileAttachment(file.FilePath, file.FileName)
}

// viewFile godoc
// @Summary View a file inline
// @Tags files
// @Produce octet-stream
// @Param id path string true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} handlers.ErrorResponse
// @Router /files/{id}/view [get]
func (h *fileHandler) viewFile(c *gin.Context) {
	file, ok := h.loadServableFile(c)
	if !ok {
		return
	}
	if file.MimeType != "" {
		c.Header("Content-Type", file.MimeType)
	}
	c.File(file.FilePath)
}

// updateFile godoc
// @Summary Edit a file's metadata
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "File ID"
// @Param file body dto.UpdateFileRequest true "Editable fields"
// @Success 200 {object} dto.FileResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /files/{id} [put]
func (h *fileHandler) updateFile(c *gin.Context) {
	var req dto.UpdateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	file, err := h.fileService.UpdateFile(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFileResponse(file))
}

// deleteFile godoc
// @Summary Delete a file
// @Description Removes the stored artifact first, then the metadata row
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /files/{id} [delete]
func (h *fileHandler) deleteFile(c *gin.Context) {
	if err := h.fileService.DeleteFile(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم حذف الملف"})
}
