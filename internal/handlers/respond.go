package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body. The message is what the Arabic
// front end shows; the code is what its logic switches on.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError maps a service error onto the uniform error body. Anything
// outside the known sentinels is logged and hidden behind a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "بيانات غير صالحة", Code: "validation_error"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "العنصر المطلوب غير موجود", Code: "not_found"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "يجب تسجيل الدخول", Code: "unauthenticated"})
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "الحساب معطل، راجع الإدارة", Code: "forbidden"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "غير مصرح لك بتنفيذ هذا الإجراء", Code: "forbidden"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "البيانات مستخدمة مسبقاً", Code: "conflict"})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "انتهت صلاحية الرمز", Code: "token_expired"})
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "نوع الملف غير مدعوم", Code: "unsupported_file_type"})
	case errors.Is(err, apperrors.ErrStorage):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "فشل حفظ الملف", Code: "storage_error"})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "حدث خطأ غير متوقع", Code: "internal_error"})
	}
}

// respondBindError reports a request body that failed binding or validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Request binding failed", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "بيانات غير صالحة", Code: "validation_error"})
}
