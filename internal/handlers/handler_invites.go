package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/alnahhas/surgery_clinic_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// inviteHandler handles invite-based registration and the invite ledger.
type inviteHandler struct {
	registrationService portssvc.RegistrationSvcFacade
}

func newInviteHandler(rs portssvc.RegistrationSvcFacade) *inviteHandler {
	return &inviteHandler{registrationService: rs}
}

// registerPublicRegistrationRoutes registers the endpoints open to
// unauthenticated callers: registering with a token, verifying one, and the
// first-run admin setup.
func registerPublicRegistrationRoutes(rg *gin.RouterGroup, registrationService portssvc.RegistrationSvcFacade) {
	h := newInviteHandler(registrationService)

	rg.POST("/register", h.register)
	rg.GET("/invites/verify/:token", h.verifyInvite)
	rg.POST("/setup-admin", h.setupAdmin)
}

// registerInviteAdminRoutes registers the admin-only invite ledger.
func registerInviteAdminRoutes(rg *gin.RouterGroup, registrationService portssvc.RegistrationSvcFacade) {
	h := newInviteHandler(registrationService)

	rg.POST("/invites", h.createInvite)
	rg.GET("/invites", h.listInvites)
	rg.DELETE("/invites/:id", h.deleteInvite)
}

// register godoc
// @Summary Register with an invite token
// @Description Creates an account; the invite token decides the role
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequest true "Registration fields"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /auth/register [post]
func (h *inviteHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.registrationService.Register(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Registration failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		// The registration form treats a bad token and a taken username or
		// email as client errors, so they come back 400, not 409.
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "رمز الدعوة غير صالح أو مستخدم", Code: "conflict"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "اسم المستخدم أو البريد الإلكتروني موجود مسبقاً", Code: "conflict"})
		default:
			respondError(c, err)
		}
		return
	}

	logger.Info("Registration succeeded", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// createInvite godoc
// @Summary Create an invite token
// @Description Issues a single-use invite with a validity window
// @Tags invites
// @Accept json
// @Produce json
// @Param invite body dto.CreateInviteRequest true "Invite parameters"
// @Success 201 {object} dto.CreateInviteResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /auth/invites [post]
func (h *inviteHandler) createInvite(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "يجب تسجيل الدخول", Code: "unauthenticated"})
		return
	}

	var req dto.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	invite, err := h.registrationService.CreateInvite(c.Request.Context(), *identity, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateInviteResponse{
		Message:    "تم إنشاء رابط الدعوة بنجاح",
		Invite:     dto.ToInviteResponse(invite),
		InviteLink: "/register?token=" + invite.Token,
	})
}

// listInvites godoc
// @Summary List invite tokens
// @Tags invites
// @Produce json
// @Success 200 {array} dto.InviteResponse
// @Security BearerAuth
// @Router /auth/invites [get]
func (h *inviteHandler) listInvites(c *gin.Context) {
	invites, err := h.registrationService.ListInvites(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInviteResponseList(invites))
}

// deleteInvite godoc
// @Summary Delete an invite token
// @Tags invites
// @Produce json
// @Param id path string true "Invite ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /auth/invites/{id} [delete]
func (h *inviteHandler) deleteInvite(c *gin.Context) {
	if err := h.registrationService.DeleteInvite(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم حذف الدعوة"})
}

// verifyInvite godoc
// @Summary Verify an invite token
// @Description Public pre-registration validity check
// @Tags invites
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} dto.VerifyInviteResponse
// @Failure 400 {object} dto.VerifyInviteResponse
// @Failure 404 {object} dto.VerifyInviteResponse
// @Router /auth/invites/verify/{token} [get]
func (h *inviteHandler) verifyInvite(c *gin.Context) {
	invite, err := h.registrationService.VerifyInvite(c.Request.Context(), c.Param("token"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTokenExpired):
			c.JSON(http.StatusBadRequest, dto.VerifyInviteResponse{Valid: false, Error: "انتهت صلاحية الرمز", Code: "token_expired"})
		case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusNotFound, dto.VerifyInviteResponse{Valid: false, Error: "رابط الدعوة غير صالح", Code: "not_found"})
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.VerifyInviteResponse{
		Valid: true,
		Role:  string(invite.Role),
		Email: invite.Email,
	})
}

// setupAdmin godoc
// @Summary First-run admin setup
// @Description Creates the first admin account while the user table is empty
// @Tags auth
// @Accept json
// @Produce json
// @Param admin body dto.SetupAdminRequest true "Admin account fields"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /auth/setup-admin [post]
func (h *inviteHandler) setupAdmin(c *gin.Context) {
	var req dto.SetupAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.registrationService.SetupAdmin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "تم إعداد النظام مسبقاً", Code: "validation_error"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}
