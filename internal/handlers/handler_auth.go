package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/alnahhas/surgery_clinic_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, logout and session introspection.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the session endpoints. The login route carries
// the rate limiter; check-session is deliberately tolerant of missing auth.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, loginLimiter gin.HandlerFunc) {
	h := newAuthHandler(authService)

	rg.POST("/login", loginLimiter, h.login)
	rg.GET("/check-session", h.checkSession)
}

// registerSessionAuthRoutes registers the endpoints that require a resolved
// session.
func registerSessionAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	rg.POST("/logout", h.logout)
	rg.GET("/me", h.me)
	rg.POST("/change-password", h.changePassword)
}

// login godoc
// @Summary Log in
// @Description Authenticates credentials and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("Login failed", slog.String("username", req.Username))
		respondError(c, err)
		return
	}

	logger.Info("Login succeeded", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "تم تسجيل الدخول بنجاح",
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}

// logout godoc
// @Summary Log out
// @Description Revokes the current session immediately
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "يجب تسجيل الدخول", Code: "unauthenticated"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), identity.SessionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم تسجيل الخروج بنجاح"})
}

// checkSession godoc
// @Summary Check session
// @Description Reports whether the caller holds a live session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.CheckSessionResponse
// @Router /auth/check-session [get]
func (h *authHandler) checkSession(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusOK, dto.CheckSessionResponse{LoggedIn: false})
		return
	}

	identity, err := h.authService.ResolveSession(c.Request.Context(), parts[1])
	if err != nil {
		c.JSON(http.StatusOK, dto.CheckSessionResponse{LoggedIn: false})
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), *identity)
	if err != nil {
		c.JSON(http.StatusOK, dto.CheckSessionResponse{LoggedIn: false})
		return
	}

	resp := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, dto.CheckSessionResponse{LoggedIn: true, User: &resp})
}

// me godoc
// @Summary Current user
// @Description Returns the account behind the current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "يجب تسجيل الدخول", Code: "unauthenticated"})
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), *identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// changePassword godoc
// @Summary Change password
// @Description Verifies the old password and replaces it
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordRequest true "Old and new passwords"
// @Success 200 {object} map[string]string
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "يجب تسجيل الدخول", Code: "unauthenticated"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), identity.UserID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم تغيير كلمة المرور بنجاح"})
}
