package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware validates the bearer token and resolves it to a live
// session. The token alone is not enough: the session row behind it must
// still be active, so logging out invalidates outstanding tokens immediately.
func SessionAuthMiddleware(authSvc portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "يجب تسجيل الدخول", "code": "unauthenticated"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "يجب تسجيل الدخول", "code": "unauthenticated"})
			return
		}

		identity, err := authSvc.ResolveSession(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "انتهت صلاحية الجلسة", "code": "token_expired"})
				return
			}
			logger.Warn("Session resolution failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "يجب تسجيل الدخول", "code": "unauthenticated"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), identityKey, identity)
		enrichedLogger := logger.With(slog.String("user_id", identity.UserID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin gates a route group to admin identities. It must run after
// SessionAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "يجب تسجيل الدخول", "code": "unauthenticated"})
			return
		}
		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "غير مصرح لك بتنفيذ هذا الإجراء", "code": "forbidden"})
			return
		}
		c.Next()
	}
}
