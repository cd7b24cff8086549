package middleware

import (
	"context"
	"log/slog"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type so context values set here cannot collide with
// values set elsewhere.
type contextKey string

const (
	identityKey  = contextKey("identity")
	loggerCtxKey = contextKey("logger")
)

// GetIdentityFromContext retrieves the authenticated identity placed in the
// request context by SessionAuthMiddleware.
func GetIdentityFromContext(c *gin.Context) (*domain.Identity, bool) {
	identity, ok := c.Request.Context().Value(identityKey).(*domain.Identity)
	return identity, ok
}

// GetLoggerFromCtx retrieves the request-scoped logger, falling back to the
// process default when the logging middleware has not run.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
