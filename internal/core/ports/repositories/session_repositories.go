package repositories

import (
	"context"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
)

// SessionRepository persists login sessions. Sessions are never updated except
// to be revoked.
type SessionRepository interface {
	// SaveSession persists a new session.
	SaveSession(ctx context.Context, session domain.Session) error

	// FindSessionByID retrieves a session by its ID.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)

	// RevokeSession marks a session as revoked. Revoking an already revoked
	// session is a no-op.
	RevokeSession(ctx context.Context, sessionID string, at time.Time) error
}
