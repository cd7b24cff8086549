package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	"github.com/alnahhas/surgery_clinic_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) portsrepo.SessionRepository {
	return &PgxSessionRepository{db: db}
}

var _ portsrepo.SessionRepository = (*PgxSessionRepository)(nil)

func toDomainSession(m models.Session) domain.Session {
	return domain.Session{
		SessionID: m.SessionID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: timePtr(m.RevokedAt),
	}
}

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	query := `
        INSERT INTO sessions (session_id, user_id, created_at, expires_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, session.SessionID, session.UserID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `
        SELECT session_id, user_id, created_at, expires_at, revoked_at
        FROM sessions
        WHERE session_id = $1;
    `
	var m models.Session
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&m.SessionID,
		&m.UserID,
		&m.CreatedAt,
		&m.ExpiresAt,
		&m.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	session := toDomainSession(m)
	return &session, nil
}

func (r *PgxSessionRepository) RevokeSession(ctx context.Context, sessionID string, at time.Time) error {
	query := `UPDATE sessions SET revoked_at = $1 WHERE session_id = $2 AND revoked_at IS NULL;`
	cmdTag, err := r.db.Exec(ctx, query, at, sessionID)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	// Zero rows means the session is unknown or already revoked; both are
	// fine for logout.
	_ = cmdTag
	return nil
}
