package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	"github.com/alnahhas/surgery_clinic_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInviteRepository struct {
	db *pgxpool.Pool
}

func NewInviteRepository(db *pgxpool.Pool) portsrepo.InviteRepository {
	return &PgxInviteRepository{db: db}
}

var _ portsrepo.InviteRepository = (*PgxInviteRepository)(nil)

func toDomainInvite(m models.InviteToken) domain.InviteToken {
	invite := domain.InviteToken{
		InviteID:  m.InviteID,
		Token:     m.Token,
		CreatedBy: m.CreatedBy,
		Email:     stringOrEmpty(m.Email),
		Role:      domain.Role(m.Role),
		IsUsed:    m.IsUsed,
		CreatedAt: m.CreatedAt,
		ExpiresAt: timePtr(m.ExpiresAt),
	}
	if m.UsedBy.Valid {
		usedBy := m.UsedBy.String
		invite.UsedBy = &usedBy
	}
	return invite
}

const inviteColumns = `invite_id, token, created_by, email, role, is_used, used_by, created_at, expires_at`

func scanInvite(row pgx.Row) (*models.InviteToken, error) {
	var m models.InviteToken
	err := row.Scan(
		&m.InviteID,
		&m.Token,
		&m.CreatedBy,
		&m.Email,
		&m.Role,
		&m.IsUsed,
		&m.UsedBy,
		&m.CreatedAt,
		&m.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxInviteRepository) SaveInvite(ctx context.Context, invite domain.InviteToken) error {
	query := `
        INSERT INTO invite_tokens (invite_id, token, created_by, email, role, is_used, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		invite.InviteID,
		invite.Token,
		invite.CreatedBy,
		nullString(invite.Email),
		string(invite.Role),
		invite.IsUsed,
		invite.CreatedAt,
		nullTime(invite.ExpiresAt),
	)
	if err != nil {
		if isUniqueViolation(err, "invite_tokens_token_key") {
			return fmt.Errorf("%w: token", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save invite token: %w", err)
	}
	return nil
}

func (r *PgxInviteRepository) FindInviteByToken(ctx context.Context, token string) (*domain.InviteToken, error) {
	query := `SELECT ` + inviteColumns + ` FROM invite_tokens WHERE token = $1;`
	m, err := scanInvite(r.db.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invite by token: %w", err)
	}
	invite := toDomainInvite(*m)
	return &invite, nil
}

func (r *PgxInviteRepository) FindInviteByID(ctx context.Context, inviteID string) (*domain.InviteToken, error) {
	query := `SELECT ` + inviteColumns + ` FROM invite_tokens WHERE invite_id = $1;`
	m, err := scanInvite(r.db.QueryRow(ctx, query, inviteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invite by ID %s: %w", inviteID, err)
	}
	invite := toDomainInvite(*m)
	return &invite, nil
}

func (r *PgxInviteRepository) FindInvites(ctx context.Context) ([]domain.InviteToken, error) {
	query := `SELECT ` + inviteColumns + ` FROM invite_tokens ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invites: %w", err)
	}
	defer rows.Close()

	invites := []domain.InviteToken{}
	for rows.Next() {
		m, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite row: %w", err)
		}
		invites = append(invites, toDomainInvite(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invite rows: %w", rows.Err())
	}
	return invites, nil
}

func (r *PgxInviteRepository) DeleteInvite(ctx context.Context, inviteID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM invite_tokens WHERE invite_id = $1;`, inviteID)
	if err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invite not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// RegisterUser creates the user and consumes the invite token in a single
// transaction. The conditional update on is_used = FALSE is what makes the
// token single-use under concurrent registrations: the loser updates zero
// rows and the whole transaction rolls back.
func (r *PgxInviteRepository) RegisterUser(ctx context.Context, user domain.User, token string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin registration transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	m := toModelUser(user)
	insertUser := `
        INSERT INTO users (user_id, username, email, password_hash, full_name, role, specialization, phone, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err = tx.Exec(ctx, insertUser,
		m.UserID,
		m.Username,
		m.Email,
		m.PasswordHash,
		m.FullName,
		m.Role,
		m.Specialization,
		m.Phone,
		m.IsActive,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return fmt.Errorf("%w: username", apperrors.ErrDuplicate)
		}
		if isUniqueViolation(err, "users_email_key") {
			return fmt.Errorf("%w: email", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert registered user: %w", err)
	}

	consume := `
        UPDATE invite_tokens
        SET is_used = TRUE, used_by = $1
        WHERE token = $2 AND is_used = FALSE;
    `
	cmdTag, err := tx.Exec(ctx, consume, user.UserID, token)
	if err != nil {
		return fmt.Errorf("failed to consume invite token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invite token already consumed: %w", apperrors.ErrConflict)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit registration: %w", err)
	}
	return nil
}
