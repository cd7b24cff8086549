package repositories

import (
	"context"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
)

// InviteRepository persists invite tokens and owns the transactional
// registration write.
type InviteRepository interface {
	// SaveInvite persists a new invite token.
	SaveInvite(ctx context.Context, invite domain.InviteToken) error

	// FindInviteByToken retrieves an invite by its opaque token string.
	FindInviteByToken(ctx context.Context, token string) (*domain.InviteToken, error)

	// FindInviteByID retrieves an invite by ID.
	FindInviteByID(ctx context.Context, inviteID string) (*domain.InviteToken, error)

	// FindInvites retrieves all invites, newest first.
	FindInvites(ctx context.Context) ([]domain.InviteToken, error)

	// DeleteInvite removes an invite token.
	DeleteInvite(ctx context.Context, inviteID string) error

	// RegisterUser inserts the new user and consumes the invite token in one
	// transaction. The consumption is a conditional update guarded on
	// is_used = FALSE; losing that guard to a concurrent registration rolls
	// the user insert back and returns apperrors.ErrConflict. Duplicate
	// username/email unique violations surface as apperrors.ErrDuplicate
	// wrapping the offending column.
	RegisterUser(ctx context.Context, user domain.User, token string) error
}
