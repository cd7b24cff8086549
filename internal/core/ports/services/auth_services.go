package services

import (
	"context"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
)

// AuthSvcFacade is the session manager: it authenticates credentials, turns
// bearer tokens back into identities, and tears sessions down.
type AuthSvcFacade interface {
	// Login authenticates the credentials and establishes a session. A wrong
	// username and a wrong password both return apperrors.ErrUnauthorized so
	// the caller cannot tell which field was wrong; a deactivated account
	// returns apperrors.ErrAccountDisabled. On success the user's last login
	// is stamped and a signed session token is returned with the user.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)

	// ResolveSession turns a bearer token into the request identity. Revoked
	// or expired sessions, and sessions of deactivated users, fail with
	// apperrors.ErrUnauthorized.
	ResolveSession(ctx context.Context, token string) (*domain.Identity, error)

	// Logout revokes the session immediately.
	Logout(ctx context.Context, sessionID string) error

	// CurrentUser loads the full account behind an identity.
	CurrentUser(ctx context.Context, identity domain.Identity) (*domain.User, error)

	// ChangePassword verifies the old password and replaces it.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error
}
