package services

import (
	"context"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
)

// RegistrationSvcFacade covers invite-based registration and the invite
// ledger itself.
type RegistrationSvcFacade interface {
	// Register creates a new account from an invite token. Failure modes in
	// order: unknown or used token (apperrors.ErrConflict), expired token
	// (apperrors.ErrTokenExpired), duplicate username/email
	// (apperrors.ErrDuplicate). The token's role wins over anything the
	// caller supplies, and the token is consumed in the same transaction
	// that creates the user.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// CreateInvite issues a new invite token with the configured validity
	// window. The caller must already be authorized as admin.
	CreateInvite(ctx context.Context, issuer domain.Identity, req dto.CreateInviteRequest) (*domain.InviteToken, error)

	// VerifyInvite is the public pre-registration validity check.
	VerifyInvite(ctx context.Context, token string) (*domain.InviteToken, error)

	// ListInvites returns all invites, newest first.
	ListInvites(ctx context.Context) ([]domain.InviteToken, error)

	// DeleteInvite removes an invite token.
	DeleteInvite(ctx context.Context, inviteID string) error

	// SetupAdmin creates the first admin account; it fails with
	// apperrors.ErrConflict once any user exists.
	SetupAdmin(ctx context.Context, req dto.SetupAdminRequest) (*domain.User, error)

	// SeedDefaultAdmin creates the bootstrap admin account at startup when
	// the user table is empty. It reports whether an account was created.
	SeedDefaultAdmin(ctx context.Context, username, email, password, fullName string) (bool, error)
}
