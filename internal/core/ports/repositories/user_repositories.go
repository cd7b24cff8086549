package repositories

import (
	"context"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
)

// UserReader defines read operations for user accounts.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by exact, case-sensitive username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves all users, newest first.
	FindUsers(ctx context.Context) ([]domain.User, error)

	// CountUsers returns the total number of accounts.
	CountUsers(ctx context.Context) (int, error)
}

// UserWriter defines write operations for user accounts.
type UserWriter interface {
	// SaveUser persists a new user. Duplicate username or email surfaces as
	// apperrors.ErrDuplicate wrapping the offending column.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates the editable profile fields of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateLastLogin stamps the user's last successful login.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error

	// UpdatePassword replaces the user's password hash.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// DeleteUser removes a user account.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepository combines all user repository operations.
type UserRepository interface {
	UserReader
	UserWriter
}
