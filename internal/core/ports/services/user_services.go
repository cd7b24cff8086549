package services

import (
	"context"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
)

// UserSvcFacade covers admin-side user management.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUser applies an admin edit to a user account.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes a user account. Deleting one's own account returns
	// apperrors.ErrValidation.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
}
