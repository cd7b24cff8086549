package dto

import (
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
)

// UserResponse is the public projection of a user account. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	Role           string     `json:"role"`
	Specialization string     `json:"specialization"`
	Phone          string     `json:"phone"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
}

// ToUserResponse converts a domain.User to its public projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:             user.UserID,
		Username:       user.Username,
		Email:          user.Email,
		FullName:       user.FullName,
		Role:           string(user.Role),
		Specialization: user.Specialization,
		Phone:          user.Phone,
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt,
		LastLogin:      user.LastLogin,
	}
}

// ToUserResponseList converts a slice of domain users.
func ToUserResponseList(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}

// UpdateUserRequest defines the fields an admin may edit on a user account.
// Pointers distinguish omitted fields from zero values.
type UpdateUserRequest struct {
	FullName       *string `json:"full_name"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Specialization *string `json:"specialization"`
	Phone          *string `json:"phone"`
	IsActive       *bool   `json:"is_active"`
}
