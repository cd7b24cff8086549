package dto

import (
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
)

// CreateInviteRequest carries the parameters for a new invite token.
type CreateInviteRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
	Role  string `json:"role" binding:"omitempty,oneof=admin doctor"`
}

// InviteResponse is the projection of an invite token.
type InviteResponse struct {
	ID          string     `json:"id"`
	Token       string     `json:"token"`
	CreatedBy   string     `json:"created_by"`
	CreatorName string     `json:"creator_name,omitempty"`
	Email       string     `json:"email,omitempty"`
	Role        string     `json:"role"`
	IsUsed      bool       `json:"is_used"`
	UsedBy      *string    `json:"used_by,omitempty"`
	UserName    string     `json:"user_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ToInviteResponse converts a domain.InviteToken to its projection.
func ToInviteResponse(invite *domain.InviteToken) InviteResponse {
	return InviteResponse{
		ID:        invite.InviteID,
		Token:     invite.Token,
		CreatedBy: invite.CreatedBy,
		Email:     invite.Email,
		Role:      string(invite.Role),
		IsUsed:    invite.IsUsed,
		UsedBy:    invite.UsedBy,
		CreatedAt: invite.CreatedAt,
		ExpiresAt: invite.ExpiresAt,
	}
}

// ToInviteResponseList converts a slice of domain invite tokens.
func ToInviteResponseList(invites []domain.InviteToken) []InviteResponse {
	out := make([]InviteResponse, len(invites))
	for i := range invites {
		out[i] = ToInviteResponse(&invites[i])
	}
	return out
}

// CreateInviteResponse wraps a freshly issued invite with its registration link.
type CreateInviteResponse struct {
	Message    string         `json:"message"`
	Invite     InviteResponse `json:"invite"`
	InviteLink string         `json:"invite_link"`
}

// VerifyInviteResponse is the public pre-registration validity check.
type VerifyInviteResponse struct {
	Valid bool   `json:"valid"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}
