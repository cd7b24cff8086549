package domain

import "time"

// InviteToken is a single-use, time-limited credential authorizing one account
// registration with a pre-assigned role.
type InviteToken struct {
	InviteID  string     `json:"id"`
	Token     string     `json:"token"`
	CreatedBy string     `json:"created_by"`
	Email     string     `json:"email,omitempty"`
	Role      Role       `json:"role"`
	IsUsed    bool       `json:"is_used"`
	UsedBy    *string    `json:"used_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the token's validity window has passed. A token
// without an expiry never expires.
func (t InviteToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}

// Usable reports whether the token can still consume a registration.
func (t InviteToken) Usable(now time.Time) bool {
	return !t.IsUsed && !t.Expired(now)
}
