package domain

import "time"

// Session is a server-side login session. The signed bearer token a client
// holds references a session row by ID, so revoking the row invalidates the
// token immediately.
type Session struct {
	SessionID string     `json:"session_id"`
	UserID    string     `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Active reports whether the session is usable at the given instant.
func (s Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Identity is the authenticated user context attached to a request after the
// session has been resolved: everything a handler needs for authorization.
type Identity struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	SessionID string `json:"-"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
