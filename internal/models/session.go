package models

import (
	"database/sql"
	"time"
)

// Session is the database row backing domain.Session.
type Session struct {
	SessionID string       `db:"session_id"`
	UserID    string       `db:"user_id"`
	CreatedAt time.Time    `db:"created_at"`
	ExpiresAt time.Time    `db:"expires_at"`
	RevokedAt sql.NullTime `db:"revoked_at"`
}
