package models

import (
	"database/sql"
	"time"
)

// InviteToken is the database row backing domain.InviteToken.
type InviteToken struct {
	InviteID  string         `db:"invite_id"`
	Token     string         `db:"token"`
	CreatedBy string         `db:"created_by"`
	Email     sql.NullString `db:"email"`
	Role      string         `db:"role"`
	IsUsed    bool           `db:"is_used"`
	UsedBy    sql.NullString `db:"used_by"`
	CreatedAt time.Time      `db:"created_at"`
	ExpiresAt sql.NullTime   `db:"expires_at"`
}
