package models

import (
	"database/sql"
	"time"
)

// User is the database row backing domain.User.
type User struct {
	UserID         string         `db:"user_id"`
	Username       string         `db:"username"`
	Email          string         `db:"email"`
	PasswordHash   string         `db:"password_hash"`
	FullName       string         `db:"full_name"`
	Role           string         `db:"role"`
	Specialization sql.NullString `db:"specialization"`
	Phone          sql.NullString `db:"phone"`
	IsActive       bool           `db:"is_active"`
	CreatedAt      time.Time      `db:"created_at"`
	LastLogin      sql.NullTime   `db:"last_login"`
}
