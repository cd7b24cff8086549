package dto

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// RegisterRequest carries an invite token plus the new account's fields. The
// role is deliberately absent: the invite token is authoritative for it.
type RegisterRequest struct {
	Token          string `json:"token" binding:"required"`
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	FullName       string `json:"full_name" binding:"required"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
}

// SetupAdminRequest creates the first admin account on a fresh install.
type SetupAdminRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	FullName       string `json:"full_name" binding:"required"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
}

// ChangePasswordRequest carries a password change for the current user.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// CheckSessionResponse reports whether the caller holds a live session.
type CheckSessionResponse struct {
	LoggedIn bool          `json:"logged_in"`
	User     *UserResponse `json:"user,omitempty"`
}
