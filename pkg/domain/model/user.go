package model

import "time"

// User roles. The first registered account is promoted to admin; everyone
// after that starts as a student.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

// User statuses.
const (
	UserStatusActive = "active"
	UserStatusBanned = "banned"
)

// User is the core account model. ID is the public identifier.
type User struct {
	ID           string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string
	Email        string
	PasswordHash string
	Nickname     string
	Avatar       string
	Role         string
	Status       string
	LastLoginAt  *time.Time
}

// RegisterRequest defines the request body for account registration.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Nickname    string `json:"nickname"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// LoginRequest defines the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token to exchange for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateRoleRequest changes an account's role. Admin only.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin instructor student"`
}

// TokenPair is returned from login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserResponse is the standard API shape for an account.
type UserResponse struct {
	ID          string     `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Nickname    string     `json:"nickname"`
	Avatar      string     `json:"avatar"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// LoginResponse bundles the token pair with the account it belongs to.
type LoginResponse struct {
	TokenPair
	User *UserResponse `json:"user"`
}
