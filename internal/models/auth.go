package models

import "time"

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,min=9"`
	Password string `json:"password" validate:"required"`
	IP       string `json:"-"`
}

// LoginResponse returns the session token and user info. The token travels
// back to the client as an httpOnly cookie, never in the body.
type LoginResponse struct {
	Token string   `json:"-"`
	User  UserInfo `json:"user"`
}

// UserInfo describes the authenticated user in responses.
type UserInfo struct {
	ID                 string   `json:"id"`
	Role               UserRole `json:"role"`
	MustChangePassword bool     `json:"must_change_password"`
}

// ChangePasswordRequest is the payload for replacing the own credential.
// No old-password check is performed: approval hands out a temporary
// credential the holder is forced to replace.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Session is the server-side record behind a session cookie.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
