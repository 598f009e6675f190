package models

import "time"

// UserRole discriminates the four account roles.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleParent  UserRole = "parent"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

// UserStatus tracks the approval lifecycle of an identity.
type UserStatus string

const (
	StatusPending  UserStatus = "pending"
	StatusApproved UserStatus = "approved"
	StatusRejected UserStatus = "rejected"
)

// ValidReviewTarget reports whether s is a status an administrator may set.
func ValidReviewTarget(s UserStatus) bool {
	return s == StatusApproved || s == StatusRejected
}

// User represents an identity stored in the users table. The phone number is
// kept exactly as submitted; lookups normalize it at the store boundary.
type User struct {
	ID                 string     `db:"id" json:"id"`
	Email              *string    `db:"email" json:"email,omitempty"`
	Phone              string     `db:"phone" json:"phone"`
	PasswordHash       string     `db:"password_hash" json:"-"`
	Role               UserRole   `db:"role" json:"role"`
	Status             UserStatus `db:"status" json:"status"`
	MustChangePassword bool       `db:"must_change_password" json:"must_change_password"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
}
