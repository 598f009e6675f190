package models

import "time"

// Audit actions recorded for account-lifecycle events.
const (
	AuditActionLogin    = "auth.login"
	AuditActionLogout   = "auth.logout"
	AuditActionApproval = "account.review"
	AuditActionDelete   = "account.delete"
)

// AuditLog is an append-only record of a sensitive operation.
type AuditLog struct {
	ID         string    `db:"id" json:"id"`
	UserID     *string   `db:"user_id" json:"user_id,omitempty"`
	Action     string    `db:"action" json:"action"`
	Resource   string    `db:"resource" json:"resource"`
	ResourceID *string   `db:"resource_id" json:"resource_id,omitempty"`
	Detail     *string   `db:"detail" json:"detail,omitempty"`
	IPAddress  string    `db:"ip_address" json:"ip_address,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
