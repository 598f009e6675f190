package models

// Account bundles an identity with its role-specific profile. Exactly one of
// the profile variants is non-nil, selected by User.Role; consumers dispatch
// on the role, never on which fields happen to be present.
type Account struct {
	User     User     `json:"user"`
	Student  *Student `json:"student,omitempty"`
	Parent   *Parent  `json:"parent,omitempty"`
	Children []Child  `json:"children,omitempty"`
	Teacher  *Teacher `json:"teacher,omitempty"`
}

// Stats is the admin dashboard count summary.
type Stats struct {
	TotalStudents int `json:"total_students"`
	TotalParents  int `json:"total_parents"`
	TotalTeachers int `json:"total_teachers"`
	PendingUsers  int `json:"pending_users"`
}

// ApprovalResult carries the one-time temporary credential back to the
// administrator for out-of-band delivery. The plaintext is never stored.
type ApprovalResult struct {
	Status       UserStatus `json:"status"`
	TempPassword string     `json:"temp_password,omitempty"`
	UserEmail    *string    `json:"user_email,omitempty"`
	UserPhone    string     `json:"user_phone,omitempty"`
}
