package models

import "github.com/lib/pq"

// Parent is the profile owned by an identity with role parent.
type Parent struct {
	ID        string `db:"id" json:"id"`
	UserID    string `db:"user_id" json:"user_id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Address   string `db:"address" json:"address"`
}

// Child is a dependent owned by a parent profile.
type Child struct {
	ID        string         `db:"id" json:"id"`
	ParentID  string         `db:"parent_id" json:"parent_id"`
	FirstName string         `db:"first_name" json:"first_name"`
	LastName  string         `db:"last_name" json:"last_name"`
	Level     string         `db:"level" json:"level"`
	Subjects  pq.StringArray `db:"subjects" json:"subjects"`
}

// ParentWithUser joins a parent profile with its owning identity and children.
type ParentWithUser struct {
	Parent
	User     User    `db:"user" json:"user"`
	Children []Child `json:"children"`
}
