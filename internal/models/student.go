package models

import "github.com/lib/pq"

// Student is the profile owned by an identity with role student.
type Student struct {
	ID         string         `db:"id" json:"id"`
	UserID     string         `db:"user_id" json:"user_id"`
	FirstName  string         `db:"first_name" json:"first_name"`
	LastName   string         `db:"last_name" json:"last_name"`
	City       string         `db:"city" json:"city"`
	Level      string         `db:"level" json:"level"`
	Subjects   pq.StringArray `db:"subjects" json:"subjects"`
	CourseType CourseType     `db:"course_type" json:"course_type"`
}

// StudentWithUser joins a student profile with its owning identity.
type StudentWithUser struct {
	Student
	User User `db:"user" json:"user"`
}
