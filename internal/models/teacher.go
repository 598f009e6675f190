package models

import "github.com/lib/pq"

// CourseType is the delivery mode for lessons.
type CourseType string

const (
	CourseAtHome CourseType = "domicile"
	CourseOnline CourseType = "en_ligne"
	CourseBoth   CourseType = "les_deux"
)

// Teacher is the profile owned by an identity with role teacher.
type Teacher struct {
	ID           string         `db:"id" json:"id"`
	UserID       string         `db:"user_id" json:"user_id"`
	FirstName    string         `db:"first_name" json:"first_name"`
	LastName     string         `db:"last_name" json:"last_name"`
	City         string         `db:"city" json:"city"`
	Subjects     pq.StringArray `db:"subjects" json:"subjects"`
	Levels       pq.StringArray `db:"levels" json:"levels"`
	Diploma      string         `db:"diploma" json:"diploma"`
	Experience   *string        `db:"experience" json:"experience,omitempty"`
	Availability string         `db:"availability" json:"availability"`
	CourseType   CourseType     `db:"course_type" json:"course_type"`
	Bio          *string        `db:"bio" json:"bio,omitempty"`
}

// TeacherWithUser joins a teacher profile with its owning identity.
type TeacherWithUser struct {
	Teacher
	User User `db:"user" json:"user"`
}

// TeacherFilter narrows the public directory. Empty or "all" values are
// treated as "no filter"; active filters combine with logical AND.
type TeacherFilter struct {
	City    string
	Subject string
	Level   string
}
