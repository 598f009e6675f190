package models

// Registration payloads mirror the public signup forms. Validation tags
// report the first violated constraint to the caller.

// StudentRegistration is the payload for register-student.
type StudentRegistration struct {
	FirstName  string   `json:"first_name" validate:"required,min=2"`
	LastName   string   `json:"last_name" validate:"required,min=2"`
	Phone      string   `json:"phone" validate:"required,min=9"`
	Email      string   `json:"email" validate:"omitempty,email"`
	Password   string   `json:"password" validate:"required,min=6"`
	City       string   `json:"city" validate:"required"`
	Level      string   `json:"level" validate:"required"`
	Subjects   []string `json:"subjects" validate:"required,min=1,dive,required"`
	CourseType string   `json:"course_type" validate:"required,oneof=domicile en_ligne les_deux"`
}

// ChildRegistration describes one dependent in a parent signup.
type ChildRegistration struct {
	FirstName string   `json:"first_name" validate:"required,min=2"`
	LastName  string   `json:"last_name" validate:"required,min=2"`
	Level     string   `json:"level" validate:"required"`
	Subjects  []string `json:"subjects" validate:"required,min=1,dive,required"`
}

// ParentRegistration is the payload for register-parent.
type ParentRegistration struct {
	FirstName string              `json:"first_name" validate:"required,min=2"`
	LastName  string              `json:"last_name" validate:"required,min=2"`
	Phone     string              `json:"phone" validate:"required,min=9"`
	Email     string              `json:"email" validate:"omitempty,email"`
	Password  string              `json:"password" validate:"required,min=6"`
	Address   string              `json:"address" validate:"required,min=5"`
	Children  []ChildRegistration `json:"children" validate:"required,min=1,dive"`
}

// TeacherRegistration is the payload for register-teacher. Email is
// mandatory for teachers.
type TeacherRegistration struct {
	FirstName    string   `json:"first_name" validate:"required,min=2"`
	LastName     string   `json:"last_name" validate:"required,min=2"`
	Phone        string   `json:"phone" validate:"required,min=9"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=6"`
	City         string   `json:"city" validate:"required"`
	Subjects     []string `json:"subjects" validate:"required,min=1,dive,required"`
	Levels       []string `json:"levels" validate:"required,min=1,dive,required"`
	Diploma      string   `json:"diploma" validate:"required,min=2"`
	Experience   string   `json:"experience"`
	Availability string   `json:"availability" validate:"required,min=5"`
	CourseType   string   `json:"course_type" validate:"required,oneof=domicile en_ligne les_deux"`
	Bio          string   `json:"bio"`
}
