package models

import "time"

// CourseRequest loosely links a requester with a teacher over a subject.
// Reserved: present in the schema but not exposed by any endpoint yet.
type CourseRequest struct {
	ID        string    `db:"id" json:"id"`
	StudentID *string   `db:"student_id" json:"student_id,omitempty"`
	ChildID   *string   `db:"child_id" json:"child_id,omitempty"`
	ParentID  *string   `db:"parent_id" json:"parent_id,omitempty"`
	TeacherID *string   `db:"teacher_id" json:"teacher_id,omitempty"`
	Subject   string    `db:"subject" json:"subject"`
	Message   *string   `db:"message" json:"message,omitempty"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
