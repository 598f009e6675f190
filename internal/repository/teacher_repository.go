package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/profgui/profgui-api/internal/models"
)

const teacherColumns = `id, user_id, first_name, last_name, city, subjects, levels, diploma, experience, availability, course_type, bio`

const teacherWithUserQuery = `SELECT
		t.id, t.user_id, t.first_name, t.last_name, t.city, t.subjects, t.levels,
		t.diploma, t.experience, t.availability, t.course_type, t.bio,
		u.id AS "user.id", u.email AS "user.email", u.phone AS "user.phone",
		u.password_hash AS "user.password_hash", u.role AS "user.role", u.status AS "user.status",
		u.must_change_password AS "user.must_change_password", u.created_at AS "user.created_at"
	FROM teachers t JOIN users u ON u.id = t.user_id`

// TeacherRepository provides database access for teacher profiles.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository creates a new instance of TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// FindByUserID returns the teacher profile owned by the identity.
func (r *TeacherRepository) FindByUserID(ctx context.Context, userID string) (*models.Teacher, error) {
	query := fmt.Sprintf(`SELECT %s FROM teachers WHERE user_id = $1 LIMIT 1`, teacherColumns)
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find teacher by user id: %w", err)
	}
	return &teacher, nil
}

// ListApprovedWithUsers returns teacher profiles whose owning identity has
// been approved. Pending and rejected accounts never reach the directory.
func (r *TeacherRepository) ListApprovedWithUsers(ctx context.Context) ([]models.TeacherWithUser, error) {
	query := teacherWithUserQuery + ` WHERE u.status = $1 ORDER BY u.created_at`
	var teachers []models.TeacherWithUser
	if err := r.db.SelectContext(ctx, &teachers, query, models.StatusApproved); err != nil {
		return nil, fmt.Errorf("list approved teachers: %w", err)
	}
	return teachers, nil
}

// ListWithUsers returns all teacher profiles joined with their identities.
func (r *TeacherRepository) ListWithUsers(ctx context.Context) ([]models.TeacherWithUser, error) {
	query := teacherWithUserQuery + ` ORDER BY u.created_at`
	var teachers []models.TeacherWithUser
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// Count returns the number of teacher profiles.
func (r *TeacherRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM teachers`); err != nil {
		return 0, fmt.Errorf("count teachers: %w", err)
	}
	return total, nil
}

// DeleteCascade removes the profile and its owning identity in one
// transaction. Unknown profile ids are a silent no-op.
func (r *TeacherRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin teacher delete tx: %w", err)
	}

	var userID string
	if err := tx.GetContext(ctx, &userID, `SELECT user_id FROM teachers WHERE id = $1`, id); err != nil {
		_ = tx.Rollback()
		if err == sql.ErrNoRows {
			return nil
		}
		return fmt.Errorf("load teacher for delete: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete teacher: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete teacher user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit teacher delete tx: %w", err)
	}
	return nil
}
