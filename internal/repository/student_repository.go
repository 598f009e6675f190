package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/profgui/profgui-api/internal/models"
)

const studentColumns = `id, user_id, first_name, last_name, city, level, subjects, course_type`

const studentWithUserQuery = `SELECT
		s.id, s.user_id, s.first_name, s.last_name, s.city, s.level, s.subjects, s.course_type,
		u.id AS "user.id", u.email AS "user.email", u.phone AS "user.phone",
		u.password_hash AS "user.password_hash", u.role AS "user.role", u.status AS "user.status",
		u.must_change_password AS "user.must_change_password", u.created_at AS "user.created_at"
	FROM students s JOIN users u ON u.id = s.user_id`

// StudentRepository provides database access for student profiles.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository creates a new instance of StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByUserID returns the student profile owned by the identity.
func (r *StudentRepository) FindByUserID(ctx context.Context, userID string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE user_id = $1 LIMIT 1`, studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student by user id: %w", err)
	}
	return &student, nil
}

// ListWithUsers returns all student profiles joined with their identities.
func (r *StudentRepository) ListWithUsers(ctx context.Context) ([]models.StudentWithUser, error) {
	query := studentWithUserQuery + ` ORDER BY u.created_at`
	var students []models.StudentWithUser
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Count returns the number of student profiles.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM students`); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return total, nil
}

// DeleteCascade removes the profile and its owning identity in one
// transaction. Unknown profile ids are a silent no-op.
func (r *StudentRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin student delete tx: %w", err)
	}

	var userID string
	if err := tx.GetContext(ctx, &userID, `SELECT user_id FROM students WHERE id = $1`, id); err != nil {
		_ = tx.Rollback()
		if err == sql.ErrNoRows {
			return nil
		}
		return fmt.Errorf("load student for delete: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete student: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete student user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit student delete tx: %w", err)
	}
	return nil
}
