package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/profgui/profgui-api/internal/models"
)

const (
	insertUserQuery = `INSERT INTO users (id, email, phone, password_hash, role, status, must_change_password, created_at)
		VALUES (:id, :email, :phone, :password_hash, :role, :status, :must_change_password, :created_at)`
	insertStudentQuery = `INSERT INTO students (id, user_id, first_name, last_name, city, level, subjects, course_type)
		VALUES (:id, :user_id, :first_name, :last_name, :city, :level, :subjects, :course_type)`
	insertParentQuery = `INSERT INTO parents (id, user_id, first_name, last_name, address)
		VALUES (:id, :user_id, :first_name, :last_name, :address)`
	insertChildQuery = `INSERT INTO children (id, parent_id, first_name, last_name, level, subjects)
		VALUES (:id, :parent_id, :first_name, :last_name, :level, :subjects)`
	insertTeacherQuery = `INSERT INTO teachers (id, user_id, first_name, last_name, city, subjects, levels, diploma, experience, availability, course_type, bio)
		VALUES (:id, :user_id, :first_name, :last_name, :city, :subjects, :levels, :diploma, :experience, :availability, :course_type, :bio)`
)

// RegistrationRepository creates an identity together with its profile in a
// single transaction: the identity row first, the profile next, dependents
// last. Phone uniqueness is enforced by the store's unique index, so a
// concurrent duplicate surfaces as ErrDuplicatePhone instead of a second
// identity.
type RegistrationRepository struct {
	db *sqlx.DB
}

// NewRegistrationRepository creates a new instance of RegistrationRepository.
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// CreateStudentAccount persists a pending student identity and profile.
func (r *RegistrationRepository) CreateStudentAccount(ctx context.Context, user *models.User, student *models.Student) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}
		student.ID = uuid.NewString()
		student.UserID = user.ID
		if _, err := tx.NamedExecContext(ctx, insertStudentQuery, student); err != nil {
			return fmt.Errorf("create student profile: %w", err)
		}
		return nil
	})
}

// CreateParentAccount persists a pending parent identity, profile, and
// its dependents.
func (r *RegistrationRepository) CreateParentAccount(ctx context.Context, user *models.User, parent *models.Parent, children []models.Child) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}
		parent.ID = uuid.NewString()
		parent.UserID = user.ID
		if _, err := tx.NamedExecContext(ctx, insertParentQuery, parent); err != nil {
			return fmt.Errorf("create parent profile: %w", err)
		}
		for i := range children {
			children[i].ID = uuid.NewString()
			children[i].ParentID = parent.ID
			if _, err := tx.NamedExecContext(ctx, insertChildQuery, &children[i]); err != nil {
				return fmt.Errorf("create child record: %w", err)
			}
		}
		return nil
	})
}

// CreateTeacherAccount persists a pending teacher identity and profile.
func (r *RegistrationRepository) CreateTeacherAccount(ctx context.Context, user *models.User, teacher *models.Teacher) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}
		teacher.ID = uuid.NewString()
		teacher.UserID = user.ID
		if _, err := tx.NamedExecContext(ctx, insertTeacherQuery, teacher); err != nil {
			return fmt.Errorf("create teacher profile: %w", err)
		}
		return nil
	})
}

func (r *RegistrationRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin registration tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit registration tx: %w", err)
	}
	return nil
}

func insertUser(ctx context.Context, tx *sqlx.Tx, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.Status = models.StatusPending
	user.MustChangePassword = false

	if _, err := tx.NamedExecContext(ctx, insertUserQuery, user); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
