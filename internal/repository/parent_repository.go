package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/profgui/profgui-api/internal/models"
)

const parentColumns = `id, user_id, first_name, last_name, address`

const parentWithUserQuery = `SELECT
		p.id, p.user_id, p.first_name, p.last_name, p.address,
		u.id AS "user.id", u.email AS "user.email", u.phone AS "user.phone",
		u.password_hash AS "user.password_hash", u.role AS "user.role", u.status AS "user.status",
		u.must_change_password AS "user.must_change_password", u.created_at AS "user.created_at"
	FROM parents p JOIN users u ON u.id = p.user_id`

// ParentRepository provides database access for parent profiles and their
// dependents.
type ParentRepository struct {
	db *sqlx.DB
}

// NewParentRepository creates a new instance of ParentRepository.
func NewParentRepository(db *sqlx.DB) *ParentRepository {
	return &ParentRepository{db: db}
}

// FindByUserID returns the parent profile owned by the identity.
func (r *ParentRepository) FindByUserID(ctx context.Context, userID string) (*models.Parent, error) {
	query := fmt.Sprintf(`SELECT %s FROM parents WHERE user_id = $1 LIMIT 1`, parentColumns)
	var parent models.Parent
	if err := r.db.GetContext(ctx, &parent, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find parent by user id: %w", err)
	}
	return &parent, nil
}

// ChildrenByParentID returns the dependents owned by a parent profile.
func (r *ParentRepository) ChildrenByParentID(ctx context.Context, parentID string) ([]models.Child, error) {
	const query = `SELECT id, parent_id, first_name, last_name, level, subjects FROM children WHERE parent_id = $1`
	var children []models.Child
	if err := r.db.SelectContext(ctx, &children, query, parentID); err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return children, nil
}

// ListWithUsers returns all parent profiles joined with their identities
// and dependents.
func (r *ParentRepository) ListWithUsers(ctx context.Context) ([]models.ParentWithUser, error) {
	query := parentWithUserQuery + ` ORDER BY u.created_at`
	var parents []models.ParentWithUser
	if err := r.db.SelectContext(ctx, &parents, query); err != nil {
		return nil, fmt.Errorf("list parents: %w", err)
	}
	for i := range parents {
		children, err := r.ChildrenByParentID(ctx, parents[i].ID)
		if err != nil {
			return nil, err
		}
		parents[i].Children = children
	}
	return parents, nil
}

// Count returns the number of parent profiles.
func (r *ParentRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM parents`); err != nil {
		return 0, fmt.Errorf("count parents: %w", err)
	}
	return total, nil
}

// DeleteCascade removes the dependents, the profile, and the owning
// identity, in that order, in one transaction. Unknown profile ids are a
// silent no-op.
func (r *ParentRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin parent delete tx: %w", err)
	}

	var userID string
	if err := tx.GetContext(ctx, &userID, `SELECT user_id FROM parents WHERE id = $1`, id); err != nil {
		_ = tx.Rollback()
		if err == sql.ErrNoRows {
			return nil
		}
		return fmt.Errorf("load parent for delete: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM children WHERE parent_id = $1`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete children: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM parents WHERE id = $1`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete parent: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete parent user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit parent delete tx: %w", err)
	}
	return nil
}
