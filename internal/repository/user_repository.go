package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/profgui/profgui-api/internal/models"
)

// ErrDuplicatePhone is returned when an insert collides with the unique
// index on the normalized phone expression.
var ErrDuplicatePhone = errors.New("duplicate normalized phone")

var nonDigits = regexp.MustCompile(`[^0-9]`)

// NormalizePhone strips non-digits and keeps the last nine, matching the
// predicate used by the store.
func NormalizePhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) > 9 {
		digits = digits[len(digits)-9:]
	}
	return digits
}

const userColumns = `id, email, phone, password_hash, role, status, must_change_password, created_at`

// phonePredicate compares identities on the last 9 digits of the stored
// phone, ignoring formatting.
const phonePredicate = `RIGHT(REGEXP_REPLACE(phone, '[^0-9]', '', 'g'), 9) = $1`

// UserRepository provides database access for identities.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID returns an identity by id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1`, userColumns)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// FindByPhone returns the identity whose normalized phone matches the
// submitted number.
func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s LIMIT 1`, userColumns, phonePredicate)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, NormalizePhone(phone)); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by phone: %w", err)
	}
	return &user, nil
}

// UpdateStatus transitions the approval status of an identity.
func (r *UserRepository) UpdateStatus(ctx context.Context, id string, status models.UserStatus) error {
	const query = `UPDATE users SET status = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	return nil
}

// UpdatePassword replaces the stored credential hash and the force-replace flag.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string, mustChange bool) error {
	const query = `UPDATE users SET password_hash = $2, must_change_password = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, passwordHash, mustChange); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return nil
}

// ListPending returns every identity awaiting review.
func (r *UserRepository) ListPending(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE status = $1 ORDER BY created_at`, userColumns)
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, models.StatusPending); err != nil {
		return nil, fmt.Errorf("list pending users: %w", err)
	}
	return users, nil
}

// CountPending counts identities awaiting review, regardless of role.
func (r *UserRepository) CountPending(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users WHERE status = $1`
	var total int
	if err := r.db.GetContext(ctx, &total, query, models.StatusPending); err != nil {
		return 0, fmt.Errorf("count pending users: %w", err)
	}
	return total, nil
}

// EnsureAdmin creates the seed administrator unless an identity with the
// same normalized phone already exists.
func (r *UserRepository) EnsureAdmin(ctx context.Context, email, phone, passwordHash string) error {
	existsQuery := fmt.Sprintf(`SELECT 1 FROM users WHERE %s LIMIT 1`, phonePredicate)
	var one int
	err := r.db.GetContext(ctx, &one, existsQuery, NormalizePhone(phone))
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("check admin seed: %w", err)
	}

	admin := models.User{
		ID:           uuid.NewString(),
		Email:        &email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Status:       models.StatusApproved,
		CreatedAt:    time.Now().UTC(),
	}
	const insert = `INSERT INTO users (id, email, phone, password_hash, role, status, must_change_password, created_at)
		VALUES (:id, :email, :phone, :password_hash, :role, :status, :must_change_password, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, insert, admin); err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

// CreateAuditLog stores an audit log entry.
func (r *UserRepository) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO audit_logs (id, user_id, action, resource, resource_id, detail, ip_address, created_at)
		VALUES (:id, :user_id, :action, :resource, :resource_id, :detail, :ip_address, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
