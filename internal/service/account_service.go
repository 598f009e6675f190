package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/profgui/profgui-api/internal/models"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
)

type accountUserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type studentProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Student, error)
}

type parentProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Parent, error)
	ChildrenByParentID(ctx context.Context, parentID string) ([]models.Child, error)
}

type teacherProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Teacher, error)
}

// AccountService resolves an identity into its role-tagged account view.
type AccountService struct {
	users    accountUserRepository
	students studentProfileRepository
	parents  parentProfileRepository
	teachers teacherProfileRepository
	logger   *zap.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	users accountUserRepository,
	students studentProfileRepository,
	parents parentProfileRepository,
	teachers teacherProfileRepository,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{users: users, students: students, parents: parents, teachers: teachers, logger: logger}
}

// GetAccount loads the identity and the profile variant matching its role.
// Admin identities carry no profile.
func (s *AccountService) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	account := &models.Account{User: *user}

	switch user.Role {
	case models.RoleStudent:
		student, err := s.students.FindByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch profile")
		}
		account.Student = student
	case models.RoleParent:
		parent, err := s.parents.FindByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch profile")
		}
		account.Parent = parent
		if parent != nil {
			children, err := s.parents.ChildrenByParentID(ctx, parent.ID)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch children")
			}
			account.Children = children
		}
	case models.RoleTeacher:
		teacher, err := s.teachers.FindByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch profile")
		}
		account.Teacher = teacher
	}

	return account, nil
}
