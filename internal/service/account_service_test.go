package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/profgui/profgui-api/internal/models"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
)

type mockAccountUserRepo struct {
	user *models.User
}

func (m *mockAccountUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.user == nil {
		return nil, sql.ErrNoRows
	}
	return m.user, nil
}

func TestAccountServiceGetParentAccount(t *testing.T) {
	users := &mockAccountUserRepo{user: &models.User{ID: "u2", Role: models.RoleParent, Status: models.StatusApproved}}
	parents := &mockParentRepo{
		parent:   &models.Parent{ID: "p1", UserID: "u2", FirstName: "Fatou"},
		children: []models.Child{{ID: "c1", ParentID: "p1"}},
	}
	svc := NewAccountService(users, &mockStudentRepo{}, parents, &mockTeacherRepo{}, zap.NewNop())

	account, err := svc.GetAccount(context.Background(), "u2")
	require.NoError(t, err)
	require.NotNil(t, account.Parent)
	assert.Equal(t, "Fatou", account.Parent.FirstName)
	assert.Len(t, account.Children, 1)
	assert.Nil(t, account.Student)
	assert.Nil(t, account.Teacher)
}

func TestAccountServiceAdminHasNoProfile(t *testing.T) {
	users := &mockAccountUserRepo{user: &models.User{ID: "a1", Role: models.RoleAdmin, Status: models.StatusApproved}}
	svc := NewAccountService(users, &mockStudentRepo{}, &mockParentRepo{}, &mockTeacherRepo{}, zap.NewNop())

	account, err := svc.GetAccount(context.Background(), "a1")
	require.NoError(t, err)
	assert.Nil(t, account.Student)
	assert.Nil(t, account.Parent)
	assert.Nil(t, account.Teacher)
}

func TestAccountServiceUnknownUser(t *testing.T) {
	svc := NewAccountService(&mockAccountUserRepo{}, &mockStudentRepo{}, &mockParentRepo{}, &mockTeacherRepo{}, zap.NewNop())

	_, err := svc.GetAccount(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
