package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/profgui/profgui-api/internal/models"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
)

type mockAuthRepo struct {
	user              *models.User
	findErr           error
	updatePasswordErr error
	lastPasswordHash  string
	lastMustChange    bool
	auditLogs         []*models.AuditLog
}

func (m *mockAuthRepo) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.user, nil
}

func (m *mockAuthRepo) UpdatePassword(ctx context.Context, id, passwordHash string, mustChange bool) error {
	if m.updatePasswordErr != nil {
		return m.updatePasswordErr
	}
	m.lastPasswordHash = passwordHash
	m.lastMustChange = mustChange
	return nil
}

func (m *mockAuthRepo) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	m.auditLogs = append(m.auditLogs, log)
	return nil
}

type mockSessionStore struct {
	sessions  map[string]*models.Session
	createErr error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]*models.Session)}
}

func (m *mockSessionStore) Create(ctx context.Context, userID string, role models.UserRole) (*models.Session, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	sess := &models.Session{Token: "token-" + userID, UserID: userID, Role: role, CreatedAt: time.Now()}
	m.sessions[sess.Token] = sess
	return sess, nil
}

func (m *mockSessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	sess, ok := m.sessions[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return sess, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func approvedUser(t *testing.T, role models.UserRole, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return &models.User{ID: "u1", Phone: "620112233", PasswordHash: string(hash), Role: role, Status: models.StatusApproved}
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	repo := &mockAuthRepo{user: approvedUser(t, models.RoleStudent, "secret123")}
	sessions := newMockSessionStore()
	svc := NewAuthService(repo, sessions, validator.New(), zap.NewNop())

	res, err := svc.Login(context.Background(), models.LoginRequest{Phone: "620112233", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "u1", res.User.ID)
	assert.Contains(t, sessions.sessions, res.Token)
	require.Len(t, repo.auditLogs, 1)
	assert.Equal(t, models.AuditActionLogin, repo.auditLogs[0].Action)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := &mockAuthRepo{user: approvedUser(t, models.RoleStudent, "secret123")}
	svc := NewAuthService(repo, newMockSessionStore(), validator.New(), zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Phone: "620112233", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownPhone(t *testing.T) {
	repo := &mockAuthRepo{findErr: sql.ErrNoRows}
	svc := NewAuthService(repo, newMockSessionStore(), validator.New(), zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Phone: "699999999", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginPendingRefused(t *testing.T) {
	user := approvedUser(t, models.RoleTeacher, "secret123")
	user.Status = models.StatusPending
	svc := NewAuthService(&mockAuthRepo{user: user}, newMockSessionStore(), validator.New(), zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Phone: "620112233", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAccountPending.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginPendingAdminAllowed(t *testing.T) {
	user := approvedUser(t, models.RoleAdmin, "admin123")
	user.Status = models.StatusPending
	svc := NewAuthService(&mockAuthRepo{user: user}, newMockSessionStore(), validator.New(), zap.NewNop())

	res, err := svc.Login(context.Background(), models.LoginRequest{Phone: "620112233", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, res.User.Role)
}

func TestAuthServiceLoginRejectedRefused(t *testing.T) {
	user := approvedUser(t, models.RoleParent, "secret123")
	user.Status = models.StatusRejected
	svc := NewAuthService(&mockAuthRepo{user: user}, newMockSessionStore(), validator.New(), zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Phone: "620112233", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAccountRejected.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLogoutInvalidatesSession(t *testing.T) {
	repo := &mockAuthRepo{user: approvedUser(t, models.RoleStudent, "secret123")}
	sessions := newMockSessionStore()
	svc := NewAuthService(repo, sessions, validator.New(), zap.NewNop())

	res, err := svc.Login(context.Background(), models.LoginRequest{Phone: "620112233", Password: "secret123"})
	require.NoError(t, err)

	sess := sessions.sessions[res.Token]
	require.NoError(t, svc.Logout(context.Background(), sess, "127.0.0.1"))
	assert.NotContains(t, sessions.sessions, res.Token)
	require.Len(t, repo.auditLogs, 2)
	assert.Equal(t, models.AuditActionLogout, repo.auditLogs[1].Action)
}

func TestAuthServiceChangePassword(t *testing.T) {
	repo := &mockAuthRepo{}
	svc := NewAuthService(repo, newMockSessionStore(), validator.New(), zap.NewNop())

	require.NoError(t, svc.ChangePassword(context.Background(), "u1", models.ChangePasswordRequest{NewPassword: "brandnew"}))
	assert.False(t, repo.lastMustChange)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.lastPasswordHash), []byte("brandnew")))
}

func TestAuthServiceChangePasswordTooShort(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, newMockSessionStore(), validator.New(), zap.NewNop())

	err := svc.ChangePassword(context.Background(), "u1", models.ChangePasswordRequest{NewPassword: "abc"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
