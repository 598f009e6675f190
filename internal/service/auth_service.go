package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/profgui/profgui-api/internal/models"
	"github.com/profgui/profgui-api/internal/session"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
)

type authUserRepository interface {
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, mustChange bool) error
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// AuthService authenticates by phone + credential and manages sessions.
type AuthService struct {
	repo      authUserRepository
	sessions  session.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo authUserRepository, sessions session.Store, validate *validator.Validate, logger *zap.Logger) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, validator: validate, logger: logger}
}

// Login verifies the credentials, enforces approval gating, and issues a
// server-side session. Pending accounts are refused unless the role is
// admin; rejected accounts are always refused.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.repo.FindByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	if user.Status == models.StatusPending && user.Role != models.RoleAdmin {
		return nil, appErrors.ErrAccountPending
	}
	if user.Status == models.StatusRejected {
		return nil, appErrors.ErrAccountRejected
	}

	sess, err := s.sessions.Create(ctx, user.ID, user.Role)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
	}

	if err := s.repo.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     &user.ID,
		Action:     models.AuditActionLogin,
		Resource:   "auth",
		ResourceID: &user.ID,
		IPAddress:  req.IP,
	}); err != nil {
		s.logger.Warn("failed to record login audit log", zap.Error(err))
	}

	return &models.LoginResponse{
		Token: sess.Token,
		User: models.UserInfo{
			ID:                 user.ID,
			Role:               user.Role,
			MustChangePassword: user.MustChangePassword,
		},
	}, nil
}

// Logout invalidates the session server-side.
func (s *AuthService) Logout(ctx context.Context, sess *models.Session, ip string) error {
	if err := s.sessions.Delete(ctx, sess.Token); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to end session")
	}

	if err := s.repo.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     &sess.UserID,
		Action:     models.AuditActionLogout,
		Resource:   "auth",
		ResourceID: &sess.UserID,
		IPAddress:  ip,
	}); err != nil {
		s.logger.Warn("failed to record logout audit log", zap.Error(err))
	}
	return nil
}

// ChangePassword replaces the caller's credential and clears the
// force-replace flag. The temporary credential issued at approval means no
// old-password check applies here.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hash), false); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update password")
	}
	return nil
}
