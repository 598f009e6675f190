package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/profgui/profgui-api/internal/models"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
)

// tempPasswordAlphabet excludes visually ambiguous characters (0/O, 1/I/l,
// and lowercase i/o) so the credential survives handwritten delivery.
const (
	tempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"
	tempPasswordLength   = 8
)

type approvalUserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateStatus(ctx context.Context, id string, status models.UserStatus) error
	UpdatePassword(ctx context.Context, id, passwordHash string, mustChange bool) error
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// ApprovalService runs the review state machine: pending identities move to
// approved or rejected, and both outcomes are terminal.
type ApprovalService struct {
	repo   approvalUserRepository
	logger *zap.Logger
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(repo approvalUserRepository, logger *zap.Logger) *ApprovalService {
	return &ApprovalService{repo: repo, logger: logger}
}

// SetStatus reviews a pending identity. Approval issues a one-time
// temporary credential: the identity's stored hash is overwritten and the
// plaintext is returned to the administrator for out-of-band delivery.
// Rejection only flips the status.
func (s *ApprovalService) SetStatus(ctx context.Context, id string, target models.UserStatus, actorID, ip string) (*models.ApprovalResult, error) {
	if !models.ValidReviewTarget(target) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be approved or rejected")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if user.Status != models.StatusPending {
		return nil, appErrors.ErrAlreadyReviewed
	}

	result := &models.ApprovalResult{Status: target}

	if target == models.StatusApproved {
		tempPassword, err := generateTemporaryPassword()
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate temporary password")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash temporary password")
		}
		if err := s.repo.UpdatePassword(ctx, id, string(hash), true); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store temporary password")
		}
		result.TempPassword = tempPassword
		result.UserEmail = user.Email
		result.UserPhone = user.Phone
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update status")
	}

	detail := fmt.Sprintf(`{"status":%q}`, target)
	if err := s.repo.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     &actorID,
		Action:     models.AuditActionApproval,
		Resource:   "users",
		ResourceID: &id,
		Detail:     &detail,
		IPAddress:  ip,
	}); err != nil {
		s.logger.Warn("failed to record review audit log", zap.Error(err))
	}

	s.logger.Info("account reviewed",
		zap.String("user_id", id),
		zap.String("status", string(target)),
		zap.String("reviewed_by", actorID),
	)

	return result, nil
}

func generateTemporaryPassword() (string, error) {
	alphabetLen := big.NewInt(int64(len(tempPasswordAlphabet)))
	buf := make([]byte, tempPasswordLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		buf[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
