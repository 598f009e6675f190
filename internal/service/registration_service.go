package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/profgui/profgui-api/internal/models"
	"github.com/profgui/profgui-api/internal/repository"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
)

type registrationRepository interface {
	CreateStudentAccount(ctx context.Context, user *models.User, student *models.Student) error
	CreateParentAccount(ctx context.Context, user *models.User, parent *models.Parent, children []models.Child) error
	CreateTeacherAccount(ctx context.Context, user *models.User, teacher *models.Teacher) error
}

// RegistrationService validates role-specific signup input and creates the
// pending identity together with its profile. New accounts cannot
// authenticate or appear in the directory until an administrator approves
// them.
type RegistrationService struct {
	repo      registrationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(repo registrationRepository, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{repo: repo, validator: validate, logger: logger}
}

// RegisterStudent creates a pending student account.
func (s *RegistrationService) RegisterStudent(ctx context.Context, req models.StudentRegistration) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}
	if err := checkListItems("subjects", req.Subjects); err != nil {
		return err
	}

	user, err := newPendingUser(req.Email, req.Phone, req.Password, models.RoleStudent)
	if err != nil {
		return err
	}
	student := &models.Student{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		City:       req.City,
		Level:      req.Level,
		Subjects:   req.Subjects,
		CourseType: models.CourseType(req.CourseType),
	}

	if err := s.repo.CreateStudentAccount(ctx, user, student); err != nil {
		return s.mapCreateError(err, "student")
	}
	s.logger.Info("student registered", zap.String("user_id", user.ID))
	return nil
}

// RegisterParent creates a pending parent account with its dependents.
func (s *RegistrationService) RegisterParent(ctx context.Context, req models.ParentRegistration) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}
	for _, child := range req.Children {
		if err := checkListItems("children subjects", child.Subjects); err != nil {
			return err
		}
	}

	user, err := newPendingUser(req.Email, req.Phone, req.Password, models.RoleParent)
	if err != nil {
		return err
	}
	parent := &models.Parent{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
	}
	children := make([]models.Child, len(req.Children))
	for i, child := range req.Children {
		children[i] = models.Child{
			FirstName: child.FirstName,
			LastName:  child.LastName,
			Level:     child.Level,
			Subjects:  child.Subjects,
		}
	}

	if err := s.repo.CreateParentAccount(ctx, user, parent, children); err != nil {
		return s.mapCreateError(err, "parent")
	}
	s.logger.Info("parent registered", zap.String("user_id", user.ID), zap.Int("children", len(children)))
	return nil
}

// RegisterTeacher creates a pending teacher account.
func (s *RegistrationService) RegisterTeacher(ctx context.Context, req models.TeacherRegistration) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}
	if err := checkListItems("subjects", req.Subjects); err != nil {
		return err
	}
	if err := checkListItems("levels", req.Levels); err != nil {
		return err
	}

	user, err := newPendingUser(req.Email, req.Phone, req.Password, models.RoleTeacher)
	if err != nil {
		return err
	}
	teacher := &models.Teacher{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		City:         req.City,
		Subjects:     req.Subjects,
		Levels:       req.Levels,
		Diploma:      req.Diploma,
		Experience:   optional(req.Experience),
		Availability: req.Availability,
		CourseType:   models.CourseType(req.CourseType),
		Bio:          optional(req.Bio),
	}

	if err := s.repo.CreateTeacherAccount(ctx, user, teacher); err != nil {
		return s.mapCreateError(err, "teacher")
	}
	s.logger.Info("teacher registered", zap.String("user_id", user.ID))
	return nil
}

func (s *RegistrationService) mapCreateError(err error, role string) error {
	if errors.Is(err, repository.ErrDuplicatePhone) {
		return appErrors.ErrDuplicatePhone
	}
	s.logger.Error("registration failed", zap.String("role", role), zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "registration failed")
}

func newPendingUser(email, phone, password string, role models.UserRole) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	return &models.User{
		Email:        optional(email),
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         role,
		Status:       models.StatusPending,
	}, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
