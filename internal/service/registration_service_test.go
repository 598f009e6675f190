package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/profgui/profgui-api/internal/models"
	"github.com/profgui/profgui-api/internal/repository"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
)

type mockRegistrationRepo struct {
	createErr error
	user      *models.User
	student   *models.Student
	parent    *models.Parent
	children  []models.Child
	teacher   *models.Teacher
}

func (m *mockRegistrationRepo) CreateStudentAccount(ctx context.Context, user *models.User, student *models.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.user = user
	m.student = student
	return nil
}

func (m *mockRegistrationRepo) CreateParentAccount(ctx context.Context, user *models.User, parent *models.Parent, children []models.Child) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.user = user
	m.parent = parent
	m.children = children
	return nil
}

func (m *mockRegistrationRepo) CreateTeacherAccount(ctx context.Context, user *models.User, teacher *models.Teacher) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.user = user
	m.teacher = teacher
	return nil
}

func validStudentRegistration() models.StudentRegistration {
	return models.StudentRegistration{
		FirstName:  "Aissatou",
		LastName:   "Bah",
		Phone:      "620112233",
		Password:   "secret123",
		City:       "Conakry",
		Level:      "Lycée",
		Subjects:   []string{"Mathématiques", "Physique-Chimie"},
		CourseType: "domicile",
	}
}

func validTeacherRegistration() models.TeacherRegistration {
	return models.TeacherRegistration{
		FirstName:    "Ibrahima",
		LastName:     "Sow",
		Phone:        "621445566",
		Email:        "i.sow@example.com",
		Password:     "secret123",
		City:         "Kindia",
		Subjects:     []string{"Anglais"},
		Levels:       []string{"Lycée", "Collège"},
		Diploma:      "Licence en anglais",
		Availability: "Soirs et week-ends",
		CourseType:   "en_ligne",
	}
}

func TestRegistrationServiceRegisterStudent(t *testing.T) {
	repo := &mockRegistrationRepo{}
	svc := NewRegistrationService(repo, validator.New(), zap.NewNop())

	require.NoError(t, svc.RegisterStudent(context.Background(), validStudentRegistration()))

	require.NotNil(t, repo.user)
	assert.Equal(t, models.RoleStudent, repo.user.Role)
	assert.Equal(t, models.StatusPending, repo.user.Status)
	assert.Nil(t, repo.user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.user.PasswordHash), []byte("secret123")))
	assert.Equal(t, "Conakry", repo.student.City)
	assert.Equal(t, models.CourseAtHome, repo.student.CourseType)
}

func TestRegistrationServiceRegisterParent(t *testing.T) {
	repo := &mockRegistrationRepo{}
	svc := NewRegistrationService(repo, validator.New(), zap.NewNop())

	req := models.ParentRegistration{
		FirstName: "Fatou",
		LastName:  "Camara",
		Phone:     "622778899",
		Email:     "fatou@example.com",
		Password:  "secret123",
		Address:   "Kaloum, Conakry",
		Children: []models.ChildRegistration{
			{FirstName: "Oumar", LastName: "Camara", Level: "Collège", Subjects: []string{"Français"}},
		},
	}
	require.NoError(t, svc.RegisterParent(context.Background(), req))

	assert.Equal(t, models.RoleParent, repo.user.Role)
	require.NotNil(t, repo.user.Email)
	assert.Equal(t, "fatou@example.com", *repo.user.Email)
	require.Len(t, repo.children, 1)
	assert.Equal(t, "Oumar", repo.children[0].FirstName)
}

func TestRegistrationServiceRegisterTeacher(t *testing.T) {
	repo := &mockRegistrationRepo{}
	svc := NewRegistrationService(repo, validator.New(), zap.NewNop())

	require.NoError(t, svc.RegisterTeacher(context.Background(), validTeacherRegistration()))

	assert.Equal(t, models.RoleTeacher, repo.user.Role)
	assert.Equal(t, []string{"Lycée", "Collège"}, []string(repo.teacher.Levels))
	assert.Nil(t, repo.teacher.Experience)
	assert.Equal(t, models.CourseOnline, repo.teacher.CourseType)
}

func TestRegistrationServiceDuplicatePhone(t *testing.T) {
	repo := &mockRegistrationRepo{createErr: repository.ErrDuplicatePhone}
	svc := NewRegistrationService(repo, validator.New(), zap.NewNop())

	err := svc.RegisterStudent(context.Background(), validStudentRegistration())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicatePhone.Code, appErrors.FromError(err).Code)
}

func TestRegistrationServiceShortPassword(t *testing.T) {
	svc := NewRegistrationService(&mockRegistrationRepo{}, validator.New(), zap.NewNop())

	req := validStudentRegistration()
	req.Password = "abc"
	err := svc.RegisterStudent(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRegistrationServiceTeacherRequiresEmail(t *testing.T) {
	svc := NewRegistrationService(&mockRegistrationRepo{}, validator.New(), zap.NewNop())

	req := validTeacherRegistration()
	req.Email = ""
	err := svc.RegisterTeacher(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRegistrationServiceRejectsCommaInListItem(t *testing.T) {
	svc := NewRegistrationService(&mockRegistrationRepo{}, validator.New(), zap.NewNop())

	req := validTeacherRegistration()
	req.Subjects = []string{"Anglais, Français"}
	err := svc.RegisterTeacher(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRegistrationServiceInvalidCourseType(t *testing.T) {
	svc := NewRegistrationService(&mockRegistrationRepo{}, validator.New(), zap.NewNop())

	req := validStudentRegistration()
	req.CourseType = "par_avion"
	err := svc.RegisterStudent(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
