package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/profgui/profgui-api/internal/models"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
	"github.com/profgui/profgui-api/pkg/export"
)

// ProfileType names the deletable profile collections.
type ProfileType string

const (
	ProfileStudents ProfileType = "students"
	ProfileParents  ProfileType = "parents"
	ProfileTeachers ProfileType = "teachers"
)

type adminUserRepository interface {
	ListPending(ctx context.Context) ([]models.User, error)
	CountPending(ctx context.Context) (int, error)
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

type adminStudentRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Student, error)
	ListWithUsers(ctx context.Context) ([]models.StudentWithUser, error)
	Count(ctx context.Context) (int, error)
	DeleteCascade(ctx context.Context, id string) error
}

type adminParentRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Parent, error)
	ChildrenByParentID(ctx context.Context, parentID string) ([]models.Child, error)
	ListWithUsers(ctx context.Context) ([]models.ParentWithUser, error)
	Count(ctx context.Context) (int, error)
	DeleteCascade(ctx context.Context, id string) error
}

type adminTeacherRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Teacher, error)
	ListWithUsers(ctx context.Context) ([]models.TeacherWithUser, error)
	Count(ctx context.Context) (int, error)
	DeleteCascade(ctx context.Context, id string) error
}

// AdminService backs the administrator console: counts, pending reviews,
// full listings, roster export, and account removal.
type AdminService struct {
	users    adminUserRepository
	students adminStudentRepository
	parents  adminParentRepository
	teachers adminTeacherRepository
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	users adminUserRepository,
	students adminStudentRepository,
	parents adminParentRepository,
	teachers adminTeacherRepository,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		users:    users,
		students: students,
		parents:  parents,
		teachers: teachers,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// Stats returns the dashboard count summary. The pending count covers all
// roles, not only the three profile collections.
func (s *AdminService) Stats(ctx context.Context) (*models.Stats, error) {
	students, err := s.students.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count students")
	}
	parents, err := s.parents.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count parents")
	}
	teachers, err := s.teachers.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count teachers")
	}
	pending, err := s.users.CountPending(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count pending users")
	}

	return &models.Stats{
		TotalStudents: students,
		TotalParents:  parents,
		TotalTeachers: teachers,
		PendingUsers:  pending,
	}, nil
}

// ListPending returns every pending identity joined with its profile (and
// children for parents) for review.
func (s *AdminService) ListPending(ctx context.Context) ([]models.Account, error) {
	users, err := s.users.ListPending(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list pending users")
	}

	accounts := make([]models.Account, 0, len(users))
	for _, user := range users {
		account := models.Account{User: user}
		switch user.Role {
		case models.RoleStudent:
			student, err := s.students.FindByUserID(ctx, user.ID)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student profile")
			}
			account.Student = student
		case models.RoleParent:
			parent, err := s.parents.FindByUserID(ctx, user.ID)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch parent profile")
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
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch teacher profile")
			}
			account.Teacher = teacher
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// ListStudents returns all student profiles with their identities.
func (s *AdminService) ListStudents(ctx context.Context) ([]models.StudentWithUser, error) {
	students, err := s.students.ListWithUsers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// ListParents returns all parent profiles with their identities and children.
func (s *AdminService) ListParents(ctx context.Context) ([]models.ParentWithUser, error) {
	parents, err := s.parents.ListWithUsers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list parents")
	}
	return parents, nil
}

// ListTeachers returns all teacher profiles with their identities.
func (s *AdminService) ListTeachers(ctx context.Context) ([]models.TeacherWithUser, error) {
	teachers, err := s.teachers.ListWithUsers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

// DeleteProfile removes a profile, its dependents, and the owning identity.
// An unknown profile id is treated as already deleted.
func (s *AdminService) DeleteProfile(ctx context.Context, profileType ProfileType, id, actorID, ip string) error {
	var err error
	switch profileType {
	case ProfileStudents:
		err = s.students.DeleteCascade(ctx, id)
	case ProfileParents:
		err = s.parents.DeleteCascade(ctx, id)
	case ProfileTeachers:
		err = s.teachers.DeleteCascade(ctx, id)
	default:
		return appErrors.Clone(appErrors.ErrValidation, "unknown profile type")
	}
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete account")
	}

	detail := fmt.Sprintf(`{"profile_type":%q}`, profileType)
	if err := s.users.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     &actorID,
		Action:     models.AuditActionDelete,
		Resource:   string(profileType),
		ResourceID: &id,
		Detail:     &detail,
		IPAddress:  ip,
	}); err != nil {
		s.logger.Warn("failed to record delete audit log", zap.Error(err))
	}

	return nil
}

// ExportTeachers renders the full teacher roster as CSV or PDF bytes.
func (s *AdminService) ExportTeachers(ctx context.Context, format string) ([]byte, string, error) {
	teachers, err := s.teachers.ListWithUsers(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}

	table := export.Table{
		Columns: []string{"Name", "City", "Subjects", "Levels", "Phone", "Status"},
	}
	for _, t := range teachers {
		table.Rows = append(table.Rows, []string{
			t.FirstName + " " + t.LastName,
			t.City,
			strings.Join(t.Subjects, ", "),
			strings.Join(t.Levels, ", "),
			t.User.Phone,
			string(t.User.Status),
		})
	}

	switch format {
	case "csv":
		data, err := s.csv.Render(table)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return data, "text/csv", nil
	case "pdf":
		data, err := s.pdf.Render(table, "Teacher roster")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return data, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
