package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/profgui/profgui-api/internal/models"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
)

type mockAdminUserRepo struct {
	pending      []models.User
	pendingCount int
	auditLogs    []*models.AuditLog
}

func (m *mockAdminUserRepo) ListPending(ctx context.Context) ([]models.User, error) {
	return m.pending, nil
}

func (m *mockAdminUserRepo) CountPending(ctx context.Context) (int, error) {
	return m.pendingCount, nil
}

func (m *mockAdminUserRepo) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	m.auditLogs = append(m.auditLogs, log)
	return nil
}

type mockStudentRepo struct {
	student   *models.Student
	list      []models.StudentWithUser
	count     int
	deletedID string
}

func (m *mockStudentRepo) FindByUserID(ctx context.Context, userID string) (*models.Student, error) {
	if m.student == nil {
		return nil, sql.ErrNoRows
	}
	return m.student, nil
}

func (m *mockStudentRepo) ListWithUsers(ctx context.Context) ([]models.StudentWithUser, error) {
	return m.list, nil
}

func (m *mockStudentRepo) Count(ctx context.Context) (int, error) {
	return m.count, nil
}

func (m *mockStudentRepo) DeleteCascade(ctx context.Context, id string) error {
	m.deletedID = id
	return nil
}

type mockParentRepo struct {
	parent    *models.Parent
	children  []models.Child
	list      []models.ParentWithUser
	count     int
	deletedID string
}

func (m *mockParentRepo) FindByUserID(ctx context.Context, userID string) (*models.Parent, error) {
	if m.parent == nil {
		return nil, sql.ErrNoRows
	}
	return m.parent, nil
}

func (m *mockParentRepo) ChildrenByParentID(ctx context.Context, parentID string) ([]models.Child, error) {
	return m.children, nil
}

func (m *mockParentRepo) ListWithUsers(ctx context.Context) ([]models.ParentWithUser, error) {
	return m.list, nil
}

func (m *mockParentRepo) Count(ctx context.Context) (int, error) {
	return m.count, nil
}

func (m *mockParentRepo) DeleteCascade(ctx context.Context, id string) error {
	m.deletedID = id
	return nil
}

type mockTeacherRepo struct {
	teacher   *models.Teacher
	list      []models.TeacherWithUser
	count     int
	deletedID string
}

func (m *mockTeacherRepo) FindByUserID(ctx context.Context, userID string) (*models.Teacher, error) {
	if m.teacher == nil {
		return nil, sql.ErrNoRows
	}
	return m.teacher, nil
}

func (m *mockTeacherRepo) ListWithUsers(ctx context.Context) ([]models.TeacherWithUser, error) {
	return m.list, nil
}

func (m *mockTeacherRepo) Count(ctx context.Context) (int, error) {
	return m.count, nil
}

func (m *mockTeacherRepo) DeleteCascade(ctx context.Context, id string) error {
	m.deletedID = id
	return nil
}

func newAdminService(users *mockAdminUserRepo, students *mockStudentRepo, parents *mockParentRepo, teachers *mockTeacherRepo) *AdminService {
	return NewAdminService(users, students, parents, teachers, zap.NewNop())
}

func TestAdminServiceStats(t *testing.T) {
	svc := newAdminService(
		&mockAdminUserRepo{pendingCount: 4},
		&mockStudentRepo{count: 10},
		&mockParentRepo{count: 5},
		&mockTeacherRepo{count: 7},
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.Stats{TotalStudents: 10, TotalParents: 5, TotalTeachers: 7, PendingUsers: 4}, stats)
}

func TestAdminServiceListPendingJoinsProfiles(t *testing.T) {
	users := &mockAdminUserRepo{pending: []models.User{
		{ID: "u1", Role: models.RoleStudent, Status: models.StatusPending},
		{ID: "u2", Role: models.RoleParent, Status: models.StatusPending},
		{ID: "u3", Role: models.RoleTeacher, Status: models.StatusPending},
	}}
	svc := newAdminService(
		users,
		&mockStudentRepo{student: &models.Student{ID: "s1", UserID: "u1"}},
		&mockParentRepo{
			parent:   &models.Parent{ID: "p1", UserID: "u2"},
			children: []models.Child{{ID: "c1", ParentID: "p1", FirstName: "Oumar"}},
		},
		&mockTeacherRepo{teacher: &models.Teacher{ID: "t1", UserID: "u3"}},
	)

	accounts, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "s1", accounts[0].Student.ID)
	assert.Equal(t, "p1", accounts[1].Parent.ID)
	require.Len(t, accounts[1].Children, 1)
	assert.Equal(t, "t1", accounts[2].Teacher.ID)
}

func TestAdminServiceListPendingToleratesMissingProfile(t *testing.T) {
	users := &mockAdminUserRepo{pending: []models.User{
		{ID: "u1", Role: models.RoleStudent, Status: models.StatusPending},
	}}
	svc := newAdminService(users, &mockStudentRepo{}, &mockParentRepo{}, &mockTeacherRepo{})

	accounts, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Nil(t, accounts[0].Student)
}

func TestAdminServiceDeleteProfile(t *testing.T) {
	users := &mockAdminUserRepo{}
	parents := &mockParentRepo{}
	svc := newAdminService(users, &mockStudentRepo{}, parents, &mockTeacherRepo{})

	require.NoError(t, svc.DeleteProfile(context.Background(), ProfileParents, "p1", "admin-1", "127.0.0.1"))
	assert.Equal(t, "p1", parents.deletedID)
	require.Len(t, users.auditLogs, 1)
	assert.Equal(t, models.AuditActionDelete, users.auditLogs[0].Action)
	assert.Equal(t, "parents", users.auditLogs[0].Resource)
}

func TestAdminServiceDeleteUnknownProfileType(t *testing.T) {
	svc := newAdminService(&mockAdminUserRepo{}, &mockStudentRepo{}, &mockParentRepo{}, &mockTeacherRepo{})

	err := svc.DeleteProfile(context.Background(), ProfileType("admins"), "x", "admin-1", "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAdminServiceExportTeachersCSV(t *testing.T) {
	teachers := &mockTeacherRepo{list: []models.TeacherWithUser{
		{
			Teacher: models.Teacher{
				FirstName: "Mamadou",
				LastName:  "Diallo",
				City:      "Conakry",
				Subjects:  pq.StringArray{"Mathématiques", "Physique-Chimie"},
				Levels:    pq.StringArray{"Lycée"},
			},
			User: models.User{Phone: "620112233", Status: models.StatusApproved},
		},
	}}
	svc := newAdminService(&mockAdminUserRepo{}, &mockStudentRepo{}, &mockParentRepo{}, teachers)

	data, contentType, err := svc.ExportTeachers(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	body := string(data)
	assert.True(t, strings.HasPrefix(body, "Name,City,Subjects,Levels,Phone,Status"))
	assert.Contains(t, body, "Mamadou Diallo")
	assert.Contains(t, body, "620112233")
}

func TestAdminServiceExportTeachersPDF(t *testing.T) {
	svc := newAdminService(&mockAdminUserRepo{}, &mockStudentRepo{}, &mockParentRepo{}, &mockTeacherRepo{})

	data, contentType, err := svc.ExportTeachers(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestAdminServiceExportTeachersUnknownFormat(t *testing.T) {
	svc := newAdminService(&mockAdminUserRepo{}, &mockStudentRepo{}, &mockParentRepo{}, &mockTeacherRepo{})

	_, _, err := svc.ExportTeachers(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
