package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/profgui/profgui-api/internal/models"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
)

type mockDirectoryRepo struct {
	teachers []models.TeacherWithUser
	err      error
}

func (m *mockDirectoryRepo) ListApprovedWithUsers(ctx context.Context) ([]models.TeacherWithUser, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.teachers, nil
}

func directoryFixture() []models.TeacherWithUser {
	return []models.TeacherWithUser{
		{
			Teacher: models.Teacher{
				ID:       "t1",
				City:     "Conakry",
				Subjects: pq.StringArray{"Mathématiques", "Physique-Chimie"},
				Levels:   pq.StringArray{"Lycée"},
			},
		},
		{
			Teacher: models.Teacher{
				ID:       "t2",
				City:     "Kindia",
				Subjects: pq.StringArray{"Anglais"},
				Levels:   pq.StringArray{"Collège", "Primaire"},
			},
		},
	}
}

func listIDs(teachers []models.TeacherWithUser) []string {
	ids := make([]string, 0, len(teachers))
	for _, t := range teachers {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestDirectoryServiceNoFilter(t *testing.T) {
	svc := NewDirectoryService(&mockDirectoryRepo{teachers: directoryFixture()}, zap.NewNop())

	teachers, err := svc.ListTeachers(context.Background(), models.TeacherFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, listIDs(teachers))
}

func TestDirectoryServiceAllSentinel(t *testing.T) {
	svc := NewDirectoryService(&mockDirectoryRepo{teachers: directoryFixture()}, zap.NewNop())

	teachers, err := svc.ListTeachers(context.Background(), models.TeacherFilter{City: "all", Subject: "all", Level: "all"})
	require.NoError(t, err)
	assert.Len(t, teachers, 2)
}

func TestDirectoryServiceCityExactMatch(t *testing.T) {
	svc := NewDirectoryService(&mockDirectoryRepo{teachers: directoryFixture()}, zap.NewNop())

	teachers, err := svc.ListTeachers(context.Background(), models.TeacherFilter{City: "Kindia"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2"}, listIDs(teachers))

	teachers, err = svc.ListTeachers(context.Background(), models.TeacherFilter{City: "kindia"})
	require.NoError(t, err)
	assert.Empty(t, teachers)
}

func TestDirectoryServiceSubjectSubstringFold(t *testing.T) {
	svc := NewDirectoryService(&mockDirectoryRepo{teachers: directoryFixture()}, zap.NewNop())

	teachers, err := svc.ListTeachers(context.Background(), models.TeacherFilter{Subject: "physique"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, listIDs(teachers))
}

func TestDirectoryServiceFiltersCombineWithAnd(t *testing.T) {
	svc := NewDirectoryService(&mockDirectoryRepo{teachers: directoryFixture()}, zap.NewNop())

	teachers, err := svc.ListTeachers(context.Background(), models.TeacherFilter{City: "Conakry", Level: "collège"})
	require.NoError(t, err)
	assert.Empty(t, teachers)
}

func TestDirectoryServiceRepoError(t *testing.T) {
	svc := NewDirectoryService(&mockDirectoryRepo{err: errors.New("boom")}, zap.NewNop())

	_, err := svc.ListTeachers(context.Background(), models.TeacherFilter{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}
