package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/profgui/profgui-api/internal/models"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
)

// filterAll is the sentinel clients send for "no filter".
const filterAll = "all"

type directoryTeacherRepository interface {
	ListApprovedWithUsers(ctx context.Context) ([]models.TeacherWithUser, error)
}

// DirectoryService serves the public listing of approved teachers.
type DirectoryService struct {
	teachers directoryTeacherRepository
	logger   *zap.Logger
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(teachers directoryTeacherRepository, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{teachers: teachers, logger: logger}
}

// ListTeachers returns approved teachers matching the filter. City matches
// exactly; subject and level match case-insensitively as substrings of the
// comma-joined list. Active filters combine with AND.
func (s *DirectoryService) ListTeachers(ctx context.Context, filter models.TeacherFilter) ([]models.TeacherWithUser, error) {
	teachers, err := s.teachers.ListApprovedWithUsers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}

	city := normalizeFilter(filter.City)
	subject := normalizeFilter(filter.Subject)
	level := normalizeFilter(filter.Level)

	result := make([]models.TeacherWithUser, 0, len(teachers))
	for _, t := range teachers {
		if city != "" && t.City != city {
			continue
		}
		if subject != "" && !containsFold(t.Subjects, subject) {
			continue
		}
		if level != "" && !containsFold(t.Levels, level) {
			continue
		}
		result = append(result, t)
	}

	return result, nil
}

func normalizeFilter(v string) string {
	if v == filterAll {
		return ""
	}
	return v
}

func containsFold(items []string, needle string) bool {
	joined := strings.ToLower(strings.Join(items, ","))
	return strings.Contains(joined, strings.ToLower(needle))
}
