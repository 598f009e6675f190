package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profgui/profgui-api/internal/models"
	"github.com/profgui/profgui-api/pkg/response"
)

type directoryService interface {
	ListTeachers(ctx context.Context, filter models.TeacherFilter) ([]models.TeacherWithUser, error)
}

// DirectoryHandler serves the public teacher directory and the form catalog.
type DirectoryHandler struct {
	service directoryService
}

// NewDirectoryHandler creates a new handler.
func NewDirectoryHandler(svc directoryService) *DirectoryHandler {
	return &DirectoryHandler{service: svc}
}

// ListTeachers godoc
// @Summary List approved teachers
// @Description Approved teachers only; filters combine with AND, "all" or absent means unfiltered
// @Tags Directory
// @Produce json
// @Param city query string false "Exact city match"
// @Param subject query string false "Case-insensitive subject substring"
// @Param level query string false "Case-insensitive level substring"
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *DirectoryHandler) ListTeachers(c *gin.Context) {
	filter := models.TeacherFilter{
		City:    c.Query("city"),
		Subject: c.Query("subject"),
		Level:   c.Query("level"),
	}

	teachers, err := h.service.ListTeachers(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, teachers)
}

// Catalog godoc
// @Summary Get the canonical subjects, levels, cities, and course types
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog [get]
func (h *DirectoryHandler) Catalog(c *gin.Context) {
	response.JSON(c, http.StatusOK, models.DefaultCatalog())
}
