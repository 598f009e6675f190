package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profgui/profgui-api/internal/middleware"
	"github.com/profgui/profgui-api/internal/models"
	"github.com/profgui/profgui-api/internal/service"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
	"github.com/profgui/profgui-api/pkg/response"
)

type adminService interface {
	Stats(ctx context.Context) (*models.Stats, error)
	ListPending(ctx context.Context) ([]models.Account, error)
	ListStudents(ctx context.Context) ([]models.StudentWithUser, error)
	ListParents(ctx context.Context) ([]models.ParentWithUser, error)
	ListTeachers(ctx context.Context) ([]models.TeacherWithUser, error)
	DeleteProfile(ctx context.Context, profileType service.ProfileType, id, actorID, ip string) error
	ExportTeachers(ctx context.Context, format string) ([]byte, string, error)
}

type approvalService interface {
	SetStatus(ctx context.Context, id string, target models.UserStatus, actorID, ip string) (*models.ApprovalResult, error)
}

// AdminHandler wires the administrator console endpoints.
type AdminHandler struct {
	admin    adminService
	approval approvalService
}

// NewAdminHandler creates a new handler.
func NewAdminHandler(admin adminService, approval approvalService) *AdminHandler {
	return &AdminHandler{admin: admin, approval: approval}
}

// Stats godoc
// @Summary Account count summary
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// ListPending godoc
// @Summary List identities awaiting review with their profiles
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/pending-users [get]
func (h *AdminHandler) ListPending(c *gin.Context) {
	accounts, err := h.admin.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, accounts)
}

// SetStatus godoc
// @Summary Approve or reject a pending identity
// @Description Approval returns a one-time temporary password for out-of-band delivery
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body object true "Target status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admin/users/{id}/status [patch]
func (h *AdminHandler) SetStatus(c *gin.Context) {
	sess := middleware.Session(c)
	if sess == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var payload struct {
		Status models.UserStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "status required"))
		return
	}

	result, err := h.approval.SetStatus(c.Request.Context(), c.Param("id"), payload.Status, sess.UserID, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// ListStudents godoc
// @Summary List all student profiles with identities
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/students [get]
func (h *AdminHandler) ListStudents(c *gin.Context) {
	students, err := h.admin.ListStudents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// ListParents godoc
// @Summary List all parent profiles with identities and children
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/parents [get]
func (h *AdminHandler) ListParents(c *gin.Context) {
	parents, err := h.admin.ListParents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, parents)
}

// ListTeachers godoc
// @Summary List all teacher profiles with identities
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/teachers [get]
func (h *AdminHandler) ListTeachers(c *gin.Context) {
	teachers, err := h.admin.ListTeachers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers)
}

// ExportTeachers godoc
// @Summary Export the teacher roster
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /admin/teachers/export [get]
func (h *AdminHandler) ExportTeachers(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	data, contentType, err := h.admin.ExportTeachers(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("teachers.%s", format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// DeleteProfile godoc
// @Summary Delete an account by profile id
// @Description Removes the profile, its children for parents, and the owning identity
// @Tags Admin
// @Produce json
// @Param type path string true "students, parents, or teachers"
// @Param id path string true "Profile ID"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/{type}/{id} [delete]
func (h *AdminHandler) DeleteProfile(profileType service.ProfileType) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Session(c)
		if sess == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			return
		}

		if err := h.admin.DeleteProfile(c.Request.Context(), profileType, c.Param("id"), sess.UserID, c.ClientIP()); err != nil {
			response.Error(c, err)
			return
		}

		response.NoContent(c)
	}
}
