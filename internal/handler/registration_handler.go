package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profgui/profgui-api/internal/models"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
	"github.com/profgui/profgui-api/pkg/response"
)

type registrationService interface {
	RegisterStudent(ctx context.Context, req models.StudentRegistration) error
	RegisterParent(ctx context.Context, req models.ParentRegistration) error
	RegisterTeacher(ctx context.Context, req models.TeacherRegistration) error
}

const pendingApprovalMessage = "Registration successful. Your account is pending administrator approval."

// RegistrationHandler wires the public signup endpoints.
type RegistrationHandler struct {
	service registrationService
}

// NewRegistrationHandler creates a new handler.
func NewRegistrationHandler(svc registrationService) *RegistrationHandler {
	return &RegistrationHandler{service: svc}
}

// RegisterStudent godoc
// @Summary Register a student account
// @Tags Registration
// @Accept json
// @Produce json
// @Param payload body models.StudentRegistration true "Student registration"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /register/student [post]
func (h *RegistrationHandler) RegisterStudent(c *gin.Context) {
	var req models.StudentRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	if err := h.service.RegisterStudent(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": pendingApprovalMessage})
}

// RegisterParent godoc
// @Summary Register a parent account with children
// @Tags Registration
// @Accept json
// @Produce json
// @Param payload body models.ParentRegistration true "Parent registration"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /register/parent [post]
func (h *RegistrationHandler) RegisterParent(c *gin.Context) {
	var req models.ParentRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	if err := h.service.RegisterParent(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": pendingApprovalMessage})
}

// RegisterTeacher godoc
// @Summary Register a teacher account
// @Tags Registration
// @Accept json
// @Produce json
// @Param payload body models.TeacherRegistration true "Teacher registration"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /register/teacher [post]
func (h *RegistrationHandler) RegisterTeacher(c *gin.Context) {
	var req models.TeacherRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	if err := h.service.RegisterTeacher(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": pendingApprovalMessage})
}
