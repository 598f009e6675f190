package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profgui/profgui-api/internal/middleware"
	"github.com/profgui/profgui-api/internal/models"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
	"github.com/profgui/profgui-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, sess *models.Session, ip string) error
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error
}

type accountService interface {
	GetAccount(ctx context.Context, userID string) (*models.Account, error)
}

// CookieSettings carries the session cookie contract shared by login and
// logout.
type CookieSettings struct {
	Name   string
	MaxAge int
	Secure bool
}

// AuthHandler wires the session endpoints to the auth service.
type AuthHandler struct {
	service  authService
	accounts accountService
	cookie   CookieSettings
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService, accounts accountService, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{service: svc, accounts: accounts, cookie: cookie}
}

// Login godoc
// @Summary Authenticate user
// @Description Authenticate by phone and password; sets the session cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	req.IP = c.ClientIP()

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(h.cookie.Name, res.Token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	response.JSON(c, http.StatusOK, res)
}

// Logout godoc
// @Summary End the current session
// @Tags Authentication
// @Produce json
// @Success 204 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.Session(c)
	if sess == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Logout(c.Request.Context(), sess, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	response.NoContent(c)
}

// ChangePassword godoc
// @Summary Replace the caller's password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.ChangePasswordRequest true "Change password"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	sess := middleware.Session(c)
	if sess == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), sess.UserID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Me godoc
// @Summary Get the caller's account
// @Description Returns the identity plus its role-specific profile and children
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /user [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.Session(c)
	if sess == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	account, err := h.accounts.GetAccount(c.Request.Context(), sess.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, account)
}
