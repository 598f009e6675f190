package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/profgui/profgui-api/internal/models"
	"github.com/profgui/profgui-api/internal/session"
	appErrors "github.com/profgui/profgui-api/pkg/errors"
	"github.com/profgui/profgui-api/pkg/response"
)

// ContextSessionKey is the gin context key storing the resolved session.
const ContextSessionKey = "currentSession"

// Auth protects routes by requiring a live session cookie.
func Auth(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "session expired"))
			} else {
				response.Error(c, err)
			}
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, sess)
		c.Next()
	}
}

// RequireAdmin allows only administrator sessions through. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := Session(c)
		if sess == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if sess.Role != models.RoleAdmin {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Session returns the session attached to the context, or nil.
func Session(c *gin.Context) *models.Session {
	if v, exists := c.Get(ContextSessionKey); exists {
		if sess, ok := v.(*models.Session); ok {
			return sess
		}
	}
	return nil
}
