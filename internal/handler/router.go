package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/profgui/profgui-api/internal/middleware"
	"github.com/profgui/profgui-api/internal/service"
	"github.com/profgui/profgui-api/internal/session"
)

// Routes bundles the handlers and session wiring for registration.
type Routes struct {
	Auth         *AuthHandler
	Registration *RegistrationHandler
	Directory    *DirectoryHandler
	Admin        *AdminHandler

	Sessions   session.Store
	CookieName string
}

// Register mounts the API surface onto the engine under the given prefix.
func (rt *Routes) Register(r *gin.Engine, prefix string) {
	api := r.Group(prefix)

	api.GET("/catalog", rt.Directory.Catalog)
	api.GET("/teachers", rt.Directory.ListTeachers)

	api.POST("/register/student", rt.Registration.RegisterStudent)
	api.POST("/register/parent", rt.Registration.RegisterParent)
	api.POST("/register/teacher", rt.Registration.RegisterTeacher)

	api.POST("/login", rt.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.Auth(rt.Sessions, rt.CookieName))
	authed.POST("/logout", rt.Auth.Logout)
	authed.POST("/change-password", rt.Auth.ChangePassword)
	authed.GET("/user", rt.Auth.Me)

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/stats", rt.Admin.Stats)
	admin.GET("/pending-users", rt.Admin.ListPending)
	admin.PATCH("/users/:id/status", rt.Admin.SetStatus)
	admin.GET("/students", rt.Admin.ListStudents)
	admin.GET("/parents", rt.Admin.ListParents)
	admin.GET("/teachers", rt.Admin.ListTeachers)
	admin.GET("/teachers/export", rt.Admin.ExportTeachers)
	admin.DELETE("/students/:id", rt.Admin.DeleteProfile(service.ProfileStudents))
	admin.DELETE("/parents/:id", rt.Admin.DeleteProfile(service.ProfileParents))
	admin.DELETE("/teachers/:id", rt.Admin.DeleteProfile(service.ProfileTeachers))
}
