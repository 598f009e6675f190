package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/profgui/profgui-api/api/swagger"
	"github.com/profgui/profgui-api/internal/handler"
	"github.com/profgui/profgui-api/internal/middleware"
	"github.com/profgui/profgui-api/internal/repository"
	"github.com/profgui/profgui-api/internal/service"
	"github.com/profgui/profgui-api/internal/session"
	"github.com/profgui/profgui-api/pkg/cache"
	"github.com/profgui/profgui-api/pkg/config"
	"github.com/profgui/profgui-api/pkg/database"
	"github.com/profgui/profgui-api/pkg/logger"
	corsmiddleware "github.com/profgui/profgui-api/pkg/middleware/cors"
	reqidmiddleware "github.com/profgui/profgui-api/pkg/middleware/requestid"
)

// @title ProfGui API
// @version 1.0.0
// @description Tutor marketplace backend: registration, approval, and the teacher directory
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close()

	userRepo := repository.NewUserRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	parentRepo := repository.NewParentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)

	if err := seedAdmin(userRepo, cfg.Admin); err != nil {
		logr.Sugar().Fatalw("failed to seed admin account", "error", err)
	}

	sessions := session.NewRedisStore(redisClient, cfg.Session.TTL)
	validate := validator.New()

	registrationSvc := service.NewRegistrationService(registrationRepo, validate, logr)
	authSvc := service.NewAuthService(userRepo, sessions, validate, logr)
	approvalSvc := service.NewApprovalService(userRepo, logr)
	accountSvc := service.NewAccountService(userRepo, studentRepo, parentRepo, teacherRepo, logr)
	directorySvc := service.NewDirectoryService(teacherRepo, logr)
	adminSvc := service.NewAdminService(userRepo, studentRepo, parentRepo, teacherRepo, logr)
	metricsSvc := service.NewMetricsService()

	cookie := handler.CookieSettings{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.Session.TTL / time.Second),
		Secure: cfg.Session.SecureCookie,
	}

	routes := &handler.Routes{
		Auth:         handler.NewAuthHandler(authSvc, accountSvc, cookie),
		Registration: handler.NewRegistrationHandler(registrationSvc),
		Directory:    handler.NewDirectoryHandler(directorySvc),
		Admin:        handler.NewAdminHandler(adminSvc, approvalSvc),
		Sessions:     sessions,
		CookieName:   cfg.Session.CookieName,
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes.Register(r, cfg.APIPrefix)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// seedAdmin guarantees the bootstrap administrator exists so the approval
// queue is never unreachable on a fresh database.
func seedAdmin(users *repository.UserRepository, cfg config.AdminConfig) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return users.EnsureAdmin(ctx, cfg.Email, cfg.Phone, string(hash))
}
