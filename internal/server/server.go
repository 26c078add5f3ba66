package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scrumboard/internal/auth"
	"scrumboard/internal/config"
	"scrumboard/internal/handler"
	"scrumboard/internal/logger"
	"scrumboard/internal/metrics"
	"scrumboard/internal/middleware"
	"scrumboard/internal/migrations"
	"scrumboard/internal/repository"
	"scrumboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.SugaredLogger
}

// Init connects to the database, applies migrations when AUTO_MIGRATE is set and builds
// the HTTP engine.
func Init(cfg *config.Config) (*Server, error) {
	zlog, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Filename:    cfg.LogFile,
		Development: cfg.GinMode == gin.DebugMode,
	})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to build logger: %w", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	zlog.Info("✅ Connected to database")

	if cfg.AutoMigrate {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := migrations.Up(sqlDB); err != nil {
			return nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
		}
		zlog.Info("✅ Database schema is up to date")
	}

	return New(cfg, db, zlog), nil
}

// New wires repositories, services and handlers over an open database.
func New(cfg *config.Config, db *gorm.DB, zlog *zap.SugaredLogger) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Observe(zlog))

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	sprintRepo := repository.NewSprintRepository(db)
	issueRepo := repository.NewIssueRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, membershipRepo, zlog.Named("users"))
	projectService := service.NewProjectService(projectRepo, sprintRepo, issueRepo, zlog.Named("projects"))
	sprintService := service.NewSprintService(sprintRepo, projectRepo, issueRepo, zlog.Named("sprints"), time.Now)
	issueService := service.NewIssueService(issueRepo, projectRepo, sprintRepo, membershipRepo, zlog.Named("issues"))

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	sprintHandler := handler.NewSprintHandler(sprintService)
	issueHandler := handler.NewIssueHandler(issueService)

	signer := auth.NewSigner(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTExpiryHours)*time.Hour)

	// Public routes
	r.GET("/healthz", health(db))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(signer, userService))
	{
		// User routes
		authorized.GET("/me", userHandler.Me)
		authorized.GET("/organization/members", userHandler.Members)
		authorized.GET("/users/:id/issues", issueHandler.GetByUser)

		// Project routes
		authorized.POST("/projects", projectHandler.Create)
		authorized.GET("/projects", projectHandler.GetAll)
		authorized.GET("/projects/:id", projectHandler.GetByID)
		authorized.POST("/projects/:id/sprints", sprintHandler.Create)
		authorized.GET("/projects/:id/sprints", sprintHandler.GetByProject)
		authorized.POST("/projects/:id/issues", issueHandler.Create)
		authorized.GET("/projects/:id/backlog", issueHandler.GetBacklog)

		// Sprint routes
		authorized.GET("/sprints/:id", sprintHandler.GetByID)
		authorized.GET("/sprints/:id/board", sprintHandler.Board)
		authorized.GET("/sprints/:id/issues", issueHandler.GetBySprint)
		authorized.POST("/sprints/:id/start", sprintHandler.Start)
		authorized.POST("/sprints/:id/complete", sprintHandler.Complete)
		authorized.POST("/sprints/:id/board/move", issueHandler.Move)

		// Issue routes
		authorized.PUT("/issues/order", issueHandler.UpdateOrder)
		authorized.GET("/issues/:id", issueHandler.GetByID)
		authorized.PUT("/issues/:id", issueHandler.Update)
		authorized.DELETE("/issues/:id", issueHandler.Delete)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Log:    zlog,
	}
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	s.Serve(quit)
}

// Serve listens on the configured port until stop receives, then drains in-flight
// requests and releases resources.
func (s *Server) Serve(stop <-chan os.Signal) {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Log.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Log.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	<-stop
	s.Log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Errorf("❌ Server forced to shutdown: %s", err)
	}

	s.Log.Info("✅ Server exited properly")
	if err := s.Close(); err != nil {
		s.Log.Warnf("⚠️  Cleanup finished with errors: %s", err)
	}
}

// Close releases the database pool and flushes the logger.
func (s *Server) Close() error {
	var result *multierror.Error
	if sqlDB, err := s.DB.DB(); err != nil {
		result = multierror.Append(result, err)
	} else if err := sqlDB.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("close database: %w", err))
	}
	// Syncing stdout fails on some platforms, only the file sink matters.
	if err := s.Log.Sync(); err != nil && s.Config.LogFile != "" {
		result = multierror.Append(result, fmt.Errorf("sync logger: %w", err))
	}
	return result.ErrorOrNil()
}
