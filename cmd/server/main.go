package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "jobportal/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"jobportal/internal/auth"
	"jobportal/internal/config"
	"jobportal/internal/db"
	"jobportal/internal/handler"
	"jobportal/internal/logger"
	"jobportal/internal/repository"
	"jobportal/internal/router"
	"jobportal/internal/service"
	"jobportal/internal/storage"
)

// @title Job Portal API
// @version 1.0
// @description Job search API with postings, applications, saved jobs, companies and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn("JWT_SECRET not set, using the development default")
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Warn("close database", "error", err.Error())
		}
	}()
	log.Info("connected to database", "driver", cfg.DBDriver)

	// Drop tables if RESET_DB environment variable is set
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			return err
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	log.Info("database migrations completed")

	files, err := storage.New(storage.Config{
		Type:      cfg.StorageDriver,
		BasePath:  cfg.UploadDir,
		BaseURL:   cfg.UploadBaseURL,
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		return err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	companyRepo := repository.NewCompanyRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)
	savedRepo := repository.NewSavedJobRepository(gormDB)

	// Initialize auth components
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	gate := auth.NewGate(issuer, userRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, issuer)
	jobService := service.NewJobService(jobRepo, companyRepo)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, userRepo)
	savedService := service.NewSavedJobService(savedRepo, jobRepo)
	filterService := service.NewFilterService(jobRepo, companyRepo)
	companyService := service.NewCompanyService(companyRepo)
	userService := service.NewUserService(userRepo, files, cfg.MaxResumeBytes, log)
	seedService := service.NewSeedService(userRepo, companyRepo, jobRepo, applicationRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, cfg, log, gate, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Job:         handler.NewJobHandler(jobService),
		Application: handler.NewApplicationHandler(applicationService),
		Saved:       handler.NewSavedHandler(savedService),
		Filter:      handler.NewFilterHandler(filterService),
		Company:     handler.NewCompanyHandler(companyService),
		User:        handler.NewUserHandler(userService),
		Admin:       handler.NewAdminHandler(userService, applicationService),
		Seed:        handler.NewSeedHandler(seedService),
	})

	log.Info("swagger documentation available", "url", swaggerURL(cfg)+"/swagger/index.html")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// swaggerURL may already include a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		return "http://localhost:" + cfg.ServerPort
	}
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return strings.TrimRight(host, "/")
	}
	return "http://" + strings.TrimRight(host, "/")
}
