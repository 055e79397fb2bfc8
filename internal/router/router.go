package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"jobportal/internal/auth"
	"jobportal/internal/config"
	apperrors "jobportal/internal/errors"
	"jobportal/internal/handler"
)

// bodyOverhead is the allowance for multipart framing above the resume limit.
const bodyOverhead = 1 << 20

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth        *handler.AuthHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	Saved       *handler.SavedHandler
	Filter      *handler.FilterHandler
	Company     *handler.CompanyHandler
	User        *handler.UserHandler
	Admin       *handler.AdminHandler
	Seed        *handler.SeedHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, log *slog.Logger, gate *auth.Gate, h Handlers) {
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(log)
	e.Validator = NewValidator()

	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(cfg.CORSOrigin, ","),
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dK", (cfg.MaxResumeBytes+bodyOverhead)/1024)))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.StorageDriver == "local" && strings.HasPrefix(cfg.UploadBaseURL, "/") {
		e.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})

	authed := gate.Authenticate()
	require := gate.Require

	// Auth routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/auth/me", h.Auth.Me, authed)

	// Job routes
	jobs := api.Group("/jobs")
	jobs.GET("", h.Job.List)
	jobs.GET("/mine", h.Job.Mine, authed, require(auth.ActionJobListMine))
	jobs.GET("/:id", h.Job.Get)
	jobs.POST("", h.Job.Create, authed, require(auth.ActionJobCreate))
	jobs.PUT("/:id", h.Job.Update, authed, require(auth.ActionJobUpdate))
	jobs.PATCH("/:id", h.Job.Update, authed, require(auth.ActionJobUpdate))
	jobs.DELETE("/:id", h.Job.Delete, authed, require(auth.ActionJobDelete))

	// Application routes
	apps := api.Group("/applications", authed)
	apps.GET("", h.Application.ListAll, require(auth.ActionApplicationListAll))
	apps.GET("/mine", h.Application.Mine, require(auth.ActionApplicationListMine))
	apps.GET("/for-my-jobs", h.Application.ForMyJobs, require(auth.ActionApplicationListForMyJobs))
	apps.GET("/job/:jobId", h.Application.ListForJob, require(auth.ActionApplicationListForJob))
	apps.POST("/:id", h.Application.Apply, require(auth.ActionApplicationCreate))
	apps.PATCH("/:id", h.Application.SetStatus, require(auth.ActionApplicationSetStatus))

	// Saved job routes
	saved := api.Group("/saved", authed, require(auth.ActionSavedJobManage))
	saved.GET("", h.Saved.List)
	saved.GET("/:jobId", h.Saved.IsSaved)
	saved.POST("/:jobId", h.Saved.Save)
	saved.DELETE("/:jobId", h.Saved.Unsave)

	// Profile routes
	users := api.Group("/users", authed, require(auth.ActionProfileManage))
	users.GET("/me", h.User.GetMe)
	users.PUT("/me", h.User.UpdateMe)
	users.POST("/me/resume", h.User.UploadResume)
	users.DELETE("/me/resume", h.User.DeleteResume)

	api.GET("/filters", h.Filter.Get)

	// Company routes
	companies := api.Group("/companies")
	companies.GET("", h.Company.List)
	companies.GET("/:id", h.Company.Get)
	companies.POST("", h.Company.Create, authed, require(auth.ActionCompanyCreate))
	companies.PUT("/:id", h.Company.Update, authed, require(auth.ActionCompanyUpdate))

	// Admin routes
	admin := api.Group("/admin", authed)
	admin.GET("/users", h.Admin.ListUsers, require(auth.ActionUserList))
	admin.DELETE("/users/:id", h.Admin.DeleteUser, require(auth.ActionUserDelete))
	admin.GET("/jobs", h.Job.List, require(auth.ActionJobModerate))
	admin.DELETE("/jobs/:id", h.Job.Delete, require(auth.ActionJobModerate))
	admin.GET("/applications", h.Application.ListAll, require(auth.ActionApplicationListAll))
	admin.DELETE("/applications/:id", h.Admin.DeleteApplication, require(auth.ActionApplicationDelete))
	admin.POST("/seed", h.Seed.Seed, require(auth.ActionDataSeed))
}

// requestLogger logs one line per request through slog.
func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				log.Warn("request", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			log.Info("request", attrs...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports fields by their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.Validation("invalid request")
	}
	return apperrors.Validation(describe(fieldErrs[0]))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "email":
		return "invalid email format"
	default:
		return fe.Field() + " is invalid"
	}
}
