package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/service"
)

var (
	errInvalidJobID         = apperrors.Validation("invalid job id")
	errInvalidApplicationID = apperrors.Validation("invalid application id")
)

// ApplicationHandler handles application endpoints.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// ApplyRequest represents an application to a job.
type ApplyRequest struct {
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl" validate:"omitempty,max=512"`
}

// StatusRequest represents an application status change.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Apply godoc
// @Summary Apply to a job
// @Description Without resumeUrl the applicant's uploaded resume is attached.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body ApplyRequest false "Application"
// @Success 201 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /applications/{id} [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "id", errInvalidJobID)
	if err != nil {
		return err
	}
	var req ApplyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	app, err := h.applicationService.Apply(c.Request().Context(), id, jobID, service.ApplyInput{
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// SetStatus godoc
// @Summary Change an application's status
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body StatusRequest true "applied, review, accepted or rejected"
// @Success 200 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applications/{id} [patch]
func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	appID, err := pathID(c, "id", errInvalidApplicationID)
	if err != nil {
		return err
	}
	var req StatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	app, err := h.applicationService.SetStatus(c.Request().Context(), id, appID, model.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// ListForJob godoc
// @Summary Applications to one job
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} model.Page[model.Application]
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applications/job/{jobId} [get]
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "jobId", errInvalidJobID)
	if err != nil {
		return err
	}
	result, err := h.applicationService.ListForJob(c.Request().Context(), id, jobID, pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Mine godoc
// @Summary My applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} model.Page[model.Application]
// @Router /applications/mine [get]
func (h *ApplicationHandler) Mine(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	result, err := h.applicationService.ListMine(c.Request().Context(), id, pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ForMyJobs godoc
// @Summary Applications to my postings
// @Description Admins see every application.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} model.Page[model.Application]
// @Failure 403 {object} errors.ErrorResponse
// @Router /applications/for-my-jobs [get]
func (h *ApplicationHandler) ForMyJobs(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	result, err := h.applicationService.ListForMyJobs(c.Request().Context(), id, pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ListAll godoc
// @Summary All applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} model.Page[model.Application]
// @Failure 403 {object} errors.ErrorResponse
// @Router /applications [get]
// @Router /admin/applications [get]
func (h *ApplicationHandler) ListAll(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	result, err := h.applicationService.ListAll(c.Request().Context(), id, pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
