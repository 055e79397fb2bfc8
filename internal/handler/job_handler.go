package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"jobportal/internal/service"
)

// JobHandler handles job catalog endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// JobRequest represents a job create or update request. Omitted fields are
// left unchanged on update.
type JobRequest struct {
	Title           *string          `json:"title" validate:"omitempty,max=255"`
	Description     *string          `json:"description"`
	Location        *string          `json:"location" validate:"omitempty,max=255"`
	Type            *string          `json:"type" validate:"omitempty,max=20"`
	WorkMode        *string          `json:"workMode" validate:"omitempty,max=20"`
	EmploymentType  *string          `json:"employmentType" validate:"omitempty,max=20"`
	Role            *string          `json:"role" validate:"omitempty,max=100"`
	Level           *string          `json:"level" validate:"omitempty,max=20"`
	SalaryMin       *decimal.Decimal `json:"salaryMin" swaggertype:"number"`
	SalaryMax       *decimal.Decimal `json:"salaryMax" swaggertype:"number"`
	SalaryPeriod    *string          `json:"salaryPeriod" validate:"omitempty,max=20"`
	ExperienceYears *int             `json:"experienceYears"`
	CompanyID       *string          `json:"companyId"`
	CompanyName     *string          `json:"companyName" validate:"omitempty,max=255"`
	Image           *string          `json:"image" validate:"omitempty,max=512"`
	Source          *string          `json:"source" validate:"omitempty,max=100"`
	URL             *string          `json:"url" validate:"omitempty,max=512"`
	PostedAt        *time.Time       `json:"postedAt"`
}

func (r JobRequest) input() service.JobInput {
	return service.JobInput{
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		Type:            r.Type,
		WorkMode:        r.WorkMode,
		EmploymentType:  r.EmploymentType,
		Role:            r.Role,
		Level:           r.Level,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		SalaryPeriod:    r.SalaryPeriod,
		ExperienceYears: r.ExperienceYears,
		CompanyID:       r.CompanyID,
		CompanyName:     r.CompanyName,
		Image:           r.Image,
		Source:          r.Source,
		URL:             r.URL,
		PostedAt:        r.PostedAt,
	}
}

// List godoc
// @Summary List jobs
// @Description "all" or an empty value disables a filter.
// @Tags jobs
// @Produce json
// @Param q query string false "Search title, description and company"
// @Param location query string false "Location"
// @Param type query string false "remote, onsite, hybrid, full-time, part-time or contract"
// @Param role query string false "Role"
// @Param level query string false "intern, junior, mid, senior or lead"
// @Param company query string false "Company id or name"
// @Param url query string false "External url"
// @Param sort query string false "newest, oldest, -createdAt, createdAt, -postedAt or postedAt"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} model.Page[model.Job]
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs [get]
// @Router /admin/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	page := pageRequest(c)
	result, err := h.jobService.List(c.Request().Context(), service.JobQuery{
		Q:        c.QueryParam("q"),
		Location: c.QueryParam("location"),
		Type:     c.QueryParam("type"),
		Role:     c.QueryParam("role"),
		Level:    c.QueryParam("level"),
		Company:  c.QueryParam("company"),
		URL:      c.QueryParam("url"),
		Sort:     c.QueryParam("sort"),
		Page:     page.Page,
		Limit:    page.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Mine godoc
// @Summary List my postings
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} model.Page[model.Job]
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /jobs/mine [get]
func (h *JobHandler) Mine(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	result, err := h.jobService.ListMine(c.Request().Context(), id, pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Get godoc
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	jobID, err := pathID(c, "id", service.ErrJobNotFound)
	if err != nil {
		return err
	}
	job, err := h.jobService.Get(c.Request().Context(), jobID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Create godoc
// @Summary Post a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JobRequest true "Job"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req JobRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	job, err := h.jobService.Create(c.Request().Context(), id, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, job)
}

// Update godoc
// @Summary Update a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body JobRequest true "Fields to change"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "id", service.ErrJobNotFound)
	if err != nil {
		return err
	}
	var req JobRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	job, err := h.jobService.Update(c.Request().Context(), id, jobID, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a job
// @Description Applications and saved entries for the job are removed too.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [delete]
// @Router /admin/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "id", service.ErrJobNotFound)
	if err != nil {
		return err
	}
	if err := h.jobService.Delete(c.Request().Context(), id, jobID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "job deleted"})
}
