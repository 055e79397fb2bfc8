package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobportal/internal/service"
)

// SavedHandler handles the saved-jobs endpoints.
type SavedHandler struct {
	savedService service.SavedJobService
}

// NewSavedHandler creates a new saved-jobs handler.
func NewSavedHandler(savedService service.SavedJobService) *SavedHandler {
	return &SavedHandler{savedService: savedService}
}

// SavedResponse reports whether a job is saved.
type SavedResponse struct {
	Saved bool `json:"saved"`
}

// List godoc
// @Summary Saved jobs
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} model.Page[model.Job]
// @Router /saved [get]
func (h *SavedHandler) List(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	result, err := h.savedService.List(c.Request().Context(), id, pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// IsSaved godoc
// @Summary Whether a job is saved
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {object} SavedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /saved/{jobId} [get]
func (h *SavedHandler) IsSaved(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "jobId", errInvalidJobID)
	if err != nil {
		return err
	}
	saved, err := h.savedService.IsSaved(c.Request().Context(), id, jobID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SavedResponse{Saved: saved})
}

// Save godoc
// @Summary Save a job
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /saved/{jobId} [post]
func (h *SavedHandler) Save(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "jobId", errInvalidJobID)
	if err != nil {
		return err
	}
	if err := h.savedService.Save(c.Request().Context(), id, jobID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, MessageResponse{Message: "saved"})
}

// Unsave godoc
// @Summary Remove a saved job
// @Tags saved
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /saved/{jobId} [delete]
func (h *SavedHandler) Unsave(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "jobId", errInvalidJobID)
	if err != nil {
		return err
	}
	if err := h.savedService.Unsave(c.Request().Context(), id, jobID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
