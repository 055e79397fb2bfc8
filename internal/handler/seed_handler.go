package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobportal/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string             `json:"message"`
	Created service.SeedResult `json:"created"`
}

// Seed godoc
// @Summary Load demo data
// @Description Creates demo users, companies, jobs and an application. Existing records are skipped.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	result, err := h.seedService.Seed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SeedResponse{
		Message: "demo data seeded",
		Created: *result,
	})
}
