package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobportal/internal/service"
)

// FilterHandler serves the search filter values.
type FilterHandler struct {
	filterService service.FilterService
}

// NewFilterHandler creates a new filter handler.
func NewFilterHandler(filterService service.FilterService) *FilterHandler {
	return &FilterHandler{filterService: filterService}
}

// Get godoc
// @Summary Filter values
// @Description Distinct locations and company names, sorted.
// @Tags filters
// @Produce json
// @Success 200 {object} service.Filters
// @Router /filters [get]
func (h *FilterHandler) Get(c echo.Context) error {
	filters, err := h.filterService.Filters(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, filters)
}
