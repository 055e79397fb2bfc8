package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "jobportal/internal/errors"
	"jobportal/internal/service"
)

var errInvalidCompanyID = apperrors.Validation("invalid company id")

// CompanyHandler handles company directory endpoints.
type CompanyHandler struct {
	companyService service.CompanyService
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CompanyRequest represents a company create or update request.
type CompanyRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Website  *string `json:"website" validate:"omitempty,max=512"`
	Logo     *string `json:"logo" validate:"omitempty,max=512"`
	Location *string `json:"location" validate:"omitempty,max=255"`
	Size     *string `json:"size" validate:"omitempty,max=50"`
}

func (r CompanyRequest) input() service.CompanyInput {
	return service.CompanyInput{
		Name:     r.Name,
		Website:  r.Website,
		Logo:     r.Logo,
		Location: r.Location,
		Size:     r.Size,
	}
}

// List godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {array} model.Company
// @Router /companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.companyService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// Get godoc
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} model.Company
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	companyID, err := pathID(c, "id", errInvalidCompanyID)
	if err != nil {
		return err
	}
	company, err := h.companyService.Get(c.Request().Context(), companyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Create godoc
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompanyRequest true "Company"
// @Success 201 {object} model.Company
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req CompanyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	company, err := h.companyService.Create(c.Request().Context(), id, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, company)
}

// Update godoc
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param request body CompanyRequest true "Fields to change"
// @Success 200 {object} model.Company
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /companies/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	companyID, err := pathID(c, "id", errInvalidCompanyID)
	if err != nil {
		return err
	}
	var req CompanyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	company, err := h.companyService.Update(c.Request().Context(), id, companyID, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}
