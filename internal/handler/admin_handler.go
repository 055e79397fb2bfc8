package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "jobportal/internal/errors"
	"jobportal/internal/service"
)

var errInvalidUserID = apperrors.Validation("invalid user id")

// AdminHandler handles user and application administration.
type AdminHandler struct {
	userService        service.UserService
	applicationService service.ApplicationService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(userService service.UserService, applicationService service.ApplicationService) *AdminHandler {
	return &AdminHandler{userService: userService, applicationService: applicationService}
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} model.Page[model.User]
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	result, err := h.userService.ListUsers(c.Request().Context(), id, pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description The user's applications and saved jobs are removed. Their postings are kept.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "id", errInvalidUserID)
	if err != nil {
		return err
	}
	if err := h.userService.DeleteUser(c.Request().Context(), id, userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "user deleted"})
}

// DeleteApplication godoc
// @Summary Delete an application
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/applications/{id} [delete]
func (h *AdminHandler) DeleteApplication(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	appID, err := pathID(c, "id", errInvalidApplicationID)
	if err != nil {
		return err
	}
	if err := h.applicationService.Delete(c.Request().Context(), id, appID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "application deleted"})
}
