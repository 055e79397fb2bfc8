package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "jobportal/internal/errors"
	"jobportal/internal/service"
)

// UserHandler handles profile and resume endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfileRequest represents a profile update.
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"max=255"`
}

// GetMe godoc
// @Summary My profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	user, err := h.userService.GetMe(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update my profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.userService.UpdateMe(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UploadResume godoc
// @Summary Upload my resume
// @Description PDF only. The previous resume is replaced.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume (PDF)"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Router /users/me/resume [post]
func (h *UserHandler) UploadResume(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	header, err := c.FormFile("resume")
	if err != nil {
		return apperrors.Validation("resume file is required")
	}
	file, err := header.Open()
	if err != nil {
		return apperrors.Internal(err)
	}
	defer file.Close()

	user, err := h.userService.UploadResume(c.Request().Context(), id, service.ResumeUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteResume godoc
// @Summary Delete my resume
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Router /users/me/resume [delete]
func (h *UserHandler) DeleteResume(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	user, err := h.userService.DeleteResume(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
