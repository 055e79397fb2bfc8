package handler

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobportal/internal/auth"
	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
)

// MessageResponse is returned by endpoints without a resource body.
type MessageResponse struct {
	Message string `json:"message"`
}

// bind decodes the request into req and runs struct validation.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperrors.Validation(err.Error())
	}
	return nil
}

// caller returns the identity attached by the auth gate.
func caller(c echo.Context) (auth.Identity, error) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		return auth.Identity{}, apperrors.Unauthenticated("authentication required")
	}
	return id, nil
}

// pathID parses the named path parameter. Malformed ids yield fail.
func pathID(c echo.Context, name string, fail error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fail
	}
	return id, nil
}

// pageRequest reads page and limit. Unparsable values fall back to the
// defaults.
func pageRequest(c echo.Context) model.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return model.NewPageRequest(page, limit)
}
