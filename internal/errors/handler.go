package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders every error returned by a handler or middleware
// as {"message": ...}. Server errors are logged with their cause.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := resolve(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err.Error(),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, ErrorResponse{Message: message})
		}
		if writeErr != nil {
			log.Error("write error response", "error", writeErr.Error())
		}
	}
}

func resolve(err error) (int, string) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		httpErr := MapErrorToHTTP(domainErr)
		return httpErr.StatusCode, httpErr.Message
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code >= http.StatusInternalServerError {
			return echoErr.Code, "internal server error"
		}
		switch m := echoErr.Message.(type) {
		case string:
			return echoErr.Code, m
		case ErrorResponse:
			return echoErr.Code, m.Message
		default:
			return echoErr.Code, fmt.Sprint(m)
		}
	}

	return http.StatusInternalServerError, "internal server error"
}
