package apperr

import (
	"errors"
	"log/slog"
	"net/http"

	"trainease/internal/api"

	"github.com/labstack/echo/v4"
)

// Respond writes err as a JSON error body. Causes of INTERNAL_ERROR are
// logged and never sent to the client.
func Respond(c echo.Context, err error) error {
	appErr := As(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", appErr.Error(),
		)
	}
	return c.JSON(appErr.HTTPStatus, api.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// HTTPErrorHandler renders errors returned from middleware and echo itself
// (unknown route, method not allowed) in the same shape as Respond.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		err = &AppError{Code: codeForStatus(he.Code), Message: msg, HTTPStatus: he.Code}
	}
	if werr := Respond(c, err); werr != nil {
		slog.Error("write error response", "error", werr)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusConflict:
		return CodeConflict
	}
	if status >= http.StatusInternalServerError {
		return CodeInternal
	}
	return http.StatusText(status)
}
