package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "edutech/internal/errors"
)

// httpError converts a service error into the {"message": ...} response for one endpoint.
func httpError(err error, msgs apperrors.Messages) error {
	httpErr := apperrors.MapErrorToHTTP(err, msgs)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
}
