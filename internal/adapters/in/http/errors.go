package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFromError maps the domain error taxonomy onto HTTP status codes.
// Missing entities map to 404, state machine conflicts to 409, rejected
// input to 400. Anything unrecognized is an infrastructure failure and maps
// to 500 so it is never mistaken for a client error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoOrderFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict),
		errors.Is(err, commands.ErrNoAvailableDriversFound):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorJSON writes the mapped status with a uniform error body. Internal
// failure details are not echoed back to the client.
func errorJSON(ctx echo.Context, err error) error {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// badRequestJSON reports a malformed or rejected request body.
func badRequestJSON(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
