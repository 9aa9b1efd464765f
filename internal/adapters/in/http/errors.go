package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/pkg/errs"
)

// writeError maps application errors onto HTTP statuses: validation errors
// become 400, missing rows 404, guard rejections and exhausted username
// space 409, bad credentials 401, everything else 500.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStateTransition), errors.Is(err, errs.ErrUsernameExhausted):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Do not leak driver internals to the client.
		message = "internal server error"
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}
