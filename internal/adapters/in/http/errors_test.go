package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/pkg/errs"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"required_value_is_400", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid_value_is_400", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"missing_object_is_404", errs.NewObjectNotFoundError("restaurant", 7), http.StatusNotFound},
		{"guard_rejection_is_409", errs.NewInvalidStateTransitionError("restaurant", "ACTIVE", "ACTIVE"), http.StatusConflict},
		{"exhausted_usernames_is_409", errs.NewUsernameExhaustedError("john"), http.StatusConflict},
		{"bad_credentials_is_401", commands.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown_error_is_500", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, writeError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, writeError(c, assert.AnError))
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	assert.Contains(t, rec.Body.String(), "internal server error")
}
