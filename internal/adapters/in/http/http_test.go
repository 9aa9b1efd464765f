package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	frontdash_http "frontdash/internal/adapters/in/http"
	"frontdash/internal/adapters/out/auth"
)

func TestRequestValidator(t *testing.T) {
	validator := frontdash_http.NewRequestValidator()

	t.Run("accepts_valid_request", func(t *testing.T) {
		req := frontdash_http.CreateDriverRequest{Name: "Sam Porter"}
		assert.NoError(t, validator.Validate(&req))
	})

	t.Run("rejects_missing_required_field", func(t *testing.T) {
		req := frontdash_http.CreateDriverRequest{}
		err := validator.Validate(&req)
		require.Error(t, err)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("rejects_short_new_password", func(t *testing.T) {
		req := frontdash_http.ChangePasswordRequest{
			Username:        "mario01",
			CurrentPassword: "old-secret",
			NewPassword:     "short",
		}
		assert.Error(t, validator.Validate(&req))
	})
}

func TestOwnerAuthMiddleware(t *testing.T) {
	issuer := auth.NewJWTTokenIssuer("test-signing-secret", time.Hour)
	middleware := frontdash_http.OwnerAuthMiddleware(issuer)
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("passes_valid_token_and_sets_claims", func(t *testing.T) {
		token, err := issuer.Issue("mario01", 42)
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPut, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, middleware(next)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "mario01", c.Get("owner_username"))
		assert.Equal(t, 42, c.Get("owner_restaurant_id"))
	})

	t.Run("rejects_missing_token", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPut, "/", nil), rec)

		require.NoError(t, middleware(next)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects_forged_token", func(t *testing.T) {
		forged, err := auth.NewJWTTokenIssuer("other-secret", time.Hour).Issue("mario01", 42)
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPut, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+forged)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, middleware(next)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpsertOperatingHours_OwnerScope(t *testing.T) {
	server := frontdash_http.NewServer(frontdash_http.Handlers{})

	t.Run("rejects_other_owners_restaurant", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPut, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("9")
		c.Set("owner_restaurant_id", 7)

		require.NoError(t, server.UpsertOperatingHours(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rejects_missing_owner_claim", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPut, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("9")

		require.NoError(t, server.UpsertOperatingHours(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("generates_request_id_when_absent", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, frontdash_http.RequestIDMiddleware(next)(c))
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("propagates_client_request_id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "client-supplied-id")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, frontdash_http.RequestIDMiddleware(next)(c))
		assert.Equal(t, "client-supplied-id", rec.Header().Get("X-Request-Id"))
	})
}

func TestRequestLoggingMiddleware_PassesThrough(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	middleware := frontdash_http.RequestLoggingMiddleware(zap.NewNop())
	err := middleware(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
