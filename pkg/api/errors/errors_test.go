package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/pkg/models"
)

// newContext creates an echo.Context backed by an httptest.NewRecorder.
func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// captureLog redirects the standard logger to a buffer for the duration of fn.
func captureLog(fn func()) string {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)
	fn()
	return buf.String()
}

func TestErrorResponses(t *testing.T) {
	internal := errors.New("pq: connection refused")

	tests := []struct {
		name       string
		write      func(echo.Context) error
		wantStatus int
		wantCode   string
		wantLog    string
	}{
		{
			name:       "Validation",
			write:      func(c echo.Context) error { return ValidationError(c, internal) },
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_error",
			wantLog:    "[VALIDATION ERROR]",
		},
		{
			name:       "Service unavailable",
			write:      func(c echo.Context) error { return ServiceUnavailable(c, internal) },
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "service_unavailable",
			wantLog:    "[STORE ERROR]",
		},
		{
			name:       "Internal",
			write:      func(c echo.Context) error { return InternalError(c, internal) },
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
			wantLog:    "[INTERNAL ERROR]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, "/api/v1/audio/generate")

			logged := captureLog(func() {
				require.NoError(t, tt.write(c))
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
			assert.Equal(t, tt.wantCode, parseBody(t, rec).Error)
			assert.NotContains(t, rec.Body.String(), "pq:", "internal details must not leak")
			assert.Contains(t, logged, tt.wantLog)
			assert.Contains(t, logged, internal.Error())
			assert.Contains(t, logged, "/api/v1/audio/generate")
		})
	}
}

func TestUnauthorizedError(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/v1/billing/subscription")

	require.NoError(t, UnauthorizedError(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", parseBody(t, rec).Error)
}

func TestNotFoundError(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/v1/billing/subscription")

	require.NoError(t, NotFoundError(c, "No subscription found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := parseBody(t, rec)
	assert.Equal(t, "not_found", resp.Error)
	assert.Equal(t, "No subscription found", resp.Message)
}
