package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveWithHeaders(cfg SecurityHeadersConfig, h echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	return rec, SecurityHeaders(cfg)(h)(c)
}

func ok(c echo.Context) error { return c.String(http.StatusOK, "OK") }

func TestSecurityHeaders_Defaults(t *testing.T) {
	rec, err := serveWithHeaders(SecurityHeadersConfig{}, ok)

	assert.NoError(t, err)
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'none'")
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'")
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Contains(t, rec.Header().Get("Permissions-Policy"), "microphone=()")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestSecurityHeaders_Overrides(t *testing.T) {
	rec, err := serveWithHeaders(SecurityHeadersConfig{ReferrerPolicy: "same-origin"}, ok)

	assert.NoError(t, err)
	assert.Equal(t, "same-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, DefaultSecurityHeadersConfig().ContentSecurityPolicy, rec.Header().Get("Content-Security-Policy"))
}

func TestSecurityHeaders_SetEvenOnHandlerError(t *testing.T) {
	rec, err := serveWithHeaders(SecurityHeadersConfig{}, func(echo.Context) error {
		return echo.ErrInternalServerError
	})

	assert.Error(t, err)
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
}
