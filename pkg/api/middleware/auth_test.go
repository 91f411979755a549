package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/pkg/auth"
	"github.com/audiomint/backend/pkg/testdata"
)

const testSecret = "test-secret-key-minimum-32-characters-long"

type seen struct {
	userID int
	method string
}

func run(t *testing.T, mw echo.MiddlewareFunc, setup func(*http.Request)) (*httptest.ResponseRecorder, *seen) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/audio/generate", nil)
	setup(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *seen
	err := mw(func(c echo.Context) error {
		id, _ := UserID(c)
		method, _ := c.Get(ContextAuthMethod).(string)
		got = &seen{userID: id, method: method}
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	return rec, got
}

func TestJWTMiddleware(t *testing.T) {
	token, err := auth.GenerateJWT(42, "user@example.com", testSecret, 1)
	require.NoError(t, err)

	t.Run("Valid token", func(t *testing.T) {
		rec, got := run(t, JWTMiddleware(testSecret), func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, 42, got.userID)
		assert.Equal(t, AuthMethodJWT, got.method)
	})

	tests := []struct {
		name    string
		header  string
		wantErr string
	}{
		{name: "Missing header", header: "", wantErr: "missing_token"},
		{name: "Wrong scheme", header: "Basic abc", wantErr: "invalid_token_format"},
		{name: "Bad token", header: "Bearer nope", wantErr: "invalid_token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, got := run(t, JWTMiddleware(testSecret), func(r *http.Request) {
				if tt.header != "" {
					r.Header.Set("Authorization", tt.header)
				}
			})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantErr)
			assert.Nil(t, got)
		})
	}

	t.Run("API key is not accepted", func(t *testing.T) {
		rec, _ := run(t, JWTMiddleware(testSecret), func(r *http.Request) {
			r.Header.Set(APIKeyHeader, "am_whatever")
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestJWTOrAPIKey(t *testing.T) {
	client := testdata.OpenDB(t)
	u := testdata.CreateUser(t, client, testdata.WithAPIKey("am_valid_key"))
	mw := JWTOrAPIKey(testSecret, client)

	t.Run("Valid API key", func(t *testing.T) {
		rec, got := run(t, mw, func(r *http.Request) {
			r.Header.Set(APIKeyHeader, "am_valid_key")
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, u.ID, got.userID)
		assert.Equal(t, AuthMethodAPIKey, got.method)
	})

	t.Run("Unknown API key", func(t *testing.T) {
		rec, got := run(t, mw, func(r *http.Request) {
			r.Header.Set(APIKeyHeader, "am_unknown")
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_api_key")
		assert.Nil(t, got)
	})

	t.Run("Falls back to bearer token", func(t *testing.T) {
		token, err := auth.GenerateJWT(u.ID, u.Email, testSecret, 1)
		require.NoError(t, err)

		rec, got := run(t, mw, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, AuthMethodJWT, got.method)
	})

	t.Run("No credentials", func(t *testing.T) {
		rec, _ := run(t, mw, func(*http.Request) {})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestViaAPIKey(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.False(t, ViaAPIKey(c))

	c.Set(ContextAuthMethod, AuthMethodAPIKey)
	assert.True(t, ViaAPIKey(c))

	_, ok := UserID(c)
	assert.False(t, ok)
}
