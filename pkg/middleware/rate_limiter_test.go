package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	// 120 requests per minute is one token every 0.5 seconds
	rl := NewRateLimiter(context.Background(), 120, 1)
	limiter := rl.GetLimiter("192.168.1.1")

	assert.True(t, limiter.Allow(), "First request should be allowed")
	assert.False(t, limiter.Allow(), "Second request should be blocked")

	time.Sleep(600 * time.Millisecond)

	assert.True(t, limiter.Allow(), "Request should be allowed after refill")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	rl := NewRateLimiter(context.Background(), 2, 1)

	limiter1 := rl.GetLimiter("192.168.1.1")
	limiter2 := rl.GetLimiter("192.168.1.2")

	assert.True(t, limiter1.Allow())
	assert.True(t, limiter2.Allow())
	assert.False(t, limiter1.Allow())
	assert.False(t, limiter2.Allow())
}

func TestRateLimiter_Prune(t *testing.T) {
	rl := NewRateLimiter(context.Background(), 60, 2)
	rl.GetLimiter("10.0.0.1").Allow()
	rl.GetLimiter("10.0.0.2")

	rl.prune()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Contains(t, rl.visitors, "10.0.0.1", "active visitor is kept")
	assert.NotContains(t, rl.visitors, "10.0.0.2", "idle visitor is dropped")
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(context.Background(), 2, 1)
	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	})

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/stripe", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		assert.NoError(t, handler(e.NewContext(req, rec)))
		return rec
	}

	assert.Equal(t, http.StatusOK, send("192.168.1.1:12345").Code)

	blocked := send("192.168.1.1:12345")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Contains(t, blocked.Body.String(), "rate_limit_exceeded")
	assert.Equal(t, "30", blocked.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, send("192.168.1.2:12345").Code)
}
