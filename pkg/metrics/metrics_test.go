package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	m := New(prometheus.NewRegistry())
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/billing/plans/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/plans/3", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/billing/plans/:id", "204")))
}

func TestRecorders(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordWebhook("invoice.payment_failed", "accepted")
	m.RecordQuotaDecision("admitted")
	m.RecordQuotaDecision("admitted")
	m.RecordAudioSeconds(12)
	m.RecordAudioSeconds(-3)
	m.SetSubscriptionCounts(map[string]int{"active": 4, "canceled": 1})
	m.SetSubscriptionCounts(map[string]int{"active": 5})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WebhookEvents.WithLabelValues("invoice.payment_failed", "accepted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.QuotaDecisions.WithLabelValues("admitted")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.AudioSeconds))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.SubscriptionsByStatus.WithLabelValues("active")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SubscriptionsByStatus))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordWebhook("x", "y")
		m.RecordQuotaDecision("admitted")
		m.RecordAudioSeconds(5)
		m.RecordGenerationError()
		m.SetSubscriptionCounts(map[string]int{"active": 1})
		m.UpdateDBConnections(3)
		m.RecordCacheHit("plans")
		m.RecordCacheMiss("plans")
	})

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
