package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records nothing,
// so services can be constructed without a registry in tests.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Billing metrics
	WebhookEvents         *prometheus.CounterVec
	SubscriptionsByStatus *prometheus.GaugeVec

	// Quota metrics
	QuotaDecisions   *prometheus.CounterVec
	AudioSeconds     prometheus.Counter
	GenerationErrors prometheus.Counter

	// Database metrics
	DBConnections prometheus.Gauge

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance registered against reg.
// Pass prometheus.DefaultRegisterer in production and prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		WebhookEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_webhook_events_total",
				Help: "Billing provider events by type and outcome",
			},
			[]string{"type", "outcome"},
		),
		SubscriptionsByStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "subscriptions_by_status",
				Help: "Number of subscriptions in each status",
			},
			[]string{"status"},
		),

		QuotaDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quota_decisions_total",
				Help: "Admission decisions made by the quota gate",
			},
			[]string{"result"}, // admitted, quota_exceeded, duration_exceeded, ...
		),
		AudioSeconds: factory.NewCounter(prometheus.CounterOpts{
			Name: "audio_seconds_generated_total",
			Help: "Seconds of audio recorded against user quotas",
		}),
		GenerationErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "audio_generation_errors_total",
			Help: "Generations that failed after admission",
		}),

		DBConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		}),

		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if m == nil {
				return err
			}

			// Route pattern, not the raw path, to keep label cardinality bounded
			path := c.Path()
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RecordWebhook counts a processed billing event
func (m *Metrics) RecordWebhook(eventType, outcome string) {
	if m == nil {
		return
	}
	m.WebhookEvents.WithLabelValues(eventType, outcome).Inc()
}

// RecordQuotaDecision counts an admission decision
func (m *Metrics) RecordQuotaDecision(result string) {
	if m == nil {
		return
	}
	m.QuotaDecisions.WithLabelValues(result).Inc()
}

// RecordAudioSeconds adds generated seconds
func (m *Metrics) RecordAudioSeconds(seconds int) {
	if m == nil || seconds <= 0 {
		return
	}
	m.AudioSeconds.Add(float64(seconds))
}

// RecordGenerationError counts a failed generation
func (m *Metrics) RecordGenerationError() {
	if m == nil {
		return
	}
	m.GenerationErrors.Inc()
}

// SetSubscriptionCounts replaces the per-status gauge values
func (m *Metrics) SetSubscriptionCounts(counts map[string]int) {
	if m == nil {
		return
	}
	m.SubscriptionsByStatus.Reset()
	for status, n := range counts {
		m.SubscriptionsByStatus.WithLabelValues(status).Set(float64(n))
	}
}

// UpdateDBConnections updates active database connections gauge
func (m *Metrics) UpdateDBConnections(count float64) {
	if m == nil {
		return
	}
	m.DBConnections.Set(count)
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	if m == nil {
		return
	}
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	if m == nil {
		return
	}
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
