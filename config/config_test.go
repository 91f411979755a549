package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")
	t.Setenv("QUOTA_TIMEZONE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.APIPort)
	assert.Empty(t, cfg.StripeWebhookSecret)
	assert.Equal(t, 72*time.Hour, cfg.WebhookDedupTTL)
	assert.Equal(t, time.UTC, cfg.QuotaLocation())
	assert.True(t, cfg.DBAutoMigrate)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_ENVIRONMENT", "production")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("PLAN_CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("QUOTA_TIMEZONE", "America/New_York")
	t.Setenv("BILLING_RETURN_HOSTS", "audiomint.app,www.audiomint.app")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 7, cfg.RateLimitBurst)
	assert.Equal(t, 30*time.Second, cfg.PlanCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "America/New_York", cfg.QuotaLocation().String())
	assert.Equal(t, []string{"audiomint.app", "www.audiomint.app"}, cfg.BillingReturnHosts)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "lots")
	t.Setenv("GENERATION_TIMEOUT", "soon")
	t.Setenv("DB_AUTO_MIGRATE", "maybe")
	t.Setenv("QUOTA_TIMEZONE", "Mars/Olympus")

	cfg := Load()

	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, 3*time.Minute, cfg.GenerationTimeout)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Equal(t, time.UTC, cfg.QuotaLocation())
}
