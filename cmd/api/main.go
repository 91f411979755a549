package main

// @title AudioMint API
// @version 1.0
// @description Text-to-audio generation with plan-based daily quotas.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key for programmatic access (plans with API access only)

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/audiomint/backend/config"
	"github.com/audiomint/backend/pkg/api/handlers"
	custommw "github.com/audiomint/backend/pkg/api/middleware"
	"github.com/audiomint/backend/pkg/billing"
	"github.com/audiomint/backend/pkg/cache"
	"github.com/audiomint/backend/pkg/database"
	"github.com/audiomint/backend/pkg/email"
	"github.com/audiomint/backend/pkg/generation"
	"github.com/audiomint/backend/pkg/jobs"
	"github.com/audiomint/backend/pkg/logger"
	"github.com/audiomint/backend/pkg/metrics"
	custommiddleware "github.com/audiomint/backend/pkg/middleware"
	"github.com/audiomint/backend/pkg/plans"
	"github.com/audiomint/backend/pkg/quota"
	"github.com/audiomint/backend/pkg/secrets"
	"github.com/audiomint/backend/pkg/subscriptions"
)

func main() {
	// Load configuration
	cfg := config.Load()
	appLog := logger.New(cfg.LogLevel)

	secretStore, err := secrets.NewManager(secrets.ConfigFromEnv())
	if err != nil {
		log.Fatalf("❌ Failed to initialize secrets manager: %v", err)
	}
	if err := secrets.Apply(context.Background(), secretStore, cfg); err != nil {
		log.Fatalf("❌ Failed to load secrets: %v", err)
	}
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			TracesSampleRate: 0.2,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.APIEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Root context cancelled on shutdown; background workers stop with it
	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize database
	var ssl *database.SSLConfig
	if cfg.DBSSLMode != "" {
		ssl = &database.SSLConfig{Mode: cfg.DBSSLMode, RootCertPath: cfg.DBSSLRootCert}
	}
	db, err := database.NewClient(rootCtx, database.Options{
		URL: cfg.DatabaseURL,
		Pool: database.PoolConfig{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
			ConnMaxIdleTime: 10 * time.Minute,
		},
		SSL:         ssl,
		AutoMigrate: cfg.DBAutoMigrate,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis (processed webhook events)
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New(prometheus.DefaultRegisterer)
	log.Printf("✅ Prometheus metrics initialized")

	// Billing provider
	if cfg.StripeSecretKey == "" {
		log.Printf("⚠️  STRIPE_SECRET_KEY not set, checkout and portal calls will fail")
	}
	gateway := billing.NewStripeGateway(cfg.StripeSecretKey)

	// Plan catalog, subscription ledger and quota gate
	catalog := plans.NewCatalog(db.Ent, cfg.PlanCacheTTL, appLog, prometheusMetrics)
	ledger := subscriptions.NewLedger(db.Ent, catalog,
		subscriptions.WithRowLocks(db.SupportsRowLocks()),
		subscriptions.WithResolvers(subscriptions.DefaultResolvers(db.Ent, gateway, appLog)...),
		subscriptions.WithLogger(appLog),
	)
	usageStore := quota.NewStore(db.Ent, quota.WithLocation(cfg.QuotaLocation()))
	gate := quota.NewGate(usageStore, ledger, catalog, appLog, prometheusMetrics)
	log.Printf("✅ Quota gate initialized (day boundary: %s)", cfg.QuotaLocation())

	// Notifications
	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.SendGridAPIKey, appLog)
	notifier := billing.NewEmailNotifier(emailService, gate, cfg.FrontendURL, appLog)

	// Webhook reconciler
	if cfg.StripeWebhookSecret == "" {
		log.Printf("⚠️  STRIPE_WEBHOOK_SECRET not set, webhooks will be answered with 500")
	}
	reconciler := billing.NewReconciler(
		billing.ReconcilerConfig{
			WebhookSecret: cfg.StripeWebhookSecret,
			Tolerance:     cfg.StripeWebhookTolerance,
		},
		ledger,
		billing.WithEventLog(cache.NewProcessedEvents(redisClient, cfg.WebhookDedupTTL)),
		billing.WithNotifier(notifier),
		billing.WithReconcilerLogger(appLog),
		billing.WithReconcilerMetrics(prometheusMetrics),
	)

	checkout := billing.NewCheckout(db.Ent, catalog, ledger, gateway, billing.CheckoutConfig{
		SuccessURL: cfg.FrontendURL + "/account/billing?success=true",
		CancelURL:  cfg.FrontendURL + "/account/billing?canceled=true",
	})

	pipeline := generation.NewPipeline(generation.Config{
		URL:     cfg.InferenceURL,
		APIKey:  cfg.InferenceAPIKey,
		Timeout: cfg.GenerationTimeout,
	}, appLog)

	// Handlers
	audioHandler := handlers.NewAudioHandler(gate, pipeline, appLog, prometheusMetrics)
	billingHandler := handlers.NewBillingHandler(checkout, catalog, ledger, gate, handlers.BillingConfig{
		DefaultReturnURL: cfg.FrontendURL + "/account/billing",
		AllowedHosts:     cfg.BillingReturnHosts,
	})
	webhookHandler := handlers.NewWebhookHandler(reconciler)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(rootCtx, cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	webhookRateLimiter := custommiddleware.NewRateLimiter(rootCtx, 300, 50)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	e.Use(prometheusMetrics.Middleware())
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		// JSON only
		Skipper: func(c echo.Context) bool { return c.Path() == "/api/v1/audio/generate" },
	}))
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Health check endpoints (public)
	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		dbStatus, redisStatus := "up", "up"
		if err := db.Ping(ctx); err != nil {
			dbStatus = "down"
		}
		// Redis only backs webhook dedup, so an outage degrades rather than fails
		if err := redisClient.Ping(ctx); err != nil {
			redisStatus = "down"
		}

		code, status := http.StatusOK, "healthy"
		if dbStatus == "down" {
			code, status = http.StatusServiceUnavailable, "unhealthy"
		}
		return c.JSON(code, map[string]any{
			"status":   status,
			"database": dbStatus,
			"cache":    redisStatus,
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Stripe webhook: signature-verified, outside the global limiter
	e.POST("/api/v1/webhook/stripe", webhookHandler.HandleStripe, webhookRateLimiter.RateLimitMiddleware())

	v1 := e.Group("/api/v1", globalRateLimiter.RateLimitMiddleware())

	// Public billing routes
	v1.GET("/billing/plans", billingHandler.ListPlans)

	// Generation accepts a session token or an API key
	v1.POST("/audio/generate", audioHandler.Generate, custommw.JWTOrAPIKey(cfg.JWTSecret, db.Ent))

	billingGroup := v1.Group("/billing", custommw.JWTMiddleware(cfg.JWTSecret))
	{
		billingGroup.POST("/checkout", billingHandler.CreateCheckout)
		billingGroup.POST("/portal", billingHandler.CreatePortalSession)
		billingGroup.GET("/subscription", billingHandler.GetSubscriptionStatus)
		billingGroup.GET("/usage", billingHandler.GetUsageHistory)
	}

	// Scheduled jobs
	cronManager := jobs.NewCronManager(ledger, catalog, db, prometheusMetrics, appLog)
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to set up cron jobs: %v", err)
	}
	cronManager.Start()
	if err := cronManager.RefreshSubscriptionGauge(rootCtx); err != nil {
		log.Printf("⚠️  Initial subscription gauge refresh failed: %v", err)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 AudioMint API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d), webhook 300 req/min", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Generations can run for minutes, so allow in-flight requests to finish
	ctx, cancel := context.WithTimeout(context.Background(), cfg.GenerationTimeout+10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	cronManager.Stop(ctx)
	stop()

	log.Println("✅ Server gracefully stopped")
}
