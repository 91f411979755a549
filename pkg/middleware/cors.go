package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4/middleware"
)

// Response headers browsers may read from cross-origin requests.
var exposedHeaders = []string{
	"X-Usage-Count",
	"X-Usage-Limit",
	"X-Usage-Remaining",
	"Content-Disposition",
}

// CORSConfig returns the CORS configuration for the given frontend origins.
// Shared by main.go and tests so both see the same config.
func CORSConfig(allowedOrigins []string) middleware.CORSConfig {
	return middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-API-Key",
		},
		ExposeHeaders: exposedHeaders,
	}
}
