package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/user"
	"github.com/audiomint/backend/pkg/auth"
	"github.com/audiomint/backend/pkg/models"
)

// Context keys set by the authentication middlewares.
const (
	ContextUserID     = "user_id"
	ContextUserEmail  = "user_email"
	ContextAuthMethod = "auth_method"
)

// Authentication methods stored under ContextAuthMethod.
const (
	AuthMethodJWT    = "jwt"
	AuthMethodAPIKey = "api_key"
)

// APIKeyHeader carries a programmatic client's key.
const APIKeyHeader = "X-API-Key"

// JWTMiddleware creates a JWT authentication middleware
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, errResp := bearerToken(c)
			if errResp != nil {
				return c.JSON(http.StatusUnauthorized, errResp)
			}
			return authenticateJWT(c, next, token, secret)
		}
	}
}

// JWTOrAPIKey accepts either a bearer token or an X-API-Key header. API-key
// requests are marked so handlers can enforce the plan's API capability.
func JWTOrAPIKey(secret string, db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(APIKeyHeader)
			if key == "" {
				token, errResp := bearerToken(c)
				if errResp != nil {
					return c.JSON(http.StatusUnauthorized, errResp)
				}
				return authenticateJWT(c, next, token, secret)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			u, err := db.User.Query().Where(user.APIKey(auth.HashAPIKey(key))).Only(ctx)
			if ent.IsNotFound(err) {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_api_key",
					Message: "API key is not valid",
				})
			}
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
					Error:   "service_unavailable",
					Message: "Unable to verify API key. Please try again later.",
				})
			}

			c.Set(ContextUserID, u.ID)
			c.Set(ContextUserEmail, u.Email)
			c.Set(ContextAuthMethod, AuthMethodAPIKey)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, *models.ErrorResponse) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", &models.ErrorResponse{
			Error:   "missing_token",
			Message: "Authorization header is required",
		}
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", &models.ErrorResponse{
			Error:   "invalid_token_format",
			Message: "Authorization header must be 'Bearer {token}'",
		}
	}
	return parts[1], nil
}

func authenticateJWT(c echo.Context, next echo.HandlerFunc, token, secret string) error {
	claims, err := auth.ValidateJWT(token, secret)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_token",
			Message: err.Error(),
		})
	}

	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUserEmail, claims.Email)
	c.Set(ContextAuthMethod, AuthMethodJWT)
	return next(c)
}

// UserID returns the authenticated user's ID.
func UserID(c echo.Context) (int, bool) {
	id, ok := c.Get(ContextUserID).(int)
	return id, ok && id > 0
}

// ViaAPIKey reports whether the request authenticated with an API key.
func ViaAPIKey(c echo.Context) bool {
	method, _ := c.Get(ContextAuthMethod).(string)
	return method == AuthMethodAPIKey
}
