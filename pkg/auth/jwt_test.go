package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-minimum-32-characters-long"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(123, "test@example.com", testSecret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 123, claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateJWT_Errors(t *testing.T) {
	valid, err := GenerateJWT(1, "test@example.com", testSecret, 1)
	require.NoError(t, err)

	expired, err := GenerateJWT(1, "test@example.com", testSecret, -1)
	require.NoError(t, err)

	noUser, err := GenerateJWT(0, "test@example.com", testSecret, 1)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "Wrong secret", token: valid, secret: "another-secret-key-minimum-32-characters"},
		{name: "Expired", token: expired, secret: testSecret},
		{name: "Garbage", token: "not.a.token", secret: testSecret},
		{name: "Unsigned", token: none, secret: testSecret},
		{name: "Missing user", token: noUser, secret: testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateJWT(tt.token, tt.secret)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
