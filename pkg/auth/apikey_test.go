package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIKey(t *testing.T) {
	a, err := GenerateAPIKey()
	require.NoError(t, err)
	b, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, APIKeyPrefix))
	assert.Len(t, a, len(APIKeyPrefix)+48)
	assert.NotEqual(t, a, b)
}

func TestHashAPIKey(t *testing.T) {
	h := HashAPIKey("am_secret")

	assert.Len(t, h, 64)
	assert.Equal(t, h, HashAPIKey("am_secret"))
	assert.NotEqual(t, h, HashAPIKey("am_secret2"))
	assert.NotContains(t, h, "am_secret")
}
