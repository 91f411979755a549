package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_IsMatchesByCode(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("load usage: %w", StoreUnavailable(cause))

	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrQuotaExceeded))
	assert.Equal(t, ErrCodeStoreUnavailable, GetErrorCode(err))
}

func TestStoreUnavailable_Nil(t *testing.T) {
	assert.NoError(t, StoreUnavailable(nil))
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrUserNotFound, errors.New("ghost@example.com"))

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Contains(t, err.Error(), "ghost@example.com")
	assert.Contains(t, err.Error(), ErrCodeUserNotFound)
}

func TestGetErrorCode_NonDomain(t *testing.T) {
	assert.Empty(t, GetErrorCode(errors.New("plain")))
	assert.Empty(t, GetErrorCode(nil))
}
