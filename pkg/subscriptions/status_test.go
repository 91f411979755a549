package subscriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/subscription"
)

func TestIsActive(t *testing.T) {
	assert.False(t, IsActive(nil))
	assert.True(t, IsActive(&ent.Subscription{Status: subscription.StatusActive}))
	assert.True(t, IsActive(&ent.Subscription{Status: subscription.StatusTrialing}))
	assert.False(t, IsActive(&ent.Subscription{Status: subscription.StatusPastDue}))
	assert.False(t, IsActive(&ent.Subscription{Status: subscription.StatusUnpaid}))
	assert.False(t, IsActive(&ent.Subscription{Status: subscription.StatusCanceled}))
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]subscription.Status{
		"active":             subscription.StatusActive,
		"trialing":           subscription.StatusTrialing,
		"past_due":           subscription.StatusPastDue,
		"unpaid":             subscription.StatusUnpaid,
		"canceled":           subscription.StatusCanceled,
		"incomplete":         subscription.StatusUnpaid,
		"incomplete_expired": subscription.StatusCanceled,
		"paused":             subscription.StatusUnpaid,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeStatus(in), in)
	}
}
