package billing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func stripeEvent(t *testing.T, id, eventType string, object any) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(object)
	require.NoError(t, err)
	return stripe.Event{
		ID:   id,
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestParseEvent_Checkout(t *testing.T) {
	t.Run("Customer email preferred", func(t *testing.T) {
		evt := stripeEvent(t, "evt_1", EventCheckoutCompleted, map[string]any{
			"id": "cs_1", "customer": "cus_1", "customer_email": "a@example.com",
			"customer_details": map[string]any{"email": "b@example.com"},
		})

		parsed, err := ParseEvent(evt)
		require.NoError(t, err)

		checkout, ok := parsed.(CheckoutCompleted)
		require.True(t, ok)
		assert.Equal(t, "evt_1", checkout.Meta().ID)
		assert.Equal(t, "a@example.com", checkout.Completion.Email)
		assert.Equal(t, "cus_1", checkout.Completion.CustomerID)
	})

	t.Run("Falls back to customer details", func(t *testing.T) {
		evt := stripeEvent(t, "evt_2", EventCheckoutCompleted, map[string]any{
			"id": "cs_2", "customer_details": map[string]any{"email": "b@example.com"},
		})

		parsed, err := ParseEvent(evt)
		require.NoError(t, err)
		assert.Equal(t, "b@example.com", parsed.(CheckoutCompleted).Completion.Email)
		assert.Empty(t, parsed.(CheckoutCompleted).Completion.CustomerID)
	})
}

func TestParseEvent_Subscription(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	object := map[string]any{
		"id": "sub_1", "customer": "cus_1", "status": "active",
		"current_period_start": start.Unix(),
		"current_period_end":   start.AddDate(0, 1, 0).Unix(),
		"items": map[string]any{
			"object": "list",
			"data":   []any{map[string]any{"id": "si_1", "price": map[string]any{"id": "price_pro"}}},
		},
	}

	t.Run("Updated", func(t *testing.T) {
		parsed, err := ParseEvent(stripeEvent(t, "evt_1", EventSubscriptionUpdated, object))
		require.NoError(t, err)

		changed, ok := parsed.(SubscriptionChanged)
		require.True(t, ok)
		assert.Equal(t, "sub_1", changed.Change.SubscriptionID)
		assert.Equal(t, "cus_1", changed.Change.CustomerID)
		assert.Equal(t, "active", changed.Change.Status)
		assert.Equal(t, "price_pro", changed.Change.PriceID)
		assert.True(t, start.Equal(changed.Change.PeriodStart))
		assert.False(t, changed.Change.Deleted)
	})

	t.Run("Deleted sets the flag", func(t *testing.T) {
		parsed, err := ParseEvent(stripeEvent(t, "evt_2", EventSubscriptionDeleted, object))
		require.NoError(t, err)
		assert.True(t, parsed.(SubscriptionChanged).Change.Deleted)
	})

	t.Run("Missing periods and items stay zero", func(t *testing.T) {
		parsed, err := ParseEvent(stripeEvent(t, "evt_3", EventSubscriptionCreated, map[string]any{
			"id": "sub_2", "status": "trialing",
		}))
		require.NoError(t, err)

		change := parsed.(SubscriptionChanged).Change
		assert.True(t, change.PeriodStart.IsZero())
		assert.True(t, change.PeriodEnd.IsZero())
		assert.Empty(t, change.PriceID)
		assert.Empty(t, change.CustomerID)
	})

	t.Run("Error - no subscription id", func(t *testing.T) {
		_, err := ParseEvent(stripeEvent(t, "evt_4", EventSubscriptionUpdated, map[string]any{"status": "active"}))
		assert.Error(t, err)
	})
}

func TestParseEvent_InvoiceFailed(t *testing.T) {
	parsed, err := ParseEvent(stripeEvent(t, "evt_1", EventInvoicePaymentFailed, map[string]any{
		"id": "in_1", "subscription": "sub_1",
	}))
	require.NoError(t, err)

	failed, ok := parsed.(InvoicePaymentFailed)
	require.True(t, ok)
	assert.Equal(t, "in_1", failed.InvoiceID)
	assert.Equal(t, "sub_1", failed.SubscriptionID)
}

func TestParseEvent_Ignored(t *testing.T) {
	parsed, err := ParseEvent(stripeEvent(t, "evt_1", "invoice.paid", map[string]any{"id": "in_1"}))
	require.NoError(t, err)

	_, ok := parsed.(Ignored)
	assert.True(t, ok)

	parsed, err = ParseEvent(stripe.Event{ID: "evt_2", Type: "customer.created"})
	require.NoError(t, err)
	assert.Equal(t, "customer.created", parsed.Meta().Type)
}

func TestParseEvent_HandledTypeWithoutData(t *testing.T) {
	_, err := ParseEvent(stripe.Event{ID: "evt_1", Type: EventCheckoutCompleted})
	assert.Error(t, err)
}
