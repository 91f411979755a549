package subscriptions

import (
	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/subscription"
)

// IsActive reports whether sub entitles its user to the plan's limits.
// Only active and trialing subscriptions count; a nil subscription is inactive.
func IsActive(sub *ent.Subscription) bool {
	if sub == nil {
		return false
	}
	return sub.Status == subscription.StatusActive || sub.Status == subscription.StatusTrialing
}

// NormalizeStatus maps a provider status onto the local status set. Provider
// statuses the ledger does not model collapse to the nearest restrictive state.
func NormalizeStatus(providerStatus string) subscription.Status {
	switch providerStatus {
	case "active":
		return subscription.StatusActive
	case "trialing":
		return subscription.StatusTrialing
	case "past_due":
		return subscription.StatusPastDue
	case "canceled":
		return subscription.StatusCanceled
	case "incomplete_expired":
		return subscription.StatusCanceled
	default:
		// unpaid, incomplete, paused and anything new
		return subscription.StatusUnpaid
	}
}
