package billing

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"

	"github.com/audiomint/backend/pkg/subscriptions"
)

// Provider event types the reconciler acts on.
const (
	EventCheckoutCompleted    = "checkout.session.completed"
	EventSubscriptionCreated  = "customer.subscription.created"
	EventSubscriptionUpdated  = "customer.subscription.updated"
	EventSubscriptionDeleted  = "customer.subscription.deleted"
	EventInvoicePaymentFailed = "invoice.payment_failed"
)

// EventMeta identifies a provider event.
type EventMeta struct {
	ID   string
	Type string
}

// Event is a verified provider event parsed into one of the closed set of
// variants below. Handlers switch on the concrete type.
type Event interface {
	Meta() EventMeta
	isEvent()
}

// CheckoutCompleted is a finished checkout session.
type CheckoutCompleted struct {
	EventMeta
	Completion subscriptions.CheckoutCompletion
}

// SubscriptionChanged is a subscription create, update or delete.
type SubscriptionChanged struct {
	EventMeta
	Change subscriptions.SubscriptionChange
}

// InvoicePaymentFailed is a failed renewal charge.
type InvoicePaymentFailed struct {
	EventMeta
	InvoiceID      string
	SubscriptionID string
}

// Ignored is any event type the reconciler does not act on.
type Ignored struct {
	EventMeta
}

func (e EventMeta) Meta() EventMeta { return e }

func (CheckoutCompleted) isEvent()    {}
func (SubscriptionChanged) isEvent()  {}
func (InvoicePaymentFailed) isEvent() {}
func (Ignored) isEvent()              {}

// ParseEvent converts a verified provider event into an Event. Malformed
// objects for known types return an error.
func ParseEvent(evt stripe.Event) (Event, error) {
	meta := EventMeta{ID: evt.ID, Type: string(evt.Type)}
	if evt.Data == nil {
		if isHandled(meta.Type) {
			return nil, fmt.Errorf("event %s has no data", meta.ID)
		}
		return Ignored{EventMeta: meta}, nil
	}

	switch meta.Type {
	case EventCheckoutCompleted:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(evt.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("failed to unmarshal checkout session: %w", err)
		}
		return CheckoutCompleted{EventMeta: meta, Completion: checkoutCompletion(&sess)}, nil

	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(evt.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal subscription: %w", err)
		}
		if sub.ID == "" {
			return nil, fmt.Errorf("subscription event %s has no subscription id", meta.ID)
		}
		change := subscriptionChange(&sub)
		change.Deleted = meta.Type == EventSubscriptionDeleted
		return SubscriptionChanged{EventMeta: meta, Change: change}, nil

	case EventInvoicePaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(evt.Data.Raw, &invoice); err != nil {
			return nil, fmt.Errorf("failed to unmarshal invoice: %w", err)
		}
		out := InvoicePaymentFailed{EventMeta: meta, InvoiceID: invoice.ID}
		if invoice.Subscription != nil {
			out.SubscriptionID = invoice.Subscription.ID
		}
		return out, nil
	}

	return Ignored{EventMeta: meta}, nil
}

func isHandled(eventType string) bool {
	switch eventType {
	case EventCheckoutCompleted, EventSubscriptionCreated, EventSubscriptionUpdated,
		EventSubscriptionDeleted, EventInvoicePaymentFailed:
		return true
	}
	return false
}

func checkoutCompletion(sess *stripe.CheckoutSession) subscriptions.CheckoutCompletion {
	out := subscriptions.CheckoutCompletion{Email: sess.CustomerEmail}
	if out.Email == "" && sess.CustomerDetails != nil {
		out.Email = sess.CustomerDetails.Email
	}
	if sess.Customer != nil {
		out.CustomerID = sess.Customer.ID
	}
	return out
}

func subscriptionChange(sub *stripe.Subscription) subscriptions.SubscriptionChange {
	change := subscriptions.SubscriptionChange{
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
		PeriodStart:    unixOrZero(sub.CurrentPeriodStart),
		PeriodEnd:      unixOrZero(sub.CurrentPeriodEnd),
	}
	if sub.Customer != nil {
		change.CustomerID = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		change.PriceID = sub.Items.Data[0].Price.ID
	}
	return change
}

func unixOrZero(ts int64) time.Time {
	if ts <= 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
