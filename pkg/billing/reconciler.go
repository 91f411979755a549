package billing

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/logger"
	"github.com/audiomint/backend/pkg/metrics"
	"github.com/audiomint/backend/pkg/subscriptions"
)

// Outcome is the reconciler's verdict on one delivery.
type Outcome string

const (
	OutcomeAccepted      Outcome = "accepted"
	OutcomeIgnored       Outcome = "ignored"
	OutcomeDuplicate     Outcome = "duplicate"
	OutcomeRejected      Outcome = "rejected"
	OutcomeMisconfigured Outcome = "misconfigured"
	OutcomeRetry         Outcome = "retry"
)

// HTTPStatus maps the outcome to the status code returned to the provider.
// Anything non-2xx makes the provider redeliver.
func (o Outcome) HTTPStatus() int {
	switch o {
	case OutcomeAccepted, OutcomeIgnored, OutcomeDuplicate:
		return http.StatusOK
	case OutcomeRejected:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Result describes how a delivery was handled. Err carries the cause for
// rejected, retried and unresolvable-but-accepted deliveries.
type Result struct {
	Outcome   Outcome
	EventID   string
	EventType string
	Err       error
}

// Ledger is the subset of the subscription ledger the reconciler drives.
type Ledger interface {
	UpsertFromCheckout(ctx context.Context, in subscriptions.CheckoutCompletion) (*subscriptions.Transition, error)
	ApplySubscriptionEvent(ctx context.Context, change subscriptions.SubscriptionChange) (*subscriptions.Transition, error)
	MarkPastDue(ctx context.Context, subscriptionID string) (*subscriptions.Transition, error)
}

// EventLog remembers applied event IDs.
type EventLog interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Remember(ctx context.Context, eventID string) error
}

// ReconcilerConfig holds webhook verification settings.
type ReconcilerConfig struct {
	WebhookSecret string
	Tolerance     time.Duration
}

// Reconciler verifies provider deliveries and applies them to the ledger.
type Reconciler struct {
	cfg      ReconcilerConfig
	ledger   Ledger
	events   EventLog
	notifier Notifier
	log      logger.Logger
	m        *metrics.Metrics
}

// ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithEventLog enables duplicate suppression.
func WithEventLog(events EventLog) ReconcilerOption {
	return func(r *Reconciler) { r.events = events }
}

// WithNotifier sends notifications after committed transitions.
func WithNotifier(n Notifier) ReconcilerOption {
	return func(r *Reconciler) { r.notifier = n }
}

// WithReconcilerLogger sets the logger.
func WithReconcilerLogger(log logger.Logger) ReconcilerOption {
	return func(r *Reconciler) { r.log = log }
}

// WithReconcilerMetrics sets the metrics sink.
func WithReconcilerMetrics(m *metrics.Metrics) ReconcilerOption {
	return func(r *Reconciler) { r.m = m }
}

// NewReconciler creates a reconciler.
func NewReconciler(cfg ReconcilerConfig, ledger Ledger, opts ...ReconcilerOption) *Reconciler {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = webhook.DefaultTolerance
	}
	r := &Reconciler{cfg: cfg, ledger: ledger, log: logger.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With("component", "webhook_reconciler")
	return r
}

// Handle verifies payload against signatureHeader and applies it.
func (r *Reconciler) Handle(ctx context.Context, payload []byte, signatureHeader string) Result {
	res := r.handle(ctx, payload, signatureHeader)
	eventType := res.EventType
	if eventType == "" {
		eventType = "unknown"
	}
	r.m.RecordWebhook(eventType, string(res.Outcome))
	return res
}

func (r *Reconciler) handle(ctx context.Context, payload []byte, signatureHeader string) Result {
	if r.cfg.WebhookSecret == "" {
		r.log.Error("Webhook secret is not configured, refusing event")
		return Result{Outcome: OutcomeMisconfigured, Err: domain.ErrMisconfigured}
	}

	evt, err := webhook.ConstructEventWithOptions(payload, signatureHeader, r.cfg.WebhookSecret,
		webhook.ConstructEventOptions{
			Tolerance:                r.cfg.Tolerance,
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		r.log.Warn("Webhook signature verification failed", "error", err)
		return Result{Outcome: OutcomeRejected, Err: err}
	}

	parsed, err := ParseEvent(evt)
	if err != nil {
		r.log.Warn("Malformed webhook payload", "event_id", evt.ID, "type", evt.Type, "error", err)
		return Result{Outcome: OutcomeRejected, EventID: evt.ID, EventType: string(evt.Type), Err: err}
	}

	meta := parsed.Meta()
	res := Result{EventID: meta.ID, EventType: meta.Type}
	log := r.log.With("event_id", meta.ID, "type", meta.Type)

	if _, ok := parsed.(Ignored); ok {
		log.Debug("Unhandled webhook event type")
		res.Outcome = OutcomeIgnored
		return res
	}

	if r.events != nil && meta.ID != "" {
		seen, err := r.events.Seen(ctx, meta.ID)
		if err != nil {
			log.Warn("Event log unavailable, processing anyway", "error", err)
		} else if seen {
			log.Info("Duplicate webhook event acknowledged")
			res.Outcome = OutcomeDuplicate
			return res
		}
	}

	tr, err := r.apply(ctx, parsed)
	switch {
	case err == nil:
		res.Outcome = OutcomeAccepted
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnresolvableSubscription):
		// Redelivery cannot fix a missing user; acknowledge and leave state alone.
		log.Warn("Webhook event could not be matched to a user", "error", err)
		res.Outcome = OutcomeAccepted
		res.Err = err
	default:
		log.Error("Webhook event failed, provider will retry", "error", err)
		res.Outcome = OutcomeRetry
		res.Err = err
		return res
	}

	if r.events != nil && meta.ID != "" {
		if err := r.events.Remember(ctx, meta.ID); err != nil {
			log.Warn("Failed to record processed event", "error", err)
		}
	}

	if tr != nil && r.notifier != nil {
		r.notifier.Notify(ctx, tr)
	}

	log.Info("Webhook event processed", "outcome", res.Outcome)
	return res
}

func (r *Reconciler) apply(ctx context.Context, evt Event) (*subscriptions.Transition, error) {
	switch e := evt.(type) {
	case CheckoutCompleted:
		return r.ledger.UpsertFromCheckout(ctx, e.Completion)
	case SubscriptionChanged:
		return r.ledger.ApplySubscriptionEvent(ctx, e.Change)
	case InvoicePaymentFailed:
		return r.ledger.MarkPastDue(ctx, e.SubscriptionID)
	}
	return nil, nil
}
