package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/pkg/cache"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/metrics"
	"github.com/audiomint/backend/pkg/plans"
	"github.com/audiomint/backend/pkg/subscriptions"
	"github.com/audiomint/backend/pkg/testdata"
)

const testSecret = "whsec_test_secret"

func signPayload(payload []byte, secret string, at time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: at,
	}).Header
}

func eventPayload(t *testing.T, id, eventType string, object map[string]any) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":          id,
		"object":      "event",
		"type":        eventType,
		"api_version": "2023-10-16",
		"created":     time.Now().Unix(),
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)
	return payload
}

type recordingNotifier struct {
	transitions []*subscriptions.Transition
}

func (n *recordingNotifier) Notify(_ context.Context, tr *subscriptions.Transition) {
	n.transitions = append(n.transitions, tr)
}

type reconcilerFixture struct {
	client   *ent.Client
	rec      *Reconciler
	notifier *recordingNotifier
	redis    *miniredis.Miniredis
	m        *metrics.Metrics
}

func setupReconciler(t *testing.T) *reconcilerFixture {
	client := testdata.OpenDB(t)
	testdata.CreatePlan(t, client, testdata.FreePlan())
	testdata.CreatePlan(t, client, testdata.ProPlan())

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	events := cache.NewProcessedEvents(&cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}, time.Hour)

	catalog := plans.NewCatalog(client, time.Minute, nil, nil)
	ledger := subscriptions.NewLedger(client, catalog)
	notifier := &recordingNotifier{}
	m := metrics.New(prometheus.NewRegistry())

	rec := NewReconciler(ReconcilerConfig{WebhookSecret: testSecret}, ledger,
		WithEventLog(events),
		WithNotifier(notifier),
		WithReconcilerMetrics(m),
	)
	return &reconcilerFixture{client: client, rec: rec, notifier: notifier, redis: mr, m: m}
}

func (f *reconcilerFixture) deliver(payload []byte) Result {
	return f.rec.Handle(context.Background(), payload, signPayload(payload, testSecret, time.Now()))
}

func (f *reconcilerFixture) subscriptionCount(t *testing.T) int {
	n, err := f.client.Subscription.Query().Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestReconciler_CheckoutThenActivation(t *testing.T) {
	f := setupReconciler(t)
	user := testdata.CreateUser(t, f.client, testdata.WithEmail("listener@example.com"))

	res := f.deliver(eventPayload(t, "evt_checkout", EventCheckoutCompleted, map[string]any{
		"id": "cs_1", "customer": "cus_1", "customer_details": map[string]any{"email": "listener@example.com"},
	}))
	require.Equal(t, OutcomeAccepted, res.Outcome)
	assert.Equal(t, http.StatusOK, res.Outcome.HTTPStatus())

	res = f.deliver(eventPayload(t, "evt_created", EventSubscriptionCreated, map[string]any{
		"id": "sub_1", "customer": "cus_1", "status": "active",
		"items": map[string]any{"object": "list", "data": []any{
			map[string]any{"id": "si_1", "price": map[string]any{"id": "price_pro_monthly"}},
		}},
	}))
	require.Equal(t, OutcomeAccepted, res.Outcome)

	sub, err := f.client.Subscription.Query().Where(subscription.UserID(user.ID)).WithPlan().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusActive, sub.Status)
	assert.Equal(t, "pro", sub.Edges.Plan.Name)

	require.Len(t, f.notifier.transitions, 2)
	assert.Equal(t, subscription.StatusTrialing, f.notifier.transitions[0].To)
	assert.Equal(t, subscription.StatusActive, f.notifier.transitions[1].To)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.m.WebhookEvents.WithLabelValues(EventSubscriptionCreated, "accepted")))
}

func TestReconciler_SignatureRejection(t *testing.T) {
	f := setupReconciler(t)
	testdata.CreateUser(t, f.client, testdata.WithEmail("listener@example.com"))
	payload := eventPayload(t, "evt_1", EventCheckoutCompleted, map[string]any{
		"id": "cs_1", "customer": "cus_1", "customer_email": "listener@example.com",
	})

	t.Run("Wrong secret", func(t *testing.T) {
		res := f.rec.Handle(context.Background(), payload, signPayload(payload, "whsec_other", time.Now()))
		assert.Equal(t, OutcomeRejected, res.Outcome)
		assert.Equal(t, http.StatusBadRequest, res.Outcome.HTTPStatus())
	})

	t.Run("Missing header", func(t *testing.T) {
		res := f.rec.Handle(context.Background(), payload, "")
		assert.Equal(t, OutcomeRejected, res.Outcome)
	})

	t.Run("Stale timestamp", func(t *testing.T) {
		res := f.rec.Handle(context.Background(), payload, signPayload(payload, testSecret, time.Now().Add(-time.Hour)))
		assert.Equal(t, OutcomeRejected, res.Outcome)
	})

	t.Run("Tampered body", func(t *testing.T) {
		sig := signPayload(payload, testSecret, time.Now())
		tampered := append([]byte{}, payload...)
		tampered[len(tampered)-2] = ' '
		res := f.rec.Handle(context.Background(), tampered, sig)
		assert.Equal(t, OutcomeRejected, res.Outcome)
	})

	assert.Zero(t, f.subscriptionCount(t))
	assert.Empty(t, f.notifier.transitions)
}

func TestReconciler_Misconfigured(t *testing.T) {
	client := testdata.OpenDB(t)
	ledger := subscriptions.NewLedger(client, plans.NewCatalog(client, time.Minute, nil, nil))
	rec := NewReconciler(ReconcilerConfig{}, ledger)
	payload := eventPayload(t, "evt_1", "invoice.paid", map[string]any{"id": "in_1"})

	res := rec.Handle(context.Background(), payload, signPayload(payload, testSecret, time.Now()))

	assert.Equal(t, OutcomeMisconfigured, res.Outcome)
	assert.Equal(t, http.StatusInternalServerError, res.Outcome.HTTPStatus())
	assert.ErrorIs(t, res.Err, domain.ErrMisconfigured)
}

func TestReconciler_MalformedObject(t *testing.T) {
	f := setupReconciler(t)

	res := f.deliver(eventPayload(t, "evt_1", EventSubscriptionUpdated, map[string]any{"status": "active"}))

	assert.Equal(t, OutcomeRejected, res.Outcome)
	assert.Zero(t, f.subscriptionCount(t))
}

func TestReconciler_IgnoredTypes(t *testing.T) {
	f := setupReconciler(t)

	res := f.deliver(eventPayload(t, "evt_1", "invoice.paid", map[string]any{"id": "in_1", "subscription": "sub_1"}))

	assert.Equal(t, OutcomeIgnored, res.Outcome)
	assert.Equal(t, http.StatusOK, res.Outcome.HTTPStatus())
	assert.False(t, f.redis.Exists("billing:event:evt_1"))
}

func TestReconciler_Duplicates(t *testing.T) {
	f := setupReconciler(t)
	user := testdata.CreateUser(t, f.client)
	testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
		Status: subscription.StatusActive, SubscriptionID: "sub_1",
	})
	payload := eventPayload(t, "evt_fail", EventInvoicePaymentFailed, map[string]any{"id": "in_1", "subscription": "sub_1"})

	first := f.deliver(payload)
	require.Equal(t, OutcomeAccepted, first.Outcome)

	// Restore the row so a second application would be visible.
	_, err := f.client.Subscription.Update().SetStatus(subscription.StatusActive).Save(context.Background())
	require.NoError(t, err)

	second := f.deliver(payload)
	assert.Equal(t, OutcomeDuplicate, second.Outcome)
	assert.Equal(t, http.StatusOK, second.Outcome.HTTPStatus())

	sub, err := f.client.Subscription.Query().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusActive, sub.Status)
	assert.Len(t, f.notifier.transitions, 1)
}

func TestReconciler_EventLogDownFailsOpen(t *testing.T) {
	f := setupReconciler(t)
	user := testdata.CreateUser(t, f.client)
	testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
		Status: subscription.StatusActive, SubscriptionID: "sub_1",
	})
	f.redis.Close()

	res := f.deliver(eventPayload(t, "evt_fail", EventInvoicePaymentFailed, map[string]any{"id": "in_1", "subscription": "sub_1"}))

	assert.Equal(t, OutcomeAccepted, res.Outcome)
	sub, err := f.client.Subscription.Query().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusPastDue, sub.Status)
}

func TestReconciler_UnmatchedEventsAreAcknowledged(t *testing.T) {
	f := setupReconciler(t)

	t.Run("Checkout for unknown email", func(t *testing.T) {
		res := f.deliver(eventPayload(t, "evt_1", EventCheckoutCompleted, map[string]any{
			"id": "cs_1", "customer": "cus_1", "customer_email": "ghost@example.com",
		}))
		assert.Equal(t, OutcomeAccepted, res.Outcome)
		assert.ErrorIs(t, res.Err, domain.ErrUserNotFound)
	})

	t.Run("Subscription for unknown customer", func(t *testing.T) {
		res := f.deliver(eventPayload(t, "evt_2", EventSubscriptionUpdated, map[string]any{
			"id": "sub_x", "customer": "cus_x", "status": "active",
		}))
		assert.Equal(t, OutcomeAccepted, res.Outcome)
		assert.ErrorIs(t, res.Err, domain.ErrUnresolvableSubscription)
	})

	t.Run("Payment failure for unknown subscription", func(t *testing.T) {
		res := f.deliver(eventPayload(t, "evt_3", EventInvoicePaymentFailed, map[string]any{
			"id": "in_1", "subscription": "sub_missing",
		}))
		assert.Equal(t, OutcomeAccepted, res.Outcome)
		assert.NoError(t, res.Err)
	})

	assert.Zero(t, f.subscriptionCount(t))
	assert.Empty(t, f.notifier.transitions)
}

func TestReconciler_StoreUnavailableAsksForRetry(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	events := cache.NewProcessedEvents(&cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}, time.Hour)

	ledger := subscriptions.NewLedger(client, plans.NewCatalog(client, time.Minute, nil, nil))
	rec := NewReconciler(ReconcilerConfig{WebhookSecret: testSecret}, ledger, WithEventLog(events))
	payload := eventPayload(t, "evt_1", EventSubscriptionUpdated, map[string]any{
		"id": "sub_1", "customer": "cus_1", "status": "active",
	})

	res := rec.Handle(context.Background(), payload, signPayload(payload, testSecret, time.Now()))

	assert.Equal(t, OutcomeRetry, res.Outcome)
	assert.Equal(t, http.StatusInternalServerError, res.Outcome.HTTPStatus())
	assert.ErrorIs(t, res.Err, domain.ErrStoreUnavailable)
	assert.False(t, mr.Exists("billing:event:evt_1"), "failed events are not remembered")
}
