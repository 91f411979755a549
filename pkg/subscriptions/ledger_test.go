package subscriptions_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/plans"
	"github.com/audiomint/backend/pkg/subscriptions"
	"github.com/audiomint/backend/pkg/testdata"
)

type fakeDirectory struct {
	emails map[string]string
	err    error
	calls  int
}

func (f *fakeDirectory) CustomerEmail(_ context.Context, customerID string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.emails[customerID], nil
}

type ledgerFixture struct {
	client *ent.Client
	ledger *subscriptions.Ledger
	dir    *fakeDirectory
	pro    *ent.Plan
}

func setupLedger(t *testing.T) *ledgerFixture {
	client := testdata.OpenDB(t)
	testdata.CreatePlan(t, client, testdata.FreePlan())
	pro := testdata.CreatePlan(t, client, testdata.ProPlan())

	dir := &fakeDirectory{emails: map[string]string{}}
	catalog := plans.NewCatalog(client, time.Minute, nil, nil)
	ledger := subscriptions.NewLedger(client, catalog,
		subscriptions.WithResolvers(subscriptions.DefaultResolvers(client, dir, nil)...),
	)
	return &ledgerFixture{client: client, ledger: ledger, dir: dir, pro: pro}
}

func (f *ledgerFixture) row(t *testing.T, userID int) *ent.Subscription {
	t.Helper()
	sub, err := f.client.Subscription.Query().Where(subscription.UserID(userID)).Only(context.Background())
	require.NoError(t, err)
	return sub
}

func TestUpsertFromCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - creates trialing subscription", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client, testdata.WithEmail("buyer@example.com"))

		tr, err := f.ledger.UpsertFromCheckout(ctx, subscriptions.CheckoutCompletion{
			Email: "Buyer@Example.com", CustomerID: "cus_123",
		})
		require.NoError(t, err)
		assert.Equal(t, subscription.Status(""), tr.From)
		assert.Equal(t, subscription.StatusTrialing, tr.To)
		assert.Equal(t, "buyer@example.com", tr.Email)

		sub := f.row(t, user.ID)
		assert.Equal(t, subscription.StatusTrialing, sub.Status)
		require.NotNil(t, sub.StripeCustomerID)
		assert.Equal(t, "cus_123", *sub.StripeCustomerID)
		assert.Nil(t, sub.PlanID)
	})

	t.Run("Backfills missing customer ID", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
			Plan: f.pro, Status: subscription.StatusActive,
		})

		tr, err := f.ledger.UpsertFromCheckout(ctx, subscriptions.CheckoutCompletion{
			Email: user.Email, CustomerID: "cus_new",
		})
		require.NoError(t, err)
		assert.False(t, tr.Changed())

		sub := f.row(t, user.ID)
		assert.Equal(t, subscription.StatusActive, sub.Status)
		assert.Equal(t, "cus_new", *sub.StripeCustomerID)
		assert.Equal(t, f.pro.ID, *sub.PlanID)
	})

	t.Run("Never overwrites an existing customer ID", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
			Status: subscription.StatusActive, CustomerID: "cus_original",
		})

		_, err := f.ledger.UpsertFromCheckout(ctx, subscriptions.CheckoutCompletion{
			Email: user.Email, CustomerID: "cus_other",
		})
		require.NoError(t, err)

		assert.Equal(t, "cus_original", *f.row(t, user.ID).StripeCustomerID)
	})

	t.Run("Idempotent - replay leaves one row", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client)
		in := subscriptions.CheckoutCompletion{Email: user.Email, CustomerID: "cus_1"}

		for i := 0; i < 3; i++ {
			_, err := f.ledger.UpsertFromCheckout(ctx, in)
			require.NoError(t, err)
		}

		count, err := f.client.Subscription.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Error - unknown email", func(t *testing.T) {
		f := setupLedger(t)

		_, err := f.ledger.UpsertFromCheckout(ctx, subscriptions.CheckoutCompletion{
			Email: "nobody@example.com", CustomerID: "cus_1",
		})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		count, err := f.client.Subscription.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Error - missing email", func(t *testing.T) {
		f := setupLedger(t)

		_, err := f.ledger.UpsertFromCheckout(ctx, subscriptions.CheckoutCompletion{CustomerID: "cus_1"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestApplySubscriptionEvent(t *testing.T) {
	ctx := context.Background()
	periodStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	t.Run("Success - activates checkout subscription with plan", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
			Status: subscription.StatusTrialing, CustomerID: "cus_1",
		})

		tr, err := f.ledger.ApplySubscriptionEvent(ctx, subscriptions.SubscriptionChange{
			SubscriptionID: "sub_1", CustomerID: "cus_1", Status: "active",
			PeriodStart: periodStart, PeriodEnd: periodEnd, PriceID: "price_pro_monthly",
		})
		require.NoError(t, err)
		assert.Equal(t, subscription.StatusTrialing, tr.From)
		assert.Equal(t, subscription.StatusActive, tr.To)
		assert.Equal(t, "pro", tr.PlanName)

		sub := f.row(t, user.ID)
		assert.Equal(t, subscription.StatusActive, sub.Status)
		assert.Equal(t, f.pro.ID, *sub.PlanID)
		assert.Equal(t, "sub_1", *sub.StripeSubscriptionID)
		assert.True(t, periodStart.Equal(*sub.CurrentPeriodStart))
		assert.True(t, periodEnd.Equal(*sub.CurrentPeriodEnd))
	})

	t.Run("Idempotent - same event three times", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
			Status: subscription.StatusTrialing, CustomerID: "cus_1",
		})
		change := subscriptions.SubscriptionChange{
			SubscriptionID: "sub_1", CustomerID: "cus_1", Status: "active",
			PeriodStart: periodStart, PeriodEnd: periodEnd, PriceID: "price_pro_monthly",
		}

		_, err := f.ledger.ApplySubscriptionEvent(ctx, change)
		require.NoError(t, err)
		once := f.row(t, user.ID)

		for i := 0; i < 2; i++ {
			_, err = f.ledger.ApplySubscriptionEvent(ctx, change)
			require.NoError(t, err)
		}
		thrice := f.row(t, user.ID)

		assert.Equal(t, once.Status, thrice.Status)
		assert.Equal(t, *once.PlanID, *thrice.PlanID)
		assert.Equal(t, *once.StripeSubscriptionID, *thrice.StripeSubscriptionID)
		assert.True(t, once.CurrentPeriodEnd.Equal(*thrice.CurrentPeriodEnd))
	})

	t.Run("Out of order - last applied wins in both orders", func(t *testing.T) {
		updated := subscriptions.SubscriptionChange{SubscriptionID: "sub_1", CustomerID: "cus_1", Status: "active"}
		deleted := subscriptions.SubscriptionChange{SubscriptionID: "sub_1", CustomerID: "cus_1", Status: "active", Deleted: true}

		for _, tc := range []struct {
			name  string
			order []subscriptions.SubscriptionChange
			want  subscription.Status
		}{
			{"updated then deleted", []subscriptions.SubscriptionChange{updated, deleted}, subscription.StatusCanceled},
			{"deleted then updated", []subscriptions.SubscriptionChange{deleted, updated}, subscription.StatusActive},
		} {
			t.Run(tc.name, func(t *testing.T) {
				f := setupLedger(t)
				user := testdata.CreateUser(t, f.client)
				testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
					Status: subscription.StatusTrialing, CustomerID: "cus_1",
				})

				for _, change := range tc.order {
					_, err := f.ledger.ApplySubscriptionEvent(ctx, change)
					require.NoError(t, err)
				}

				assert.Equal(t, tc.want, f.row(t, user.ID).Status)
			})
		}
	})

	t.Run("Deletion dominates the payload status", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
			Status: subscription.StatusActive, SubscriptionID: "sub_1",
		})

		tr, err := f.ledger.ApplySubscriptionEvent(ctx, subscriptions.SubscriptionChange{
			SubscriptionID: "sub_1", Status: "active", Deleted: true,
		})
		require.NoError(t, err)
		assert.Equal(t, subscription.StatusCanceled, tr.To)
		assert.Equal(t, subscription.StatusCanceled, f.row(t, user.ID).Status)
	})

	t.Run("Unknown price keeps existing plan", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
			Plan: f.pro, Status: subscription.StatusActive, SubscriptionID: "sub_1",
		})

		_, err := f.ledger.ApplySubscriptionEvent(ctx, subscriptions.SubscriptionChange{
			SubscriptionID: "sub_1", Status: "active", PriceID: "price_retired",
		})
		require.NoError(t, err)

		assert.Equal(t, f.pro.ID, *f.row(t, user.ID).PlanID)
	})

	t.Run("Absent periods keep stored values", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
			Status: subscription.StatusActive, SubscriptionID: "sub_1", PeriodEnd: periodEnd,
		})

		_, err := f.ledger.ApplySubscriptionEvent(ctx, subscriptions.SubscriptionChange{
			SubscriptionID: "sub_1", Status: "past_due", PeriodStart: periodStart,
		})
		require.NoError(t, err)

		sub := f.row(t, user.ID)
		assert.Equal(t, subscription.StatusPastDue, sub.Status)
		assert.True(t, periodStart.Equal(*sub.CurrentPeriodStart))
		assert.True(t, periodEnd.Equal(*sub.CurrentPeriodEnd))
	})

	t.Run("Unmodelled provider statuses are normalised", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
			Status: subscription.StatusActive, SubscriptionID: "sub_1",
		})

		_, err := f.ledger.ApplySubscriptionEvent(ctx, subscriptions.SubscriptionChange{
			SubscriptionID: "sub_1", Status: "incomplete_expired",
		})
		require.NoError(t, err)
		assert.Equal(t, subscription.StatusCanceled, f.row(t, user.ID).Status)

		_, err = f.ledger.ApplySubscriptionEvent(ctx, subscriptions.SubscriptionChange{
			SubscriptionID: "sub_1", Status: "paused",
		})
		require.NoError(t, err)
		assert.Equal(t, subscription.StatusUnpaid, f.row(t, user.ID).Status)
	})

	t.Run("Resolution - customer email creates the row", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client)
		f.dir.emails["cus_portal"] = user.Email

		tr, err := f.ledger.ApplySubscriptionEvent(ctx, subscriptions.SubscriptionChange{
			SubscriptionID: "sub_9", CustomerID: "cus_portal", Status: "active", PriceID: "price_pro_monthly",
		})
		require.NoError(t, err)
		assert.Equal(t, subscription.Status(""), tr.From)
		assert.Equal(t, user.ID, tr.UserID)

		sub := f.row(t, user.ID)
		assert.Equal(t, subscription.StatusActive, sub.Status)
		assert.Equal(t, "cus_portal", *sub.StripeCustomerID)
		assert.Equal(t, f.pro.ID, *sub.PlanID)
	})

	t.Run("Resolution - subscription ID wins over customer ID", func(t *testing.T) {
		f := setupLedger(t)
		owner := testdata.CreateUser(t, f.client)
		other := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, owner, testdata.SubscriptionSpec{
			Status: subscription.StatusTrialing, SubscriptionID: "sub_1",
		})
		testdata.CreateSubscription(t, f.client, other, testdata.SubscriptionSpec{
			Status: subscription.StatusTrialing, CustomerID: "cus_other",
		})

		tr, err := f.ledger.ApplySubscriptionEvent(ctx, subscriptions.SubscriptionChange{
			SubscriptionID: "sub_1", CustomerID: "cus_other", Status: "active",
		})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, tr.UserID)
		assert.Zero(t, f.dir.calls)
	})

	t.Run("Error - unresolvable leaves no row", func(t *testing.T) {
		f := setupLedger(t)
		testdata.CreateUser(t, f.client)
		f.dir.err = errors.New("stripe unavailable")

		_, err := f.ledger.ApplySubscriptionEvent(ctx, subscriptions.SubscriptionChange{
			SubscriptionID: "sub_x", CustomerID: "cus_x", Status: "active",
		})
		assert.ErrorIs(t, err, domain.ErrUnresolvableSubscription)
		assert.Equal(t, 1, f.dir.calls)

		count, err := f.client.Subscription.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestMarkPastDue(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - flags matching subscription", func(t *testing.T) {
		f := setupLedger(t)
		user := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
			Plan: f.pro, Status: subscription.StatusActive, SubscriptionID: "sub_1",
		})

		tr, err := f.ledger.MarkPastDue(ctx, "sub_1")
		require.NoError(t, err)
		require.NotNil(t, tr)
		assert.Equal(t, subscription.StatusActive, tr.From)
		assert.Equal(t, subscription.StatusPastDue, tr.To)
		assert.Equal(t, user.Email, tr.Email)
		assert.Equal(t, subscription.StatusPastDue, f.row(t, user.ID).Status)
	})

	t.Run("No-op for unknown subscription", func(t *testing.T) {
		f := setupLedger(t)

		tr, err := f.ledger.MarkPastDue(ctx, "sub_missing")
		require.NoError(t, err)
		assert.Nil(t, tr)
	})
}

func TestForUser(t *testing.T) {
	f := setupLedger(t)
	ctx := context.Background()
	user := testdata.CreateUser(t, f.client)

	sub, err := f.ledger.ForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, sub)

	testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
		Plan: f.pro, Status: subscription.StatusActive,
	})

	sub, err = f.ledger.ForUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	require.NotNil(t, sub.Edges.Plan)
	assert.Equal(t, "pro", sub.Edges.Plan.Name)
	assert.True(t, subscriptions.IsActive(sub))
}

func TestCountByStatus(t *testing.T) {
	f := setupLedger(t)
	for _, status := range []subscription.Status{
		subscription.StatusActive, subscription.StatusActive, subscription.StatusCanceled,
	} {
		testdata.CreateSubscription(t, f.client, testdata.CreateUser(t, f.client), testdata.SubscriptionSpec{Status: status})
	}

	counts, err := f.ledger.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"active": 2, "canceled": 1}, counts)
}

func TestLedger_StoreUnavailable(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	ledger := subscriptions.NewLedger(client, plans.NewCatalog(client, time.Minute, nil, nil),
		subscriptions.WithRowLocks(true))
	ctx := context.Background()

	_, err = ledger.UpsertFromCheckout(ctx, subscriptions.CheckoutCompletion{Email: "a@example.com"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = ledger.ApplySubscriptionEvent(ctx, subscriptions.SubscriptionChange{SubscriptionID: "sub_1", Status: "active"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = ledger.MarkPastDue(ctx, "sub_1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = ledger.ForUser(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
