package plans

import (
	"context"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/pkg/metrics"
	"github.com/audiomint/backend/pkg/testdata"
)

func newTestCatalog(client *ent.Client) *Catalog {
	return NewCatalog(client, time.Minute, nil, nil)
}

func TestLimitsFor(t *testing.T) {
	ctx := context.Background()

	t.Run("Fallback - no plans at all", func(t *testing.T) {
		client := testdata.OpenDB(t)
		catalog := newTestCatalog(client)

		limits := catalog.LimitsFor(ctx, nil)

		assert.Equal(t, SourceFallback, limits.Source)
		assert.Equal(t, 20, limits.DailyLimit)
		assert.Equal(t, 30, limits.MaxDuration)
		assert.Equal(t, 200, limits.MaxSteps)
		assert.True(t, limits.CanDownload)
		assert.False(t, limits.CanUseAPI)
		assert.False(t, limits.CanEditAudio)
	})

	t.Run("Default - no subscription uses free plan", func(t *testing.T) {
		client := testdata.OpenDB(t)
		free := testdata.FreePlan()
		free.DailyLimit = 25
		testdata.CreatePlan(t, client, free)
		catalog := newTestCatalog(client)

		limits := catalog.LimitsFor(ctx, nil)

		assert.Equal(t, SourceDefault, limits.Source)
		assert.Equal(t, 25, limits.DailyLimit)
		assert.Equal(t, "free", limits.PlanName)
	})

	t.Run("Plan - active subscription uses its plan", func(t *testing.T) {
		client := testdata.OpenDB(t)
		testdata.CreatePlan(t, client, testdata.FreePlan())
		pro := testdata.CreatePlan(t, client, testdata.ProPlan())
		user := testdata.CreateUser(t, client)
		sub := testdata.CreateSubscription(t, client, user, testdata.SubscriptionSpec{
			Plan: pro, Status: subscription.StatusActive,
		})
		catalog := newTestCatalog(client)

		limits := catalog.LimitsFor(ctx, sub)

		assert.Equal(t, SourcePlan, limits.Source)
		assert.Equal(t, 100, limits.DailyLimit)
		assert.True(t, limits.CanUseAPI)
		assert.Equal(t, pro.ID, limits.PlanID)
	})

	t.Run("Plan - trialing counts as active", func(t *testing.T) {
		client := testdata.OpenDB(t)
		pro := testdata.CreatePlan(t, client, testdata.ProPlan())
		user := testdata.CreateUser(t, client)
		sub := testdata.CreateSubscription(t, client, user, testdata.SubscriptionSpec{
			Plan: pro, Status: subscription.StatusTrialing,
		})

		limits := newTestCatalog(client).LimitsFor(ctx, sub)

		assert.Equal(t, SourcePlan, limits.Source)
	})

	t.Run("Default - inactive statuses ignore the plan", func(t *testing.T) {
		client := testdata.OpenDB(t)
		testdata.CreatePlan(t, client, testdata.FreePlan())
		pro := testdata.CreatePlan(t, client, testdata.ProPlan())
		catalog := newTestCatalog(client)

		for _, status := range []subscription.Status{
			subscription.StatusPastDue, subscription.StatusUnpaid, subscription.StatusCanceled,
		} {
			sub := &ent.Subscription{Status: status, PlanID: &pro.ID}
			limits := catalog.LimitsFor(ctx, sub)
			assert.Equal(t, SourceDefault, limits.Source, string(status))
			assert.Equal(t, 20, limits.DailyLimit, string(status))
		}
	})

	t.Run("Default - active subscription without plan", func(t *testing.T) {
		client := testdata.OpenDB(t)
		testdata.CreatePlan(t, client, testdata.FreePlan())

		limits := newTestCatalog(client).LimitsFor(ctx, &ent.Subscription{Status: subscription.StatusTrialing})

		assert.Equal(t, SourceDefault, limits.Source)
	})

	t.Run("Default - paid or inactive plans are never the default", func(t *testing.T) {
		client := testdata.OpenDB(t)
		inactiveFree := testdata.FreePlan()
		inactiveFree.Name = "legacy"
		inactiveFree.Active = false
		inactiveFree.SortOrder = 0
		testdata.CreatePlan(t, client, inactiveFree)
		testdata.CreatePlan(t, client, testdata.ProPlan())

		limits := newTestCatalog(client).LimitsFor(ctx, nil)

		assert.Equal(t, SourceFallback, limits.Source)
	})
}

func TestLimitsFor_StoreDown(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	catalog := newTestCatalog(client)
	planID := 3

	limits := catalog.LimitsFor(context.Background(), &ent.Subscription{
		Status: subscription.StatusActive, PlanID: &planID,
	})

	assert.Equal(t, FallbackLimits, limits)
}

func TestPlanByPriceID(t *testing.T) {
	client := testdata.OpenDB(t)
	pro := testdata.CreatePlan(t, client, testdata.ProPlan())
	catalog := newTestCatalog(client)
	ctx := context.Background()

	t.Run("Success - matching price", func(t *testing.T) {
		p, err := catalog.PlanByPriceID(ctx, "price_pro_monthly")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, pro.ID, p.ID)
	})

	t.Run("Unknown price returns nil", func(t *testing.T) {
		p, err := catalog.PlanByPriceID(ctx, "price_unknown")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("Empty price returns nil", func(t *testing.T) {
		p, err := catalog.PlanByPriceID(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestCatalog_CachesUntilPurge(t *testing.T) {
	client := testdata.OpenDB(t)
	free := testdata.CreatePlan(t, client, testdata.FreePlan())
	m := metrics.New(prometheus.NewRegistry())
	catalog := NewCatalog(client, time.Hour, nil, m)
	ctx := context.Background()

	first, err := catalog.DefaultPlan(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)

	_, err = client.Plan.UpdateOne(free).SetDailyAudioLimit(99).Save(ctx)
	require.NoError(t, err)

	cached, err := catalog.DefaultPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, cached.DailyAudioLimit)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits.WithLabelValues(cacheName)))

	catalog.Purge()

	fresh, err := catalog.DefaultPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 99, fresh.DailyAudioLimit)
}

func TestActivePlans_Ordering(t *testing.T) {
	client := testdata.OpenDB(t)
	pro := testdata.ProPlan()
	pro.SortOrder = 5
	testdata.CreatePlan(t, client, pro)
	testdata.CreatePlan(t, client, testdata.FreePlan())
	hidden := testdata.FreePlan()
	hidden.Name = "hidden"
	hidden.Active = false
	testdata.CreatePlan(t, client, hidden)

	list, err := newTestCatalog(client).ActivePlans(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "free", list[0].Name)
	assert.Equal(t, "pro", list[1].Name)
}

func TestActivePlans_StoreError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	catalog := newTestCatalog(ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db))))

	list, err := catalog.ActivePlans(context.Background())
	assert.Error(t, err)
	assert.Nil(t, list)
}
