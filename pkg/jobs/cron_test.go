package jobs

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/pkg/metrics"
	"github.com/audiomint/backend/pkg/plans"
	"github.com/audiomint/backend/pkg/subscriptions"
	"github.com/audiomint/backend/pkg/testdata"
)

type fakeCounter struct {
	counts map[string]int
	err    error
}

func (f fakeCounter) CountByStatus(context.Context) (map[string]int, error) {
	return f.counts, f.err
}

type fakePool struct{ inUse int }

func (f fakePool) Stats() sql.DBStats { return sql.DBStats{InUse: f.inUse} }

func TestCronManager_SetupJobs(t *testing.T) {
	cm := NewCronManager(fakeCounter{}, nil, nil, nil, nil)

	require.NoError(t, cm.SetupJobs())

	assert.Len(t, cm.cron.Entries(), 3)
}

func TestCronManager_RefreshSubscriptionGauge(t *testing.T) {
	client := testdata.OpenDB(t)
	catalog := plans.NewCatalog(client, time.Hour, nil, nil)
	ledger := subscriptions.NewLedger(client, catalog)
	pro := testdata.CreatePlan(t, client, testdata.ProPlan())
	for _, status := range []subscription.Status{subscription.StatusActive, subscription.StatusActive, subscription.StatusPastDue} {
		testdata.CreateSubscription(t, client, testdata.CreateUser(t, client), testdata.SubscriptionSpec{Plan: pro, Status: status})
	}
	m := metrics.New(prometheus.NewRegistry())
	cm := NewCronManager(ledger, catalog, nil, m, nil)

	require.NoError(t, cm.RefreshSubscriptionGauge(context.Background()))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SubscriptionsByStatus.WithLabelValues("active")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SubscriptionsByStatus.WithLabelValues("past_due")))
}

func TestCronManager_RefreshSubscriptionGaugeError(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.SetSubscriptionCounts(map[string]int{"active": 5})
	cm := NewCronManager(fakeCounter{err: errors.New("connection refused")}, nil, nil, m, nil)

	assert.Error(t, cm.RefreshSubscriptionGauge(context.Background()))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.SubscriptionsByStatus.WithLabelValues("active")), "last good values are kept")
}

func TestCronManager_RefreshPlanCache(t *testing.T) {
	client := testdata.OpenDB(t)
	catalog := plans.NewCatalog(client, time.Hour, nil, nil)
	testdata.CreatePlan(t, client, testdata.FreePlan())
	cm := NewCronManager(fakeCounter{}, catalog, nil, nil, nil)
	ctx := context.Background()

	list, err := catalog.ActivePlans(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	testdata.CreatePlan(t, client, testdata.ProPlan())
	require.NoError(t, cm.RefreshPlanCache(ctx))

	list, err = catalog.ActivePlans(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCronManager_RecordPoolStats(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	cm := NewCronManager(fakeCounter{}, nil, fakePool{inUse: 4}, m, nil)

	cm.RecordPoolStats()

	assert.Equal(t, 4.0, testutil.ToFloat64(m.DBConnections))
}
