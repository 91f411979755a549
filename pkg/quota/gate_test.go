package quota

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/ent/usagelog"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/metrics"
	"github.com/audiomint/backend/pkg/plans"
	"github.com/audiomint/backend/pkg/subscriptions"
	"github.com/audiomint/backend/pkg/testdata"
)

type gateFixture struct {
	client *ent.Client
	store  *Store
	gate   *Gate
	m      *metrics.Metrics
}

func setupGate(t *testing.T) *gateFixture {
	client := testdata.OpenDB(t)
	testdata.CreatePlan(t, client, testdata.FreePlan())

	catalog := plans.NewCatalog(client, time.Minute, nil, nil)
	ledger := subscriptions.NewLedger(client, catalog)
	store := NewStore(client)
	m := metrics.New(prometheus.NewRegistry())

	return &gateFixture{
		client: client,
		store:  store,
		gate:   NewGate(store, ledger, catalog, nil, m),
		m:      m,
	}
}

func (f *gateFixture) setUsage(t *testing.T, userID, generations int) {
	t.Helper()
	ctx := context.Background()
	_, err := f.store.Today(ctx, userID)
	require.NoError(t, err)
	err = f.client.UsageLog.Update().
		Where(usagelog.UserID(userID), usagelog.Date(f.store.Day())).
		SetAudioGenerations(generations).
		Exec(ctx)
	require.NoError(t, err)
}

func TestAuthorize_QuotaBoundary(t *testing.T) {
	f := setupGate(t)
	user := testdata.CreateUser(t, f.client)
	ctx := context.Background()
	f.setUsage(t, user.ID, 19)

	adm, err := f.gate.Authorize(ctx, user.ID, Request{Duration: 10, Steps: 100})
	require.NoError(t, err, "20th generation is admitted")
	assert.Equal(t, 19, adm.CurrentUsage)
	assert.Equal(t, 1, adm.Remaining)
	assert.Equal(t, plans.SourceDefault, adm.Limits.Source)

	row, err := f.gate.RecordUsage(ctx, user.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 20, row.AudioGenerations)

	_, err = f.gate.Authorize(ctx, user.ID, Request{Duration: 10, Steps: 100})
	require.Error(t, err, "21st generation is denied")
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	var denial *Denial
	require.True(t, errors.As(err, &denial))
	assert.Equal(t, 20, denial.CurrentUsage)
	assert.Equal(t, 20, denial.DailyLimit)
	assert.Zero(t, denial.Remaining)
	assert.Contains(t, denial.Error(), "20/20")
}

func TestAuthorize_CheckOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Duration over plan maximum", func(t *testing.T) {
		f := setupGate(t)
		user := testdata.CreateUser(t, f.client)

		_, err := f.gate.Authorize(ctx, user.ID, Request{Duration: 31, Steps: 100})
		assert.ErrorIs(t, err, domain.ErrDurationExceeded)

		var denial *Denial
		require.True(t, errors.As(err, &denial))
		assert.Equal(t, 31, denial.Requested)
		assert.Equal(t, 30, denial.Max)
	})

	t.Run("Steps over plan maximum", func(t *testing.T) {
		f := setupGate(t)
		user := testdata.CreateUser(t, f.client)

		_, err := f.gate.Authorize(ctx, user.ID, Request{Duration: 30, Steps: 201})
		assert.ErrorIs(t, err, domain.ErrStepsExceeded)
	})

	t.Run("Quota is checked before duration", func(t *testing.T) {
		f := setupGate(t)
		user := testdata.CreateUser(t, f.client)
		f.setUsage(t, user.ID, 20)

		_, err := f.gate.Authorize(ctx, user.ID, Request{Duration: 999, Steps: 999})
		assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	})

	t.Run("API access requires plan capability", func(t *testing.T) {
		f := setupGate(t)
		user := testdata.CreateUser(t, f.client)

		_, err := f.gate.Authorize(ctx, user.ID, Request{Duration: 10, Steps: 50, ViaAPI: true})
		assert.ErrorIs(t, err, domain.ErrAPIAccessDenied)
	})

	t.Run("Active paid plan raises limits", func(t *testing.T) {
		f := setupGate(t)
		pro := testdata.CreatePlan(t, f.client, testdata.ProPlan())
		user := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
			Plan: pro, Status: subscription.StatusActive,
		})
		f.setUsage(t, user.ID, 50)

		adm, err := f.gate.Authorize(ctx, user.ID, Request{Duration: 60, Steps: 300, ViaAPI: true})
		require.NoError(t, err)
		assert.Equal(t, 50, adm.Remaining)
		assert.Equal(t, "pro", adm.Limits.PlanName)
	})

	t.Run("Canceled plan falls back to free limits", func(t *testing.T) {
		f := setupGate(t)
		pro := testdata.CreatePlan(t, f.client, testdata.ProPlan())
		user := testdata.CreateUser(t, f.client)
		testdata.CreateSubscription(t, f.client, user, testdata.SubscriptionSpec{
			Plan: pro, Status: subscription.StatusCanceled,
		})

		_, err := f.gate.Authorize(ctx, user.ID, Request{Duration: 60, Steps: 100})
		assert.ErrorIs(t, err, domain.ErrDurationExceeded)
	})
}

func TestAuthorize_DoesNotCharge(t *testing.T) {
	f := setupGate(t)
	user := testdata.CreateUser(t, f.client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.gate.Authorize(ctx, user.ID, Request{Duration: 5, Steps: 20})
		require.NoError(t, err)
	}

	row, err := f.gate.Usage(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, row.AudioGenerations)
	assert.Equal(t, 3.0, testutil.ToFloat64(f.m.QuotaDecisions.WithLabelValues("admitted")))
}

func TestAuthorize_ConcurrentAdmission(t *testing.T) {
	f := setupGate(t)
	user := testdata.CreateUser(t, f.client)
	f.setUsage(t, user.ID, 19)

	const workers = 8
	var admitted atomic.Int32
	g, ctx := errgroup.WithContext(context.Background())

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			_, err := f.gate.Authorize(ctx, user.ID, Request{Duration: 10, Steps: 50})
			if errors.Is(err, domain.ErrQuotaExceeded) {
				return nil
			}
			if err != nil {
				return err
			}
			admitted.Add(1)
			_, err = f.gate.RecordUsage(ctx, user.ID, 10)
			return err
		})
	}
	require.NoError(t, g.Wait())

	n := int(admitted.Load())
	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, workers)

	row, err := f.gate.Usage(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 19+n, row.AudioGenerations, "every admitted generation is charged exactly once")
	assert.Equal(t, 10*n, row.TotalDuration)
}

func TestRecordAPICall(t *testing.T) {
	f := setupGate(t)
	user := testdata.CreateUser(t, f.client)
	ctx := context.Background()

	require.NoError(t, f.gate.RecordAPICall(ctx, user.ID))

	row, err := f.gate.Usage(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.APICalls)
}
