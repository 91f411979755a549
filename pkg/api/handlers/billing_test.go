package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/ent/usagelog"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/models"
	"github.com/audiomint/backend/pkg/testdata"
)

const defaultReturnURL = "https://audiomint.app/account/billing"

var testBillingConfig = BillingConfig{
	DefaultReturnURL: defaultReturnURL,
	AllowedHosts:     []string{"localhost:5173", "audiomint.app", "www.audiomint.app"},
}

type fakeCheckout struct {
	err        error
	returnURLs []string
}

func (f *fakeCheckout) CreateSession(_ context.Context, userID, planID int) (*models.CheckoutResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.CheckoutResponse{
		SessionID: fmt.Sprintf("cs_test_%d_%d", userID, planID),
		URL:       "https://checkout.stripe.com/c/pay/cs_test",
	}, nil
}

func (f *fakeCheckout) CreatePortalSession(_ context.Context, _ int, returnURL string) (*models.CustomerPortalResponse, error) {
	f.returnURLs = append(f.returnURLs, returnURL)
	if f.err != nil {
		return nil, f.err
	}
	return &models.CustomerPortalResponse{URL: "https://billing.stripe.com/p/session/test"}, nil
}

func newBillingHandler(env *testEnv, checkout CheckoutService) *BillingHandler {
	return NewBillingHandler(checkout, env.catalog, env.ledger, env.gate, testBillingConfig)
}

func TestValidateReturnURL(t *testing.T) {
	h := NewBillingHandler(nil, nil, nil, nil, testBillingConfig)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty URL returns default", input: "", expected: defaultReturnURL},
		{name: "local frontend is allowed", input: "http://localhost:5173/account", expected: "http://localhost:5173/account"},
		{name: "production URL keeps query", input: "https://audiomint.app/account?upgraded=1", expected: "https://audiomint.app/account?upgraded=1"},
		{name: "www host is allowed", input: "https://www.audiomint.app/account", expected: "https://www.audiomint.app/account"},
		{name: "external host is blocked", input: "https://evil.com/phishing", expected: defaultReturnURL},
		{name: "suffix attack is blocked", input: "https://audiomint.app.evil.com/fake", expected: defaultReturnURL},
		{name: "userinfo is blocked", input: "https://attacker@audiomint.app/account", expected: defaultReturnURL},
		{name: "relative URL is blocked", input: "not-a-valid-url", expected: defaultReturnURL},
		{name: "scheme-relative URL is blocked", input: "//evil.com/phishing", expected: defaultReturnURL},
		{name: "javascript scheme is blocked", input: "javascript:alert('xss')", expected: defaultReturnURL},
		{name: "ftp scheme is blocked", input: "ftp://audiomint.app", expected: defaultReturnURL},
		{name: "localhost on another port is blocked", input: "http://localhost:8080/account", expected: defaultReturnURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, h.validateReturnURL(tt.input))
		})
	}
}

func TestBillingHandler_CreateCheckout(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		userID     int
		body       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "Success", userID: 1, body: `{"plan_id":2}`, wantStatus: http.StatusOK},
		{name: "Unauthenticated", body: `{"plan_id":2}`, wantStatus: http.StatusUnauthorized},
		{name: "Missing plan", userID: 1, body: `{}`, wantStatus: http.StatusBadRequest, wantError: "validation_error"},
		{name: "Plan not for sale", userID: 1, body: `{"plan_id":1}`, err: domain.ErrPlanUnavailable, wantStatus: http.StatusBadRequest, wantError: "plan_unavailable"},
		{name: "Store down", userID: 1, body: `{"plan_id":2}`, err: domain.StoreUnavailable(errors.New("connection refused")), wantStatus: http.StatusServiceUnavailable},
		{name: "Provider error", userID: 1, body: `{"plan_id":2}`, err: errors.New("card_declined"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newBillingHandler(env, &fakeCheckout{err: tt.err})
			c, rec := newContext(request{method: http.MethodPost, target: "/api/v1/billing/checkout", body: tt.body, userID: tt.userID})

			require.NoError(t, h.CreateCheckout(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Contains(t, rec.Body.String(), tt.wantError)
			}
			if tt.wantStatus == http.StatusOK {
				var resp models.CheckoutResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "cs_test_1_2", resp.SessionID)
			}
		})
	}
}

func TestBillingHandler_CreatePortalSession(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Return URL from body", func(t *testing.T) {
		checkout := &fakeCheckout{}
		h := newBillingHandler(env, checkout)
		c, rec := newContext(request{
			method: http.MethodPost, target: "/api/v1/billing/portal", userID: 1,
			body: `{"return_url":"https://audiomint.app/account"}`,
		})

		require.NoError(t, h.CreatePortalSession(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"https://audiomint.app/account"}, checkout.returnURLs)
	})

	t.Run("Foreign return URL falls back to default", func(t *testing.T) {
		checkout := &fakeCheckout{}
		h := newBillingHandler(env, checkout)
		c, rec := newContext(request{
			method: http.MethodPost, target: "/api/v1/billing/portal?return_url=https://evil.com", userID: 1,
		})

		require.NoError(t, h.CreatePortalSession(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{defaultReturnURL}, checkout.returnURLs)
	})

	t.Run("No customer", func(t *testing.T) {
		h := newBillingHandler(env, &fakeCheckout{err: domain.ErrNoCustomer})
		c, rec := newContext(request{method: http.MethodPost, target: "/api/v1/billing/portal", userID: 1})

		require.NoError(t, h.CreatePortalSession(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBillingHandler_ListPlans(t *testing.T) {
	env := newTestEnv(t)
	testdata.CreatePlan(t, env.client, testdata.PlanSpec{Name: "legacy", Price: 4.99, DailyLimit: 50, MaxDuration: 30, MaxSteps: 200})
	h := newBillingHandler(env, &fakeCheckout{})
	c, rec := newContext(request{method: http.MethodGet, target: "/api/v1/billing/plans"})

	require.NoError(t, h.ListPlans(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.PlansResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Plans, 2, "inactive plans are hidden")
	assert.Equal(t, "free", resp.Plans[0].Name)
	assert.Equal(t, "pro", resp.Plans[1].Name)
	assert.True(t, resp.Plans[1].CanUseAPI)
}

func TestBillingHandler_GetSubscriptionStatus(t *testing.T) {
	env := newTestEnv(t)
	h := newBillingHandler(env, &fakeCheckout{})

	status := func(t *testing.T, userID int) models.SubscriptionStatusResponse {
		t.Helper()
		c, rec := newContext(request{method: http.MethodGet, target: "/api/v1/billing/subscription", userID: userID})
		require.NoError(t, h.GetSubscriptionStatus(c))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp models.SubscriptionStatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	t.Run("No subscription uses default plan", func(t *testing.T) {
		user := testdata.CreateUser(t, env.client)
		env.setUsage(t, user.ID, 7)

		resp := status(t, user.ID)

		assert.False(t, resp.HasSubscription)
		assert.Nil(t, resp.Plan)
		assert.Nil(t, resp.DaysRemaining)
		assert.Equal(t, 20, resp.UsageLimit)
		assert.Equal(t, 7, resp.CurrentUsage.AudioGenerations)
		assert.Equal(t, 35.0, resp.UsagePercentage)
		assert.Equal(t, "default", resp.LimitsSource)
	})

	t.Run("Reading status leaves no usage row behind", func(t *testing.T) {
		user := testdata.CreateUser(t, env.client)

		resp := status(t, user.ID)

		assert.Zero(t, resp.CurrentUsage.AudioGenerations)
		assert.Zero(t, resp.UsagePercentage)
		count, err := env.client.UsageLog.Query().Where(usagelog.UserID(user.ID)).Count(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Active subscription", func(t *testing.T) {
		user := testdata.CreateUser(t, env.client)
		end := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC)
		testdata.CreateSubscription(t, env.client, user, testdata.SubscriptionSpec{
			Plan: env.pro, Status: subscription.StatusActive, PeriodEnd: end,
		})
		env.setUsage(t, user.ID, 1)
		h.now = func() time.Time { return end.Add(-(10*24 + 5) * time.Hour) }
		defer func() { h.now = time.Now }()

		resp := status(t, user.ID)

		assert.True(t, resp.HasSubscription)
		assert.Equal(t, "active", resp.Status)
		require.NotNil(t, resp.Plan)
		assert.Equal(t, "pro", resp.Plan.Name)
		require.NotNil(t, resp.DaysRemaining)
		assert.Equal(t, 10, *resp.DaysRemaining)
		assert.Equal(t, "2026-03-31T12:00:00Z", resp.CurrentPeriodEnd)
		assert.Equal(t, 100, resp.UsageLimit)
		assert.Equal(t, 1.0, resp.UsagePercentage)
		assert.Equal(t, "plan", resp.LimitsSource)
	})

	t.Run("Canceled subscription falls back and clamps days", func(t *testing.T) {
		user := testdata.CreateUser(t, env.client)
		testdata.CreateSubscription(t, env.client, user, testdata.SubscriptionSpec{
			Plan: env.pro, Status: subscription.StatusCanceled, PeriodEnd: time.Now().Add(-48 * time.Hour),
		})

		resp := status(t, user.ID)

		assert.True(t, resp.HasSubscription)
		assert.Equal(t, "canceled", resp.Status)
		assert.Equal(t, 20, resp.UsageLimit)
		require.NotNil(t, resp.DaysRemaining)
		assert.Zero(t, *resp.DaysRemaining)
	})
}

func TestBillingHandler_GetUsageHistory(t *testing.T) {
	env := newTestEnv(t)
	h := newBillingHandler(env, &fakeCheckout{})
	user := testdata.CreateUser(t, env.client)
	env.setUsage(t, user.ID, 4)

	t.Run("Default window", func(t *testing.T) {
		c, rec := newContext(request{method: http.MethodGet, target: "/api/v1/billing/usage", userID: user.ID})

		require.NoError(t, h.GetUsageHistory(c))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.UsageHistoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Days, 1)
		assert.Equal(t, env.store.Day().Format("2006-01-02"), resp.Days[0].Date)
		assert.Equal(t, 4, resp.Days[0].AudioGenerations)
	})

	for _, days := range []string{"0", "91", "week"} {
		t.Run("Rejects days="+days, func(t *testing.T) {
			c, rec := newContext(request{method: http.MethodGet, target: "/api/v1/billing/usage?days=" + days, userID: user.ID})

			require.NoError(t, h.GetUsageHistory(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
