package billing

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/plans"
	"github.com/audiomint/backend/pkg/subscriptions"
	"github.com/audiomint/backend/pkg/testdata"
)

type fakeGateway struct {
	checkouts []CheckoutParams
	portals   []string
	err       error
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, p CheckoutParams) (*CheckoutSession, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.checkouts = append(g.checkouts, p)
	return &CheckoutSession{ID: "cs_test", URL: "https://checkout.example.com/cs_test", ExpiresAt: 1700000000}, nil
}

func (g *fakeGateway) CreatePortalSession(_ context.Context, customerID, returnURL string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.portals = append(g.portals, customerID)
	return "https://portal.example.com/" + customerID, nil
}

func (g *fakeGateway) CustomerEmail(context.Context, string) (string, error) {
	return "", nil
}

func setupCheckout(t *testing.T) (*ent.Client, *Checkout, *fakeGateway) {
	client := testdata.OpenDB(t)
	catalog := plans.NewCatalog(client, time.Minute, nil, nil)
	ledger := subscriptions.NewLedger(client, catalog)
	gw := &fakeGateway{}
	checkout := NewCheckout(client, catalog, ledger, gw, CheckoutConfig{
		SuccessURL: "https://app.example.com/billing/success",
		CancelURL:  "https://app.example.com/pricing",
	})
	return client, checkout, gw
}

func TestCheckout_CreateSession(t *testing.T) {
	client, checkout, gw := setupCheckout(t)
	pro := testdata.CreatePlan(t, client, testdata.ProPlan())
	user := testdata.CreateUser(t, client, testdata.WithEmail("buyer@example.com"))

	resp, err := checkout.CreateSession(context.Background(), user.ID, pro.ID)

	require.NoError(t, err)
	assert.Equal(t, "cs_test", resp.SessionID)
	assert.Equal(t, "https://checkout.example.com/cs_test", resp.URL)

	require.Len(t, gw.checkouts, 1)
	params := gw.checkouts[0]
	assert.Equal(t, "price_pro_monthly", params.PriceID)
	assert.Equal(t, "buyer@example.com", params.CustomerEmail)
	assert.Empty(t, params.CustomerID)
	assert.Equal(t, "https://app.example.com/billing/success", params.SuccessURL)
	assert.Equal(t, map[string]string{
		"user_id": strconv.Itoa(user.ID),
		"plan_id": strconv.Itoa(pro.ID),
	}, params.Metadata)
}

func TestCheckout_ReusesExistingCustomer(t *testing.T) {
	client, checkout, gw := setupCheckout(t)
	pro := testdata.CreatePlan(t, client, testdata.ProPlan())
	user := testdata.CreateUser(t, client)
	testdata.CreateSubscription(t, client, user, testdata.SubscriptionSpec{
		Status: subscription.StatusCanceled, CustomerID: "cus_existing",
	})

	_, err := checkout.CreateSession(context.Background(), user.ID, pro.ID)

	require.NoError(t, err)
	require.Len(t, gw.checkouts, 1)
	assert.Equal(t, "cus_existing", gw.checkouts[0].CustomerID)
}

func TestCheckout_UnavailablePlans(t *testing.T) {
	client, checkout, gw := setupCheckout(t)
	user := testdata.CreateUser(t, client)
	free := testdata.CreatePlan(t, client, testdata.FreePlan())

	retired := testdata.ProPlan()
	retired.Name, retired.PriceID, retired.Active = "legacy", "price_legacy", false
	legacy := testdata.CreatePlan(t, client, retired)

	tests := []struct {
		name   string
		planID int
	}{
		{name: "Unknown plan", planID: 9999},
		{name: "Plan without price", planID: free.ID},
		{name: "Inactive plan", planID: legacy.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := checkout.CreateSession(context.Background(), user.ID, tt.planID)
			assert.ErrorIs(t, err, domain.ErrPlanUnavailable)
		})
	}
	assert.Empty(t, gw.checkouts)
}

func TestCheckout_GatewayError(t *testing.T) {
	client, checkout, gw := setupCheckout(t)
	pro := testdata.CreatePlan(t, client, testdata.ProPlan())
	user := testdata.CreateUser(t, client)
	gw.err = errors.New("card_declined")

	_, err := checkout.CreateSession(context.Background(), user.ID, pro.ID)

	assert.EqualError(t, err, "card_declined")
}

func TestCheckout_CreatePortalSession(t *testing.T) {
	client, checkout, gw := setupCheckout(t)

	t.Run("Success", func(t *testing.T) {
		user := testdata.CreateUser(t, client)
		testdata.CreateSubscription(t, client, user, testdata.SubscriptionSpec{
			Status: subscription.StatusActive, CustomerID: "cus_portal",
		})

		resp, err := checkout.CreatePortalSession(context.Background(), user.ID, "https://app.example.com/billing")

		require.NoError(t, err)
		assert.Equal(t, "https://portal.example.com/cus_portal", resp.URL)
		assert.Equal(t, []string{"cus_portal"}, gw.portals)
	})

	t.Run("Error - no customer", func(t *testing.T) {
		user := testdata.CreateUser(t, client)

		_, err := checkout.CreatePortalSession(context.Background(), user.ID, "")

		assert.ErrorIs(t, err, domain.ErrNoCustomer)
	})
}
