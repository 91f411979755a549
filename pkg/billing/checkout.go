package billing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/models"
)

// PlanGetter loads a plan by ID, nil when missing.
type PlanGetter interface {
	PlanByID(ctx context.Context, id int) (*ent.Plan, error)
}

// SubscriptionReader loads a user's subscription, nil when missing.
type SubscriptionReader interface {
	ForUser(ctx context.Context, userID int) (*ent.Subscription, error)
}

// CheckoutConfig holds redirect targets.
type CheckoutConfig struct {
	SuccessURL string
	CancelURL  string
}

// Checkout starts purchases and portal sessions. The resulting subscription
// state arrives later through the webhook reconciler.
type Checkout struct {
	users   *ent.Client
	plans   PlanGetter
	subs    SubscriptionReader
	gateway Gateway
	cfg     CheckoutConfig
}

// NewCheckout creates a checkout service.
func NewCheckout(users *ent.Client, plans PlanGetter, subs SubscriptionReader, gateway Gateway, cfg CheckoutConfig) *Checkout {
	return &Checkout{users: users, plans: plans, subs: subs, gateway: gateway, cfg: cfg}
}

// CreateSession opens a checkout for planID.
func (c *Checkout) CreateSession(ctx context.Context, userID, planID int) (*models.CheckoutResponse, error) {
	p, err := c.plans.PlanByID(ctx, planID)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}
	if p == nil || !p.IsActive || p.StripePriceID == nil || *p.StripePriceID == "" {
		return nil, domain.Wrap(domain.ErrPlanUnavailable, fmt.Errorf("plan %d", planID))
	}

	u, err := c.users.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, domain.StoreUnavailable(err)
	}

	params := CheckoutParams{
		PriceID:       *p.StripePriceID,
		CustomerEmail: u.Email,
		SuccessURL:    c.cfg.SuccessURL,
		CancelURL:     c.cfg.CancelURL,
		Metadata: map[string]string{
			"user_id": strconv.Itoa(userID),
			"plan_id": strconv.Itoa(planID),
		},
	}

	sub, err := c.subs.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub != nil && sub.StripeCustomerID != nil && *sub.StripeCustomerID != "" {
		params.CustomerID = *sub.StripeCustomerID
	}

	sess, err := c.gateway.CreateCheckoutSession(ctx, params)
	if err != nil {
		return nil, err
	}

	return &models.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// CreatePortalSession opens the billing portal for a user who has paid before.
func (c *Checkout) CreatePortalSession(ctx context.Context, userID int, returnURL string) (*models.CustomerPortalResponse, error) {
	sub, err := c.subs.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.StripeCustomerID == nil || *sub.StripeCustomerID == "" {
		return nil, domain.ErrNoCustomer
	}

	url, err := c.gateway.CreatePortalSession(ctx, *sub.StripeCustomerID, returnURL)
	if err != nil {
		return nil, err
	}
	return &models.CustomerPortalResponse{URL: url}, nil
}
