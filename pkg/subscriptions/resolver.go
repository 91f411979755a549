package subscriptions

import (
	"context"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/ent/user"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/logger"
)

// CustomerDirectory looks up a billing customer's email at the provider.
type CustomerDirectory interface {
	CustomerEmail(ctx context.Context, customerID string) (string, error)
}

// Resolver maps a subscription change to a local user. ok is false when the
// strategy has no match; err is reserved for store failures.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context, change SubscriptionChange) (userID int, ok bool, err error)
}

// BySubscriptionID matches the provider subscription ID already on file.
type BySubscriptionID struct {
	Client *ent.Client
}

func (BySubscriptionID) Name() string { return "subscription_id" }

func (r BySubscriptionID) Resolve(ctx context.Context, change SubscriptionChange) (int, bool, error) {
	if change.SubscriptionID == "" {
		return 0, false, nil
	}
	sub, err := r.Client.Subscription.Query().
		Where(subscription.StripeSubscriptionID(change.SubscriptionID)).
		Only(ctx)
	return found(sub, err)
}

// ByCustomerID matches the provider customer ID recorded at checkout.
type ByCustomerID struct {
	Client *ent.Client
}

func (ByCustomerID) Name() string { return "customer_id" }

func (r ByCustomerID) Resolve(ctx context.Context, change SubscriptionChange) (int, bool, error) {
	if change.CustomerID == "" {
		return 0, false, nil
	}
	sub, err := r.Client.Subscription.Query().
		Where(subscription.StripeCustomerID(change.CustomerID)).
		Order(ent.Asc(subscription.FieldID)).
		First(ctx)
	return found(sub, err)
}

// ByCustomerEmail asks the provider for the customer's email and matches it
// against local users. Provider failures count as no match.
type ByCustomerEmail struct {
	Client    *ent.Client
	Directory CustomerDirectory
	Log       logger.Logger
}

func (ByCustomerEmail) Name() string { return "customer_email" }

func (r ByCustomerEmail) Resolve(ctx context.Context, change SubscriptionChange) (int, bool, error) {
	if change.CustomerID == "" || r.Directory == nil {
		return 0, false, nil
	}

	email, err := r.Directory.CustomerEmail(ctx, change.CustomerID)
	if err != nil {
		if r.Log != nil {
			r.Log.Warn("Customer lookup failed", "customer_id", change.CustomerID, "error", err)
		}
		return 0, false, nil
	}
	if email == "" {
		return 0, false, nil
	}

	id, err := r.Client.User.Query().
		Where(user.EmailEqualFold(email)).
		FirstID(ctx)
	if ent.IsNotFound(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, domain.StoreUnavailable(err)
	}
	return id, true, nil
}

func found(sub *ent.Subscription, err error) (int, bool, error) {
	if ent.IsNotFound(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, domain.StoreUnavailable(err)
	}
	return sub.UserID, true, nil
}

// DefaultResolvers returns the lookup order used for subscription events.
func DefaultResolvers(client *ent.Client, directory CustomerDirectory, log logger.Logger) []Resolver {
	return []Resolver{
		BySubscriptionID{Client: client},
		ByCustomerID{Client: client},
		ByCustomerEmail{Client: client, Directory: directory, Log: log},
	}
}
