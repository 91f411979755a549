package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/ent/user"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/logger"
)

// PlanLookup resolves provider price IDs to plans. A nil plan means no match.
type PlanLookup interface {
	PlanByPriceID(ctx context.Context, priceID string) (*ent.Plan, error)
}

// CheckoutCompletion is the part of a completed checkout the ledger needs.
type CheckoutCompletion struct {
	Email      string
	CustomerID string
}

// SubscriptionChange is a provider subscription event reduced to ledger fields.
// Zero values mean "not present in the event".
type SubscriptionChange struct {
	SubscriptionID string
	CustomerID     string
	Status         string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	PriceID        string
	Deleted        bool
}

// Transition describes what a committed write did to a user's subscription.
type Transition struct {
	UserID   int
	Email    string
	Name     string
	From     subscription.Status // empty when the row was created
	To       subscription.Status
	PlanName string
}

// Changed reports whether the status moved.
func (t *Transition) Changed() bool {
	return t != nil && t.From != t.To
}

// Ledger owns every write to the subscriptions table. Each write runs in its
// own transaction against the user's row.
type Ledger struct {
	client    *ent.Client
	plans     PlanLookup
	resolvers []Resolver
	rowLocks  bool
	log       logger.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithRowLocks enables SELECT ... FOR UPDATE. Enable it on Postgres.
func WithRowLocks(enabled bool) Option {
	return func(l *Ledger) { l.rowLocks = enabled }
}

// WithResolvers replaces the user resolution chain.
func WithResolvers(resolvers ...Resolver) Option {
	return func(l *Ledger) { l.resolvers = resolvers }
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

// NewLedger creates a ledger. Without WithResolvers it resolves by subscription ID
// then customer ID only.
func NewLedger(client *ent.Client, plans PlanLookup, opts ...Option) *Ledger {
	l := &Ledger{
		client: client,
		plans:  plans,
		log:    logger.Nop(),
	}
	l.resolvers = DefaultResolvers(client, nil, nil)[:2]
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With("component", "subscription_ledger")
	return l
}

// UpsertFromCheckout records a completed checkout. A missing subscription is
// created as trialing; an existing one only gains a customer ID if it had none.
func (l *Ledger) UpsertFromCheckout(ctx context.Context, in CheckoutCompletion) (*Transition, error) {
	if in.Email == "" {
		return nil, domain.Wrap(domain.ErrUserNotFound, errors.New("checkout has no customer email"))
	}

	u, err := l.client.User.Query().Where(user.EmailEqualFold(in.Email)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, domain.Wrap(domain.ErrUserNotFound, fmt.Errorf("email %s", in.Email))
	}
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}

	tr := &Transition{UserID: u.ID, Email: u.Email, Name: u.Name}
	err = l.write(ctx, func(tx *ent.Tx) error {
		sub, err := l.lockedRow(ctx, tx, u.ID)
		if err != nil {
			return err
		}

		if sub == nil {
			create := tx.Subscription.Create().
				SetUserID(u.ID).
				SetStatus(subscription.StatusTrialing)
			if in.CustomerID != "" {
				create.SetStripeCustomerID(in.CustomerID)
			}
			tr.From, tr.To = "", subscription.StatusTrialing
			return create.Exec(ctx)
		}

		tr.From, tr.To = sub.Status, sub.Status
		if sub.StripeCustomerID == nil && in.CustomerID != "" {
			return tx.Subscription.UpdateOne(sub).
				SetStripeCustomerID(in.CustomerID).
				Exec(ctx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("Checkout recorded", "user_id", u.ID, "from", tr.From, "to", tr.To)
	return tr, nil
}

// ApplySubscriptionEvent converges the user's row toward the provider state in change.
// Applying the same change again yields the same row.
func (l *Ledger) ApplySubscriptionEvent(ctx context.Context, change SubscriptionChange) (*Transition, error) {
	userID, err := l.resolveUser(ctx, change)
	if err != nil {
		return nil, err
	}

	var newPlan *ent.Plan
	if change.PriceID != "" {
		newPlan, err = l.plans.PlanByPriceID(ctx, change.PriceID)
		if err != nil {
			return nil, domain.StoreUnavailable(err)
		}
		if newPlan == nil {
			l.log.Warn("No plan for price, keeping current plan", "price_id", change.PriceID, "user_id", userID)
		}
	}

	tr := &Transition{UserID: userID}
	if newPlan != nil {
		tr.PlanName = newPlan.Name
	}

	err = l.write(ctx, func(tx *ent.Tx) error {
		u, err := tx.User.Get(ctx, userID)
		if err != nil {
			return err
		}
		tr.Email, tr.Name = u.Email, u.Name

		sub, err := l.lockedRow(ctx, tx, userID)
		if err != nil {
			return err
		}

		status := targetStatus(change, sub)
		tr.To = status

		if sub == nil {
			tr.From = ""
			create := tx.Subscription.Create().
				SetUserID(userID).
				SetStatus(status)
			if newPlan != nil {
				create.SetPlanID(newPlan.ID)
			}
			if change.CustomerID != "" {
				create.SetStripeCustomerID(change.CustomerID)
			}
			if change.SubscriptionID != "" {
				create.SetStripeSubscriptionID(change.SubscriptionID)
			}
			if !change.PeriodStart.IsZero() {
				create.SetCurrentPeriodStart(change.PeriodStart)
			}
			if !change.PeriodEnd.IsZero() {
				create.SetCurrentPeriodEnd(change.PeriodEnd)
			}
			return create.Exec(ctx)
		}

		tr.From = sub.Status
		update := tx.Subscription.UpdateOne(sub).SetStatus(status)
		if newPlan != nil {
			update.SetPlanID(newPlan.ID)
		}
		if change.CustomerID != "" {
			update.SetStripeCustomerID(change.CustomerID)
		}
		if change.SubscriptionID != "" {
			update.SetStripeSubscriptionID(change.SubscriptionID)
		}
		if !change.PeriodStart.IsZero() {
			update.SetCurrentPeriodStart(change.PeriodStart)
		}
		if !change.PeriodEnd.IsZero() {
			update.SetCurrentPeriodEnd(change.PeriodEnd)
		}
		return update.Exec(ctx)
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("Subscription event applied",
		"user_id", userID,
		"subscription_id", change.SubscriptionID,
		"from", tr.From,
		"to", tr.To,
		"deleted", change.Deleted,
	)
	return tr, nil
}

// MarkPastDue flags the subscription after a failed payment. It returns a nil
// Transition when no local row carries subscriptionID.
func (l *Ledger) MarkPastDue(ctx context.Context, subscriptionID string) (*Transition, error) {
	if subscriptionID == "" {
		return nil, nil
	}

	var tr *Transition
	err := l.write(ctx, func(tx *ent.Tx) error {
		q := tx.Subscription.Query().
			Where(subscription.StripeSubscriptionID(subscriptionID)).
			WithUser()
		if l.rowLocks {
			q = q.ForUpdate()
		}
		sub, err := q.Only(ctx)
		if ent.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}

		tr = &Transition{
			UserID: sub.UserID,
			Email:  sub.Edges.User.Email,
			Name:   sub.Edges.User.Name,
			From:   sub.Status,
			To:     subscription.StatusPastDue,
		}
		return tx.Subscription.UpdateOne(sub).
			SetStatus(subscription.StatusPastDue).
			Exec(ctx)
	})
	if err != nil {
		return nil, err
	}

	if tr == nil {
		l.log.Info("Payment failure for unknown subscription ignored", "subscription_id", subscriptionID)
		return nil, nil
	}
	l.log.Info("Subscription marked past due", "user_id", tr.UserID, "subscription_id", subscriptionID)
	return tr, nil
}

// ForUser returns the user's subscription with its plan loaded, or nil if none.
func (l *Ledger) ForUser(ctx context.Context, userID int) (*ent.Subscription, error) {
	sub, err := l.client.Subscription.Query().
		Where(subscription.UserID(userID)).
		WithPlan().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}
	return sub, nil
}

// CountByStatus returns the number of subscriptions per status.
func (l *Ledger) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := l.client.Subscription.Query().
		GroupBy(subscription.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (l *Ledger) resolveUser(ctx context.Context, change SubscriptionChange) (int, error) {
	for _, r := range l.resolvers {
		userID, ok, err := r.Resolve(ctx, change)
		if err != nil {
			return 0, err
		}
		if ok {
			l.log.Debug("Subscription resolved", "strategy", r.Name(), "user_id", userID)
			return userID, nil
		}
	}
	return 0, domain.Wrap(domain.ErrUnresolvableSubscription,
		fmt.Errorf("subscription %q customer %q", change.SubscriptionID, change.CustomerID))
}

// targetStatus picks the status to write. Deletion always wins; an event without
// a status keeps what is stored.
func targetStatus(change SubscriptionChange, current *ent.Subscription) subscription.Status {
	switch {
	case change.Deleted:
		return subscription.StatusCanceled
	case change.Status != "":
		return NormalizeStatus(change.Status)
	case current != nil:
		return current.Status
	default:
		return subscription.StatusTrialing
	}
}

func (l *Ledger) lockedRow(ctx context.Context, tx *ent.Tx, userID int) (*ent.Subscription, error) {
	q := tx.Subscription.Query().Where(subscription.UserID(userID))
	if l.rowLocks {
		q = q.ForUpdate()
	}
	sub, err := q.Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	return sub, err
}

// write runs fn in a transaction. Two writers can both see no row for a user and
// race to create it; the loser hits the unique user_id index and is retried once,
// at which point it finds the winner's row.
func (l *Ledger) write(ctx context.Context, fn func(tx *ent.Tx) error) error {
	err := l.withTx(ctx, fn)
	if ent.IsConstraintError(err) {
		l.log.Debug("Subscription write conflicted, retrying", "error", err)
		err = l.withTx(ctx, fn)
	}
	if err == nil {
		return nil
	}

	var de *domain.DomainError
	if errors.As(err, &de) {
		return err
	}
	return domain.StoreUnavailable(err)
}

func (l *Ledger) withTx(ctx context.Context, fn func(tx *ent.Tx) error) (err error) {
	tx, err := l.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
