package testdata

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/brianvoe/gofakeit/v6"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/enttest"
	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/pkg/auth"
)

// OpenDB returns a migrated in-memory SQLite client private to the test.
// The pool is pinned to one connection so SQLite never reports a locked database
// while concurrent callers wait their turn.
func OpenDB(t *testing.T) *ent.Client {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(entsql.OpenDB(dialect.SQLite, db))))
	t.Cleanup(func() { client.Close() })
	return client
}

// UserOption customises CreateUser.
type UserOption func(*ent.UserCreate)

// WithEmail pins the user's email.
func WithEmail(email string) UserOption {
	return func(c *ent.UserCreate) { c.SetEmail(email) }
}

// WithAPIKey gives the user an API key. The hash is stored, as in production.
func WithAPIKey(key string) UserOption {
	return func(c *ent.UserCreate) { c.SetAPIKey(auth.HashAPIKey(key)) }
}

// CreateUser inserts a user with fake identity data.
func CreateUser(t *testing.T, client *ent.Client, opts ...UserOption) *ent.User {
	t.Helper()

	create := client.User.Create().
		SetEmail(strings.ToLower(gofakeit.Email())).
		SetName(gofakeit.Name())
	for _, opt := range opts {
		opt(create)
	}

	u, err := create.Save(context.Background())
	require.NoError(t, err)
	return u
}

// PlanSpec describes a plan fixture.
type PlanSpec struct {
	Name         string
	Price        float64
	DailyLimit   int
	MaxDuration  int
	MaxSteps     int
	CanUseAPI    bool
	CanDownload  bool
	CanEditAudio bool
	PriceID      string
	Active       bool
	SortOrder    int
}

// FreePlan mirrors the seeded free tier.
func FreePlan() PlanSpec {
	return PlanSpec{Name: "free", DailyLimit: 20, MaxDuration: 30, MaxSteps: 200, CanDownload: true, Active: true, SortOrder: 1}
}

// ProPlan mirrors the seeded pro tier.
func ProPlan() PlanSpec {
	return PlanSpec{
		Name: "pro", Price: 9.99, DailyLimit: 100, MaxDuration: 60, MaxSteps: 300,
		CanUseAPI: true, CanDownload: true, CanEditAudio: true,
		PriceID: "price_pro_monthly", Active: true, SortOrder: 2,
	}
}

// CreatePlan inserts a plan.
func CreatePlan(t *testing.T, client *ent.Client, spec PlanSpec) *ent.Plan {
	t.Helper()

	create := client.Plan.Create().
		SetName(spec.Name).
		SetDisplayName(strings.ToUpper(spec.Name[:1]) + spec.Name[1:]).
		SetDescription(gofakeit.Sentence(8)).
		SetPrice(spec.Price).
		SetDailyAudioLimit(spec.DailyLimit).
		SetMaxAudioDuration(spec.MaxDuration).
		SetMaxSteps(spec.MaxSteps).
		SetCanUseAPI(spec.CanUseAPI).
		SetCanDownload(spec.CanDownload).
		SetCanEditAudio(spec.CanEditAudio).
		SetIsActive(spec.Active).
		SetSortOrder(spec.SortOrder)
	if spec.PriceID != "" {
		create.SetStripePriceID(spec.PriceID)
	}

	p, err := create.Save(context.Background())
	require.NoError(t, err)
	return p
}

// SubscriptionSpec describes a subscription fixture.
type SubscriptionSpec struct {
	Plan           *ent.Plan
	Status         subscription.Status
	CustomerID     string
	SubscriptionID string
	PeriodEnd      time.Time
}

// CreateSubscription inserts a subscription for user.
func CreateSubscription(t *testing.T, client *ent.Client, user *ent.User, spec SubscriptionSpec) *ent.Subscription {
	t.Helper()

	create := client.Subscription.Create().
		SetUserID(user.ID).
		SetStatus(spec.Status)
	if spec.Plan != nil {
		create.SetPlanID(spec.Plan.ID)
	}
	if spec.CustomerID != "" {
		create.SetStripeCustomerID(spec.CustomerID)
	}
	if spec.SubscriptionID != "" {
		create.SetStripeSubscriptionID(spec.SubscriptionID)
	}
	if !spec.PeriodEnd.IsZero() {
		create.SetCurrentPeriodEnd(spec.PeriodEnd)
	}

	s, err := create.Save(context.Background())
	require.NoError(t, err)
	return s
}

// CustomerID returns a fake provider customer ID.
func CustomerID() string {
	return "cus_" + gofakeit.LetterN(14)
}

// SubscriptionID returns a fake provider subscription ID.
func SubscriptionID() string {
	return "sub_" + gofakeit.LetterN(14)
}
