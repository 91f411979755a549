package quota

import (
	"context"
	"fmt"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/logger"
	"github.com/audiomint/backend/pkg/metrics"
	"github.com/audiomint/backend/pkg/plans"
)

// SubscriptionReader loads a user's subscription, nil when they have none.
type SubscriptionReader interface {
	ForUser(ctx context.Context, userID int) (*ent.Subscription, error)
}

// LimitResolver turns a subscription into effective limits. It must not fail.
type LimitResolver interface {
	LimitsFor(ctx context.Context, sub *ent.Subscription) plans.Limits
}

// Request is what a caller asks to generate.
type Request struct {
	Duration int
	Steps    int
	ViaAPI   bool
}

// Admission is a granted request together with the numbers it was judged on.
type Admission struct {
	Limits       plans.Limits
	CurrentUsage int
	Remaining    int
}

// Denial is returned by Authorize when a request is refused. errors.Is matches it
// against the domain sentinel in Reason.
type Denial struct {
	Reason       *domain.DomainError
	CurrentUsage int
	DailyLimit   int
	Remaining    int
	Requested    int
	Max          int
}

func (d *Denial) Error() string {
	switch d.Reason.Code {
	case domain.ErrCodeQuotaExceeded:
		return fmt.Sprintf("daily generation limit reached (%d/%d)", d.CurrentUsage, d.DailyLimit)
	case domain.ErrCodeDurationExceeded:
		return fmt.Sprintf("duration %ds exceeds plan maximum of %ds", d.Requested, d.Max)
	case domain.ErrCodeStepsExceeded:
		return fmt.Sprintf("%d steps exceeds plan maximum of %d", d.Requested, d.Max)
	default:
		return d.Reason.Message
	}
}

func (d *Denial) Unwrap() error {
	return d.Reason
}

// Gate decides whether a generation may start and charges it once it finished.
// Admission and charging are separate, so concurrent requests admitted on the
// same reading can overshoot the limit by at most the number in flight minus one.
type Gate struct {
	store  *Store
	subs   SubscriptionReader
	limits LimitResolver
	log    logger.Logger
	m      *metrics.Metrics
}

// NewGate wires a gate.
func NewGate(store *Store, subs SubscriptionReader, limits LimitResolver, log logger.Logger, m *metrics.Metrics) *Gate {
	if log == nil {
		log = logger.Nop()
	}
	return &Gate{
		store:  store,
		subs:   subs,
		limits: limits,
		log:    log.With("component", "quota_gate"),
		m:      m,
	}
}

// Authorize checks quota, duration, steps and API capability in that order.
func (g *Gate) Authorize(ctx context.Context, userID int, req Request) (*Admission, error) {
	usage, err := g.store.Today(ctx, userID)
	if err != nil {
		g.m.RecordQuotaDecision("store_unavailable")
		return nil, err
	}

	limits, err := g.LimitsForUser(ctx, userID)
	if err != nil {
		g.m.RecordQuotaDecision("store_unavailable")
		return nil, err
	}

	current := usage.AudioGenerations
	remaining := limits.DailyLimit - current
	if remaining < 0 {
		remaining = 0
	}

	var denial *Denial
	switch {
	case current >= limits.DailyLimit:
		denial = &Denial{Reason: domain.ErrQuotaExceeded}
	case req.Duration > limits.MaxDuration:
		denial = &Denial{Reason: domain.ErrDurationExceeded, Requested: req.Duration, Max: limits.MaxDuration}
	case req.Steps > limits.MaxSteps:
		denial = &Denial{Reason: domain.ErrStepsExceeded, Requested: req.Steps, Max: limits.MaxSteps}
	case req.ViaAPI && !limits.CanUseAPI:
		denial = &Denial{Reason: domain.ErrAPIAccessDenied}
	}

	if denial != nil {
		denial.CurrentUsage = current
		denial.DailyLimit = limits.DailyLimit
		denial.Remaining = remaining
		g.m.RecordQuotaDecision(denial.Reason.Code)
		g.log.Debug("Generation denied", "user_id", userID, "reason", denial.Reason.Code,
			"current_usage", current, "daily_limit", limits.DailyLimit)
		return nil, denial
	}

	g.m.RecordQuotaDecision("admitted")
	return &Admission{Limits: limits, CurrentUsage: current, Remaining: remaining}, nil
}

// RecordUsage charges a finished generation. Call it only after the generation
// succeeded; the returned row reflects the increment.
func (g *Gate) RecordUsage(ctx context.Context, userID, seconds int) (*ent.UsageLog, error) {
	row, err := g.store.AddGeneration(ctx, userID, seconds)
	if err != nil {
		g.log.Error("Failed to record usage", "user_id", userID, "seconds", seconds, "error", err)
		return nil, err
	}
	g.m.RecordAudioSeconds(seconds)
	return row, nil
}

// RecordAPICall counts a programmatic request.
func (g *Gate) RecordAPICall(ctx context.Context, userID int) error {
	if err := g.store.AddAPICall(ctx, userID); err != nil {
		g.log.Error("Failed to record API call", "user_id", userID, "error", err)
		return err
	}
	return nil
}

// LimitsForUser resolves the user's effective limits.
func (g *Gate) LimitsForUser(ctx context.Context, userID int) (plans.Limits, error) {
	sub, err := g.subs.ForUser(ctx, userID)
	if err != nil {
		return plans.Limits{}, err
	}
	return g.limits.LimitsFor(ctx, sub), nil
}

// LimitsFor resolves limits for a subscription the caller already loaded.
func (g *Gate) LimitsFor(ctx context.Context, sub *ent.Subscription) plans.Limits {
	return g.limits.LimitsFor(ctx, sub)
}

// Usage returns today's counters for the user. It never writes.
func (g *Gate) Usage(ctx context.Context, userID int) (*ent.UsageLog, error) {
	return g.store.Peek(ctx, userID)
}

// History returns up to days usage rows, newest first.
func (g *Gate) History(ctx context.Context, userID, days int) ([]*ent.UsageLog, error) {
	return g.store.History(ctx, userID, days)
}
