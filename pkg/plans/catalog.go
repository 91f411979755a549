package plans

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/plan"
	"github.com/audiomint/backend/pkg/logger"
	"github.com/audiomint/backend/pkg/metrics"
	"github.com/audiomint/backend/pkg/subscriptions"
)

// Source tells which tier of the fallback chain produced a Limits value.
type Source string

const (
	SourcePlan     Source = "plan"
	SourceDefault  Source = "default"
	SourceFallback Source = "fallback"
)

// Limits is the effective entitlement set for one user.
type Limits struct {
	PlanID       int    `json:"plan_id,omitempty"`
	PlanName     string `json:"plan_name"`
	DailyLimit   int    `json:"daily_limit"`
	MaxDuration  int    `json:"max_duration"`
	MaxSteps     int    `json:"max_steps"`
	CanUseAPI    bool   `json:"can_use_api"`
	CanDownload  bool   `json:"can_download"`
	CanEditAudio bool   `json:"can_edit_audio"`
	Source       Source `json:"source"`
}

// FallbackLimits applies when neither the user's plan nor a default plan can be loaded.
var FallbackLimits = Limits{
	PlanName:     "free",
	DailyLimit:   20,
	MaxDuration:  30,
	MaxSteps:     200,
	CanDownload:  true,
	CanUseAPI:    false,
	CanEditAudio: false,
	Source:       SourceFallback,
}

const (
	defaultCacheSize = 256
	cacheName        = "plans"
	keyDefault       = "default"
	keyActive        = "active"
)

// Catalog is a read-through cache over the plans table. Plans are immutable from
// the engine's point of view, so entries only expire by TTL.
type Catalog struct {
	client *ent.Client
	log    logger.Logger
	m      *metrics.Metrics

	plans  *expirable.LRU[string, *ent.Plan]
	active *expirable.LRU[string, []*ent.Plan]
	group  singleflight.Group
}

// NewCatalog creates a catalog whose entries live for ttl.
func NewCatalog(client *ent.Client, ttl time.Duration, log logger.Logger, m *metrics.Metrics) *Catalog {
	if log == nil {
		log = logger.Nop()
	}
	return &Catalog{
		client: client,
		log:    log.With("component", "plan_catalog"),
		m:      m,
		plans:  expirable.NewLRU[string, *ent.Plan](defaultCacheSize, nil, ttl),
		active: expirable.NewLRU[string, []*ent.Plan](1, nil, ttl),
	}
}

// LimitsFor resolves the limits for a subscription. It never fails: store errors
// are logged and the next tier is tried.
func (c *Catalog) LimitsFor(ctx context.Context, sub *ent.Subscription) Limits {
	if subscriptions.IsActive(sub) && sub.PlanID != nil {
		p := sub.Edges.Plan
		if p == nil {
			var err error
			p, err = c.PlanByID(ctx, *sub.PlanID)
			if err != nil {
				c.log.Warn("Failed to load subscribed plan, using default", "plan_id", *sub.PlanID, "error", err)
			}
		}
		if p != nil {
			return limitsOf(p, SourcePlan)
		}
	}

	p, err := c.DefaultPlan(ctx)
	if err != nil {
		c.log.Warn("Failed to load default plan, using built-in limits", "error", err)
	}
	if p != nil {
		return limitsOf(p, SourceDefault)
	}

	return FallbackLimits
}

// DefaultPlan returns the cheapest active free plan, or nil when none exists.
func (c *Catalog) DefaultPlan(ctx context.Context) (*ent.Plan, error) {
	return c.cached(keyDefault, func() (*ent.Plan, error) {
		return c.client.Plan.Query().
			Where(plan.IsActive(true), plan.Price(0)).
			Order(ent.Asc(plan.FieldSortOrder), ent.Asc(plan.FieldPrice)).
			First(ctx)
	})
}

// PlanByID returns the plan with id, or nil when it does not exist.
func (c *Catalog) PlanByID(ctx context.Context, id int) (*ent.Plan, error) {
	return c.cached(fmt.Sprintf("id:%d", id), func() (*ent.Plan, error) {
		return c.client.Plan.Get(ctx, id)
	})
}

// PlanByPriceID returns the plan sold under priceID, or nil when none matches.
func (c *Catalog) PlanByPriceID(ctx context.Context, priceID string) (*ent.Plan, error) {
	if priceID == "" {
		return nil, nil
	}
	return c.cached("price:"+priceID, func() (*ent.Plan, error) {
		return c.client.Plan.Query().
			Where(plan.StripePriceID(priceID)).
			Only(ctx)
	})
}

// ActivePlans lists purchasable plans in display order.
func (c *Catalog) ActivePlans(ctx context.Context) ([]*ent.Plan, error) {
	if list, ok := c.active.Get(keyActive); ok {
		c.m.RecordCacheHit(cacheName)
		return list, nil
	}
	c.m.RecordCacheMiss(cacheName)

	v, err, _ := c.group.Do(keyActive, func() (interface{}, error) {
		list, err := c.client.Plan.Query().
			Where(plan.IsActive(true)).
			Order(ent.Asc(plan.FieldSortOrder), ent.Asc(plan.FieldPrice)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		c.active.Add(keyActive, list)
		return list, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list active plans: %w", err)
	}
	return v.([]*ent.Plan), nil
}

// Purge drops every cached entry.
func (c *Catalog) Purge() {
	c.plans.Purge()
	c.active.Purge()
}

// cached loads key through the LRU, collapsing concurrent misses. Not-found results
// are cached as nil.
func (c *Catalog) cached(key string, load func() (*ent.Plan, error)) (*ent.Plan, error) {
	if p, ok := c.plans.Get(key); ok {
		c.m.RecordCacheHit(cacheName)
		return p, nil
	}
	c.m.RecordCacheMiss(cacheName)

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		p, err := load()
		if ent.IsNotFound(err) {
			p, err = nil, nil
		}
		if err != nil {
			return nil, err
		}
		c.plans.Add(key, p)
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load plan %s: %w", key, err)
	}
	return v.(*ent.Plan), nil
}

func limitsOf(p *ent.Plan, source Source) Limits {
	return Limits{
		PlanID:       p.ID,
		PlanName:     p.Name,
		DailyLimit:   p.DailyAudioLimit,
		MaxDuration:  p.MaxAudioDuration,
		MaxSteps:     p.MaxSteps,
		CanUseAPI:    p.CanUseAPI,
		CanDownload:  p.CanDownload,
		CanEditAudio: p.CanEditAudio,
		Source:       source,
	}
}
