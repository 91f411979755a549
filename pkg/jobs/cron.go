package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/pkg/logger"
	"github.com/audiomint/backend/pkg/metrics"
)

// SubscriptionCounter reports how many subscriptions sit in each status.
type SubscriptionCounter interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// PlanCache is the plan catalog's cache surface.
type PlanCache interface {
	Purge()
	ActivePlans(ctx context.Context) ([]*ent.Plan, error)
}

// PoolStats exposes database pool statistics.
type PoolStats interface {
	Stats() sql.DBStats
}

// CronManager manages scheduled jobs
type CronManager struct {
	cron  *cron.Cron
	subs  SubscriptionCounter
	plans PlanCache
	pool  PoolStats
	m     *metrics.Metrics
	log   logger.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(subs SubscriptionCounter, plans PlanCache, pool PoolStats, m *metrics.Metrics, log logger.Logger) *CronManager {
	if log == nil {
		log = logger.Nop()
	}

	return &CronManager{
		cron:  cron.New(),
		subs:  subs,
		plans: plans,
		pool:  pool,
		m:     m,
		log:   log.With("component", "cron"),
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	jobs := []struct {
		spec string
		name string
		run  func()
	}{
		{spec: "*/5 * * * *", name: "subscription gauge", run: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := cm.RefreshSubscriptionGauge(ctx); err != nil {
				cm.log.Error("❌ Failed to refresh subscription gauge", "error", err)
			}
		}},
		{spec: "*/15 * * * *", name: "plan cache refresh", run: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := cm.RefreshPlanCache(ctx); err != nil {
				cm.log.Error("❌ Failed to refresh plan cache", "error", err)
			}
		}},
		{spec: "* * * * *", name: "pool stats", run: cm.RecordPoolStats},
	}

	for _, j := range jobs {
		if _, err := cm.cron.AddFunc(j.spec, j.run); err != nil {
			return fmt.Errorf("schedule %s: %w", j.name, err)
		}
		cm.log.Info("Cron job scheduled", "job", j.name, "spec", j.spec)
	}
	return nil
}

// RefreshSubscriptionGauge republishes the per-status subscription counts.
func (cm *CronManager) RefreshSubscriptionGauge(ctx context.Context) error {
	counts, err := cm.subs.CountByStatus(ctx)
	if err != nil {
		return err
	}
	cm.m.SetSubscriptionCounts(counts)
	cm.log.Debug("Subscription gauge refreshed", "statuses", len(counts))
	return nil
}

// RefreshPlanCache drops cached plans and reloads the active list, so edits made
// directly in the database show up without a restart.
func (cm *CronManager) RefreshPlanCache(ctx context.Context) error {
	cm.plans.Purge()
	list, err := cm.plans.ActivePlans(ctx)
	if err != nil {
		return err
	}
	cm.log.Debug("Plan cache refreshed", "active_plans", len(list))
	return nil
}

// RecordPoolStats publishes the number of open database connections.
func (cm *CronManager) RecordPoolStats() {
	if cm.pool == nil {
		return
	}
	cm.m.UpdateDBConnections(float64(cm.pool.Stats().InUse))
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.log.Info("🚀 Starting cron scheduler")
	cm.cron.Start()
}

// Stop stops the scheduler and waits for running jobs until ctx expires.
func (cm *CronManager) Stop(ctx context.Context) {
	cm.log.Info("🛑 Stopping cron scheduler")
	select {
	case <-cm.cron.Stop().Done():
	case <-ctx.Done():
		cm.log.Warn("Cron jobs still running at shutdown")
	}
}
