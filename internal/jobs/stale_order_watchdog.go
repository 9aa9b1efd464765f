// Package jobs provides scheduled background tasks. Jobs are cron-driven
// via github.com/robfig/cron/v3 and read-only: they surface problems for
// operators instead of mutating orders behind the dispatchers' backs.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"frontdash/internal/core/application/usecases/queries"
	"frontdash/internal/core/domain/model/order"
)

// StaleOrderWatchdog periodically scans for orders that have sat in PENDING
// without a driver for too long and logs them for the dispatch staff.
type StaleOrderWatchdog struct {
	handler   queries.GetOrdersByStatusQueryHandler
	cron      *cron.Cron
	logger    *zap.Logger
	threshold time.Duration
}

// NewStaleOrderWatchdog creates the watchdog. Orders older than threshold
// are reported on every run.
func NewStaleOrderWatchdog(
	handler queries.GetOrdersByStatusQueryHandler,
	threshold time.Duration,
	logger *zap.Logger,
) *StaleOrderWatchdog {
	return &StaleOrderWatchdog{
		handler:   handler,
		cron:      cron.New(),
		logger:    logger.With(zap.String("component", "stale_order_watchdog")),
		threshold: threshold,
	}
}

// Start schedules the watchdog to run every minute.
func (j *StaleOrderWatchdog) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("stale order watchdog started", zap.Duration("threshold", j.threshold))
	return nil
}

// Stop stops the watchdog.
func (j *StaleOrderWatchdog) Stop() {
	j.cron.Stop()
	j.logger.Info("stale order watchdog stopped")
}

func (j *StaleOrderWatchdog) run() {
	ctx := context.Background()

	query, err := queries.NewGetOrdersByStatusQuery(order.StatusPending, queries.WithoutDriver)
	if err != nil {
		j.logger.Error("failed to build stale order query", zap.Error(err))
		return
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.Error("stale order scan failed", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-j.threshold)
	for _, pending := range orders {
		if pending.OrderTime.Before(cutoff) {
			j.logger.Warn("order waiting for a driver",
				zap.String("number", pending.Number),
				zap.Int("restaurant_id", pending.RestaurantID),
				zap.Time("order_time", pending.OrderTime),
			)
		}
	}
}
