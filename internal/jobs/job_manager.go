package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"frontdash/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleOrderWatchdog *StaleOrderWatchdog
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	staleOrderThreshold time.Duration,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		staleOrderWatchdog: NewStaleOrderWatchdog(getOrdersByStatusHandler, staleOrderThreshold, logger),
	}
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderWatchdog.Start(); err != nil {
		return fmt.Errorf("failed to start stale order watchdog: %w", err)
	}
	return nil
}

// StopAll stops every scheduled job gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderWatchdog.Stop()
}
