// Package jobs provides scheduled background tasks, implemented with
// github.com/robfig/cron/v3 and coordinated through JobManager.
package jobs

import (
	"fmt"

	"ordertrack/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatsJob *OrderStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(getOrdersHandler queries.GetOrdersQueryHandler, logger *zap.Logger) *JobManager {
	return &JobManager{
		orderStatsJob: NewOrderStatsJob(getOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
}
