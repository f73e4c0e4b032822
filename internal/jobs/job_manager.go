package jobs

import (
	"fmt"
	"log/slog"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderRollupJob *OrderRollupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reconcileOrdersHandler commands.ReconcileOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderRollupJob: NewOrderRollupJob(reconcileOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderRollupJob.Start(); err != nil {
		return fmt.Errorf("failed to start order rollup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderRollupJob.Stop()
}
