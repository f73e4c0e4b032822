package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/application/usecases/commands"
)

// OrderRollupJob periodically repairs orders whose stored status or total has
// drifted from their groups. Group transitions reconcile the parent order in
// the same transaction, so this sweep only catches writers that crashed
// between the group write and the parent write.
type OrderRollupJob struct {
	handler commands.ReconcileOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderRollupJob creates a job that runs the rollup sweep every minute.
func NewOrderRollupJob(handler commands.ReconcileOrdersCommandHandler, logger *slog.Logger) *OrderRollupJob {
	return &OrderRollupJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_rollup_job"),
	}
}

// Start schedules the rollup sweep to run every minute.
func (j *OrderRollupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order rollup sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order rollup job started (running every minute)")
	return nil
}

// Stop stops the rollup job.
func (j *OrderRollupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order rollup job stopped")
}
