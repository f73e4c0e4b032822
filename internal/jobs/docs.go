// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order fulfillment engine.
//
// # Available Jobs
//
// 1. OrderRollupJob - Runs every minute to repair orders whose stored status
// or total diverged from their groups
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The rollup job uses the cron expression "* * * * *" (every minute). Group
// transitions reconcile the parent order inline, so the sweep is a safety
// net rather than the primary path and a minute of lag is acceptable.
//
// # Error Handling
//
// - Rollup failures are logged and retried on the next tick
// - A failed job start stops any already running jobs
package jobs
