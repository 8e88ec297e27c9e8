// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for outbound fulfillment.
//
// # Available Jobs
//
// 1. AllocationJob - Runs every second to allocate stock for approved orders still waiting in Pending
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(allocateNextHandler, logger)
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
// The allocation job uses the cron expression "* * * * * *", meaning it runs
// every second. One order is allocated per tick, so a burst of approvals
// drains gradually instead of hammering the stock tables in one transaction.
//
// # Error Handling
//
// - An empty queue is a quiet tick and is not logged
// - Infeasible allocations (stock reserved by a faster order) are logged at debug level and retried on later ticks
// - Unexpected errors are logged at error level
// - Failed job starts will stop any already running jobs
package jobs
