// Package jobs provides scheduled background tasks for the back-office
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. OrderSyncJob - Periodically fetches both upstream order sources,
// normalizes the records and refreshes the local snapshot store
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(syncOrdersHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sync job schedule is a six-field cron expression with a seconds
// column, configured through ORDER_SYNC_SCHEDULE (default "*/30 * * * * *").
//
// # Error Handling
//
// A failed sync run is logged and retried on the next tick; a single
// upstream source failing degrades to a partial sync inside the command
// handler rather than failing the run.
package jobs
