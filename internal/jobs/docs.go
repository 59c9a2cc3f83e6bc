// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs run on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// 1. SessionExpiryJob - drops ordering sessions nobody touched for longer
// than the configured idle timeout
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(expireHandler, jobs.Config{
//		SessionIdleTimeout:   30 * time.Minute,
//		SessionSweepSchedule: "0 * * * * *",
//	}, m, logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed runs are logged and retried on the next tick. Failed job starts
// stop any already running jobs.
package jobs
