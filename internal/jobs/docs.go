// Package jobs provides scheduled background tasks for the store.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep the on-disk snapshot archive current.
//
// # Available Jobs
//
// 1. AutosaveJob - Periodically snapshots every collection to the archive
// 2. RetentionJob - Runs daily to prune snapshots past the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(archive, manager, registry, customerLedger,
//		interval, retentionDays, logger)
//	if err != nil {
//		log.Fatal("Failed to build jobs:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The autosave job uses an @every expression derived from the configured
// interval; intervals under ten seconds are rejected to keep the archive
// from flooding the disk. The retention job runs once a day at 03:00.
//
// # Error Handling
//
// - Snapshot and prune failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
