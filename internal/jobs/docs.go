// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the order lifecycle.
//
// # Available Jobs
//
// 1. AutoDispatchJob - Runs every second to match confirmed orders with available drivers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(autoAssignHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job ignores expected business outcomes (no confirmed orders,
// no available drivers) and logs everything else as a system issue.
package jobs
