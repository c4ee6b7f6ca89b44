// Package jobs provides scheduled background tasks for the point-of-sale
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. KitchenProgressJob - Ticks the kitchen simulator on a fixed interval:
// live orders decay their time estimate, advance through stations, and ready
// orders migrate into the archive.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceKitchenHandler, tickSeconds, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The kitchen progress job logs tick failures and keeps running; a failed
// tick only delays the simulation until the next interval.
package jobs
