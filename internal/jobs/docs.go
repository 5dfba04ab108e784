// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules are six-field expressions with a leading seconds field.
//
// # Available Jobs
//
//  1. ReturnsBacklogJob - counts returned orders waiting for a driver slip and
//     for a merchant slip, sets the deliveryops_unclaimed_returns gauge and
//     logs the backlog.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(unclaimedReturnsHandler, cfg.BacklogReportSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing run is logged and the next tick tries again. An invalid schedule
// fails StartAll.
package jobs
