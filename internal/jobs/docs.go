// Package jobs provides scheduled background reports for the library.
//
// Jobs are built on github.com/robfig/cron/v3 with six-field expressions
// (seconds first).
//
// # Available Jobs
//
// 1. OverdueLoansJob - logs every active loan whose due date is before the current UTC day
// 2. LibraryStatusJob - logs the library's counters (books, members, loans, live book instances)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(overdueLoansHandler, summaryHandler, jobs.Schedules{
//		OverdueReport: "0 0 * * * *",
//		StatusReport:  "0 */15 * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs only read the library. A failed run is logged and the next run is
// attempted on schedule. Failed job starts stop any already running jobs.
package jobs
