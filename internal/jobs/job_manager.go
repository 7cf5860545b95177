package jobs

import (
	"fmt"
	"log/slog"

	"library/internal/core/application/usecases/queries"
	"library/internal/core/domain/model/kernel"
)

// Schedules holds the cron expressions of the jobs.
type Schedules struct {
	OverdueReport string
	StatusReport  string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueLoansJob  *OverdueLoansJob
	libraryStatusJob *LibraryStatusJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueLoansHandler queries.GetOverdueLoansQueryHandler,
	summaryHandler queries.GetLibrarySummaryQueryHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueLoansJob:  NewOverdueLoansJob(overdueLoansHandler, schedules.OverdueReport, kernel.Today, logger),
		libraryStatusJob: NewLibraryStatusJob(summaryHandler, schedules.StatusReport, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueLoansJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue loans job: %w", err)
	}

	if err := jm.libraryStatusJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.overdueLoansJob.Stop()
		return fmt.Errorf("failed to start library status job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.libraryStatusJob.Stop()
	jm.overdueLoansJob.Stop()
}
