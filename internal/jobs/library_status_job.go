package jobs

import (
	"context"
	"log/slog"

	"library/internal/core/application/usecases/queries"
	"library/internal/core/domain/model/library"

	"github.com/robfig/cron/v3"
)

// LibraryStatusJob periodically logs the library's counters.
type LibraryStatusJob struct {
	handler  queries.GetLibrarySummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewLibraryStatusJob(
	handler queries.GetLibrarySummaryQueryHandler,
	schedule string,
	logger *slog.Logger,
) *LibraryStatusJob {
	return &LibraryStatusJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "library_status_job"),
	}
}

func (j *LibraryStatusJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Library status report failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Library status job started", "schedule", j.schedule)
	return nil
}

// Run logs one status line and returns the counters it logged.
func (j *LibraryStatusJob) Run(ctx context.Context) (library.Summary, error) {
	summary, err := j.handler.Handle(ctx, queries.NewGetLibrarySummaryQuery())
	if err != nil {
		return library.Summary{}, err
	}

	j.logger.InfoContext(ctx, "Library status",
		"books", summary.Books,
		"members", summary.Members,
		"loans", summary.Loans,
		"active_loans", summary.ActiveLoans,
		"live_books", summary.LiveBooks,
	)

	return summary, nil
}

func (j *LibraryStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Library status job stopped")
}
