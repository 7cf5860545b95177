package jobs

import (
	"context"
	"log/slog"

	"library/internal/core/application/usecases/queries"
	"library/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// OverdueLoansJob reports active loans whose due date has passed.
type OverdueLoansJob struct {
	handler  queries.GetOverdueLoansQueryHandler
	schedule string
	today    func() kernel.Date
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueLoansJob creates the job. schedule is a six-field cron expression
// (seconds first).
func NewOverdueLoansJob(
	handler queries.GetOverdueLoansQueryHandler,
	schedule string,
	today func() kernel.Date,
	logger *slog.Logger,
) *OverdueLoansJob {
	return &OverdueLoansJob{
		handler:  handler,
		schedule: schedule,
		today:    today,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_loans_job"),
	}
}

// Start schedules the report. An invalid schedule is returned as an error.
func (j *OverdueLoansJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue loans report failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue loans job started", "schedule", j.schedule)
	return nil
}

// Run produces one report and returns the number of overdue loans.
func (j *OverdueLoansJob) Run(ctx context.Context) (int, error) {
	today := j.today()

	query, err := queries.NewGetOverdueLoansQuery(today.String())
	if err != nil {
		return 0, err
	}

	loans, err := j.handler.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, ln := range loans {
		j.logger.WarnContext(ctx, "Loan is overdue",
			"loan_id", ln.ID.String(),
			"isbn", ln.ISBN,
			"member_id", ln.MemberID,
			"due_date", ln.DueDate.String(),
		)
	}
	j.logger.InfoContext(ctx, "Overdue loans report", "today", today.String(), "overdue", len(loans))

	return len(loans), nil
}

// Stop stops the scheduler. A report already running is not interrupted.
func (j *OverdueLoansJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue loans job stopped")
}
