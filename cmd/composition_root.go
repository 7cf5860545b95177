package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "library/internal/adapters/in/http"
	"library/internal/adapters/out/memory"
	"library/internal/core/application/usecases/commands"
	"library/internal/core/application/usecases/queries"
	"library/internal/core/domain/model/library"
	"library/internal/jobs"

	"github.com/labstack/echo/v4"
)

// CompositionRoot wires the use cases, the HTTP adapter and the jobs around one
// in-memory library.
type CompositionRoot struct {
	config     Config
	uowFactory *memory.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot starts from an empty library.
func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		uowFactory: memory.NewUnitOfWorkFactory(memory.NewStore(library.New())),
		logger:     logger,
	}
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// CreateAddBookCommandHandler builds the handler behind POST /api/v1/books.
func (c *CompositionRoot) CreateAddBookCommandHandler() commands.AddBookCommandHandler {
	return commands.NewAddBookCommandHandler(c.commandUoWFactory())
}

// CreateAddMemberCommandHandler builds the handler behind POST /api/v1/members.
func (c *CompositionRoot) CreateAddMemberCommandHandler() commands.AddMemberCommandHandler {
	return commands.NewAddMemberCommandHandler(c.commandUoWFactory())
}

// CreateLoanBookCommandHandler builds the handler behind POST /api/v1/loans.
func (c *CompositionRoot) CreateLoanBookCommandHandler() commands.LoanBookCommandHandler {
	return commands.NewLoanBookCommandHandler(c.commandUoWFactory(), c.logger)
}

// CreateReturnBookCommandHandler builds the handler behind POST /api/v1/loans/return.
func (c *CompositionRoot) CreateReturnBookCommandHandler() commands.ReturnBookCommandHandler {
	return commands.NewReturnBookCommandHandler(c.commandUoWFactory(), c.logger)
}

// CreateResetLibraryCommandHandler builds the handler behind DELETE /api/v1/library.
func (c *CompositionRoot) CreateResetLibraryCommandHandler() commands.ResetLibraryCommandHandler {
	return commands.NewResetLibraryCommandHandler(c.commandUoWFactory(), c.logger)
}

// CreateGetBookAvailabilityQueryHandler builds the availability lookup.
func (c *CompositionRoot) CreateGetBookAvailabilityQueryHandler() queries.GetBookAvailabilityQueryHandler {
	return queries.NewGetBookAvailabilityQueryHandler(c.uowFactory)
}

// CreateFindBooksByAuthorQueryHandler builds the author search.
func (c *CompositionRoot) CreateFindBooksByAuthorQueryHandler() queries.FindBooksByAuthorQueryHandler {
	return queries.NewFindBooksByAuthorQueryHandler(c.uowFactory)
}

// CreateGetMemberLoansQueryHandler builds the member's loan history lookup.
func (c *CompositionRoot) CreateGetMemberLoansQueryHandler() queries.GetMemberLoansQueryHandler {
	return queries.NewGetMemberLoansQueryHandler(c.uowFactory)
}

// CreateGetOverdueLoansQueryHandler is shared by the HTTP server and the overdue report job.
func (c *CompositionRoot) CreateGetOverdueLoansQueryHandler() queries.GetOverdueLoansQueryHandler {
	return queries.NewGetOverdueLoansQueryHandler(c.uowFactory)
}

// CreateGetLibrarySummaryQueryHandler is shared by the HTTP server and the status report job.
func (c *CompositionRoot) CreateGetLibrarySummaryQueryHandler() queries.GetLibrarySummaryQueryHandler {
	return queries.NewGetLibrarySummaryQueryHandler(c.uowFactory)
}

// CreateListLoansQueryHandler builds the loan history listing.
func (c *CompositionRoot) CreateListLoansQueryHandler() queries.ListLoansQueryHandler {
	return queries.NewListLoansQueryHandler(c.uowFactory)
}

// CreateGetLoanQueryHandler builds the loan lookup by id.
func (c *CompositionRoot) CreateGetLoanQueryHandler() queries.GetLoanQueryHandler {
	return queries.NewGetLoanQueryHandler(c.uowFactory)
}

// CreateListMembersQueryHandler builds the member listing.
func (c *CompositionRoot) CreateListMembersQueryHandler() queries.ListMembersQueryHandler {
	return queries.NewListMembersQueryHandler(c.uowFactory)
}

// CreateServer wires every handler into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateAddBookCommandHandler(),
		c.CreateAddMemberCommandHandler(),
		c.CreateLoanBookCommandHandler(),
		c.CreateReturnBookCommandHandler(),
		c.CreateResetLibraryCommandHandler(),
		c.CreateGetBookAvailabilityQueryHandler(),
		c.CreateFindBooksByAuthorQueryHandler(),
		c.CreateGetMemberLoansQueryHandler(),
		c.CreateGetOverdueLoansQueryHandler(),
		c.CreateGetLibrarySummaryQueryHandler(),
		c.CreateListLoansQueryHandler(),
		c.CreateGetLoanQueryHandler(),
		c.CreateListMembersQueryHandler(),
		c.logger,
	)
}

// CreateRouter returns the echo instance serving the API, the OpenAPI document and Swagger UI.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	return httpin.NewRouter(ctx, c.CreateServer(), c.logger)
}

// CreateJobManager schedules the overdue and status reports from the config.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOverdueLoansQueryHandler(),
		c.CreateGetLibrarySummaryQueryHandler(),
		jobs.Schedules{
			OverdueReport: c.config.OverdueReportSchedule,
			StatusReport:  c.config.StatusReportSchedule,
		},
		c.logger,
	)
}

// SeedDemoData loads the demo catalogue: three Bulgarian classics and two members.
func (c *CompositionRoot) SeedDemoData(ctx context.Context) error {
	addBook := c.CreateAddBookCommandHandler()
	addMember := c.CreateAddMemberCommandHandler()

	books := []struct {
		title      string
		authorName string
		birthYear  int
		year       int
		price      float64
		isbn       string
	}{
		{"Pod igoto", "Ivan Vazov", 1850, 1894, 25.50, "ISBN-001"},
		{"Nema zemya", "Ivan Vazov", 1850, 1900, 18.90, "ISBN-002"},
		{"Bai Ganyo", "Aleko Konstantinov", 1863, 1895, 15.00, "ISBN-003"},
	}
	for _, b := range books {
		cmd, err := commands.NewAddBookCommand(b.title, b.authorName, b.birthYear, b.year, b.price, b.isbn)
		if err != nil {
			return fmt.Errorf("seed book %s: %w", b.isbn, err)
		}
		if err = addBook.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed book %s: %w", b.isbn, err)
		}
	}

	members := []struct {
		name       string
		memberID   string
		yearJoined int
	}{
		{"Petar Petrov", "M001", 2023},
		{"Maria Ivanova", "M002", 2024},
	}
	for _, m := range members {
		if _, err := addMember.Handle(ctx, commands.NewAddMemberCommand(m.name, m.memberID, m.yearJoined)); err != nil {
			return fmt.Errorf("seed member %s: %w", m.memberID, err)
		}
	}

	c.logger.InfoContext(ctx, "Demo data loaded", "books", len(books), "members", len(members))
	return nil
}

// FuncUoWFactory adapts a function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
