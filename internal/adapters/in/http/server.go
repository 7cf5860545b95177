package http

import (
	"log/slog"
	"net/http"

	"library/internal/core/application/usecases/commands"
	"library/internal/core/application/usecases/queries"
	"library/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server implements ServerInterface on top of the library use cases.
type Server struct {
	// Command handlers
	addBookHandler    commands.AddBookCommandHandler
	addMemberHandler  commands.AddMemberCommandHandler
	loanBookHandler   commands.LoanBookCommandHandler
	returnBookHandler commands.ReturnBookCommandHandler
	resetHandler      commands.ResetLibraryCommandHandler

	// Query handlers
	bookAvailabilityHandler queries.GetBookAvailabilityQueryHandler
	findBooksHandler        queries.FindBooksByAuthorQueryHandler
	memberLoansHandler      queries.GetMemberLoansQueryHandler
	overdueLoansHandler     queries.GetOverdueLoansQueryHandler
	summaryHandler          queries.GetLibrarySummaryQueryHandler
	listLoansHandler        queries.ListLoansQueryHandler
	loanHandler             queries.GetLoanQueryHandler
	listMembersHandler      queries.ListMembersQueryHandler

	today  func() kernel.Date
	logger *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	addBookHandler commands.AddBookCommandHandler,
	addMemberHandler commands.AddMemberCommandHandler,
	loanBookHandler commands.LoanBookCommandHandler,
	returnBookHandler commands.ReturnBookCommandHandler,
	resetHandler commands.ResetLibraryCommandHandler,
	bookAvailabilityHandler queries.GetBookAvailabilityQueryHandler,
	findBooksHandler queries.FindBooksByAuthorQueryHandler,
	memberLoansHandler queries.GetMemberLoansQueryHandler,
	overdueLoansHandler queries.GetOverdueLoansQueryHandler,
	summaryHandler queries.GetLibrarySummaryQueryHandler,
	listLoansHandler queries.ListLoansQueryHandler,
	loanHandler queries.GetLoanQueryHandler,
	listMembersHandler queries.ListMembersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		addBookHandler:          addBookHandler,
		addMemberHandler:        addMemberHandler,
		loanBookHandler:         loanBookHandler,
		returnBookHandler:       returnBookHandler,
		resetHandler:            resetHandler,
		bookAvailabilityHandler: bookAvailabilityHandler,
		findBooksHandler:        findBooksHandler,
		memberLoansHandler:      memberLoansHandler,
		overdueLoansHandler:     overdueLoansHandler,
		summaryHandler:          summaryHandler,
		listLoansHandler:        listLoansHandler,
		loanHandler:             loanHandler,
		listMembersHandler:      listMembersHandler,
		today:                   kernel.Today,
		logger:                  logger.With("component", "http_server"),
	}
}

// WithClock replaces the source of the default day used by GetOverdueLoans.
func (s *Server) WithClock(today func() kernel.Date) *Server {
	s.today = today
	return s
}

// FindBooks handles GET /api/v1/books.
func (s *Server) FindBooks(ctx echo.Context, params FindBooksParams) error {
	authorSubstring := ""
	if params.Author != nil {
		authorSubstring = *params.Author
	}

	books, err := s.findBooksHandler.Handle(ctx.Request().Context(), queries.NewFindBooksByAuthorQuery(authorSubstring))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	response := make([]Book, len(books))
	for i, b := range books {
		response[i] = Book{
			Title:           b.Title,
			Author:          b.Author,
			AuthorBirthYear: b.AuthorBirthYear,
			Year:            b.Year,
			Price:           b.Price,
			ISBN:            b.ISBN,
			Available:       b.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddBook handles POST /api/v1/books.
func (s *Server) AddBook(ctx echo.Context) error {
	var newBook NewBook
	if err := ctx.Bind(&newBook); err != nil {
		return err
	}

	cmd, err := commands.NewAddBookCommand(
		newBook.Title,
		newBook.Author,
		newBook.AuthorBirthYear,
		newBook.Year,
		newBook.Price,
		newBook.ISBN,
	)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	if err = s.addBookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetBookAvailability handles GET /api/v1/books/{isbn}/availability.
func (s *Server) GetBookAvailability(ctx echo.Context, isbn string) error {
	query, err := queries.NewGetBookAvailabilityQuery(isbn)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	availability, err := s.bookAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, Availability{
		ISBN:       availability.ISBN,
		Catalogued: availability.Catalogued,
		Available:  availability.Available,
	})
}

// ListMembers handles GET /api/v1/members.
func (s *Server) ListMembers(ctx echo.Context) error {
	members, err := s.listMembersHandler.Handle(ctx.Request().Context(), queries.NewListMembersQuery())
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	response := make([]Member, len(members))
	for i, m := range members {
		response[i] = Member{Name: m.Name, MemberID: m.MemberID, YearJoined: m.YearJoined}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMember handles POST /api/v1/members.
func (s *Server) AddMember(ctx echo.Context) error {
	var newMember NewMember
	if err := ctx.Bind(&newMember); err != nil {
		return err
	}

	cmd := commands.NewAddMemberCommand(newMember.Name, newMember.MemberID, newMember.YearJoined)

	memberID, err := s.addMemberHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, MemberRef{MemberID: memberID})
}

// GetMemberLoans handles GET /api/v1/members/{memberId}/loans.
func (s *Server) GetMemberLoans(ctx echo.Context, memberID string) error {
	query, err := queries.NewGetMemberLoansQuery(memberID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	loans, err := s.memberLoansHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toLoans(loans))
}

// ListLoans handles GET /api/v1/loans.
func (s *Server) ListLoans(ctx echo.Context) error {
	loans, err := s.listLoansHandler.Handle(ctx.Request().Context(), queries.NewListLoansQuery())
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toLoans(loans))
}

// LoanBook handles POST /api/v1/loans.
func (s *Server) LoanBook(ctx echo.Context) error {
	var newLoan NewLoan
	if err := ctx.Bind(&newLoan); err != nil {
		return err
	}

	cmd, err := commands.NewLoanBookCommand(newLoan.ISBN, newLoan.MemberID, newLoan.StartDate, newLoan.DueDate)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	loaned, err := s.loanBookHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, Loan{
		ID:        loaned.LoanID.Bytes(),
		ISBN:      loaned.ISBN,
		MemberID:  loaned.MemberID,
		StartDate: loaned.StartDate.String(),
		DueDate:   loaned.DueDate.String(),
		Status:    "ACTIVE",
	})
}

// ReturnBook handles POST /api/v1/loans/return.
func (s *Server) ReturnBook(ctx echo.Context) error {
	var request ReturnRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}

	cmd, err := commands.NewReturnBookCommand(request.ISBN, request.MemberID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	if err = s.returnBookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOverdueLoans handles GET /api/v1/loans/overdue.
func (s *Server) GetOverdueLoans(ctx echo.Context, params GetOverdueLoansParams) error {
	today := s.today().String()
	if params.Today != nil && *params.Today != "" {
		today = *params.Today
	}

	query, err := queries.NewGetOverdueLoansQuery(today)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	loans, err := s.overdueLoansHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toLoans(loans))
}

// GetLoan handles GET /api/v1/loans/{loanId}.
func (s *Server) GetLoan(ctx echo.Context, loanID string) error {
	query, err := queries.NewGetLoanQuery(loanID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	loan, err := s.loanHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toLoans([]queries.LoanView{loan})[0])
}

// GetSummary handles GET /api/v1/summary.
func (s *Server) GetSummary(ctx echo.Context) error {
	summary, err := s.summaryHandler.Handle(ctx.Request().Context(), queries.NewGetLibrarySummaryQuery())
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, Summary{
		Books:             summary.Books,
		Members:           summary.Members,
		Loans:             summary.Loans,
		ActiveLoans:       summary.ActiveLoans,
		LiveBookInstances: summary.LiveBooks,
	})
}

// ResetLibrary handles DELETE /api/v1/library.
func (s *Server) ResetLibrary(ctx echo.Context) error {
	if _, err := s.resetHandler.Handle(ctx.Request().Context(), commands.NewResetLibraryCommand()); err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toLoans(views []queries.LoanView) []Loan {
	loans := make([]Loan, len(views))
	for i, v := range views {
		loans[i] = Loan{
			ID:        v.ID.Bytes(),
			ISBN:      v.ISBN,
			MemberID:  v.MemberID,
			StartDate: v.StartDate.String(),
			DueDate:   v.DueDate.String(),
			Status:    v.Status,
		}
	}
	return loans
}
