package commands

import (
	"context"
	"log/slog"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/library"
	"library/internal/core/domain/model/loan"
	"library/internal/core/ports"
)

// LoanBookCommandResponse describes the loan that was recorded.
type LoanBookCommandResponse struct {
	LoanID    kernel.UUID
	ISBN      string
	MemberID  string
	StartDate kernel.Date
	DueDate   kernel.Date
}

// LoanBookCommandHandler lends books. The availability check and the append of
// the loan happen inside one unit of work, so two concurrent requests for the
// same ISBN cannot both succeed.
type LoanBookCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewLoanBookCommandHandler(uowFactory UoWFactory, logger *slog.Logger) LoanBookCommandHandler {
	return LoanBookCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "loan_book_handler"),
	}
}

// Handle records the loan. Rejections by the library are logged as warnings and
// returned unchanged, so library.OutcomeOf can classify them.
func (h LoanBookCommandHandler) Handle(ctx context.Context, command LoanBookCommand) (LoanBookCommandResponse, error) {
	if err := command.Validate(); err != nil {
		return LoanBookCommandResponse{}, err
	}

	var created *loan.Loan
	err := inUnitOfWork(ctx, h.uowFactory, func(ctx context.Context, repo ports.LibraryRepository) error {
		lib, err := repo.Get(ctx)
		if err != nil {
			return err
		}

		created, err = lib.LoanBook(command.ISBN(), command.MemberID(), command.StartDate(), command.DueDate())
		return err
	})
	if err != nil {
		if outcome := library.OutcomeOf(err); outcome != library.Unclassified {
			h.logger.WarnContext(ctx, "Loan rejected",
				"outcome", outcome.String(),
				"isbn", command.ISBN(),
				"member_id", command.MemberID(),
				"error", err,
			)
		}
		return LoanBookCommandResponse{}, err
	}

	return LoanBookCommandResponse{
		LoanID:    created.ID(),
		ISBN:      created.ISBN(),
		MemberID:  created.MemberID(),
		StartDate: created.StartDate(),
		DueDate:   created.DueDate(),
	}, nil
}
