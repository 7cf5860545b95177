package commands

import (
	"context"
	"log/slog"

	"library/internal/core/domain/model/library"
	"library/internal/core/ports"
)

// ReturnBookCommandHandler closes loans.
type ReturnBookCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewReturnBookCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ReturnBookCommandHandler {
	return ReturnBookCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "return_book_handler"),
	}
}

// Handle marks the matching loan returned. library.ErrNoActiveLoan is returned
// (and logged) when the member holds no active loan of the book.
func (h ReturnBookCommandHandler) Handle(ctx context.Context, command ReturnBookCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	err := inUnitOfWork(ctx, h.uowFactory, func(ctx context.Context, repo ports.LibraryRepository) error {
		lib, err := repo.Get(ctx)
		if err != nil {
			return err
		}

		_, err = lib.ReturnBook(command.ISBN(), command.MemberID())
		return err
	})
	if err != nil && library.OutcomeOf(err) == library.NoActiveLoan {
		h.logger.WarnContext(ctx, "Return rejected",
			"isbn", command.ISBN(),
			"member_id", command.MemberID(),
			"error", err,
		)
	}

	return err
}
