package commands

import (
	"context"

	"library/internal/core/domain/model/author"
	"library/internal/core/domain/model/book"
	"library/internal/core/ports"
)

// AddBookCommandHandler puts a new book into the catalog.
// A duplicate ISBN is rejected by the aggregate; use library.OutcomeOf to classify the error.
type AddBookCommandHandler struct {
	uowFactory UoWFactory
}

func NewAddBookCommandHandler(uowFactory UoWFactory) AddBookCommandHandler {
	return AddBookCommandHandler{uowFactory: uowFactory}
}

// Handle builds the book from the command and adds it. The handler's own book
// value is released once the library holds its copy.
func (h AddBookCommandHandler) Handle(ctx context.Context, command AddBookCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return inUnitOfWork(ctx, h.uowFactory, func(ctx context.Context, repo ports.LibraryRepository) error {
		lib, err := repo.Get(ctx)
		if err != nil {
			return err
		}

		b := book.New(
			command.Title(),
			author.New(command.AuthorName(), command.AuthorBirthYear()),
			command.Year(),
			command.Price(),
			command.ISBN(),
		)
		defer b.Release()

		return lib.AddBook(b)
	})
}
