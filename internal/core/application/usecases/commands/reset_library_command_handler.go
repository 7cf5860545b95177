package commands

import (
	"context"
	"log/slog"

	"library/internal/core/domain/model/library"
	"library/internal/core/ports"
)

// ResetLibraryCommandHandler empties the library.
type ResetLibraryCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewResetLibraryCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ResetLibraryCommandHandler {
	return ResetLibraryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "reset_library_handler"),
	}
}

// Handle saves a fresh library in place of the stored one and returns the
// summary of what was discarded. The old catalog copies are released only
// after the commit.
func (h ResetLibraryCommandHandler) Handle(ctx context.Context, command ResetLibraryCommand) (library.Summary, error) {
	if err := command.Validate(); err != nil {
		return library.Summary{}, err
	}

	var old *library.Library
	err := inUnitOfWork(ctx, h.uowFactory, func(ctx context.Context, repo ports.LibraryRepository) error {
		lib, err := repo.Get(ctx)
		if err != nil {
			return err
		}
		if err = repo.Save(ctx, library.New()); err != nil {
			return err
		}
		old = lib
		return nil
	})
	if err != nil {
		return library.Summary{}, err
	}

	discarded := old.Summary()
	old.Release()

	h.logger.InfoContext(ctx, "Library reset",
		"books", discarded.Books,
		"members", discarded.Members,
		"loans", discarded.Loans,
	)

	return discarded, nil
}
