// Package commands contains the use cases that change the library.
// Every command follows the same pattern: constructor validation, a unit of work
// around the aggregate, and a commit only when the aggregate accepted the change.
package commands

import (
	"context"

	"library/internal/core/ports"
)

// Unit of Work interfaces used by the command handlers.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LibraryRepoFactory provides the library repository bound to the unit of work.
	LibraryRepoFactory interface {
		LibraryRepository() ports.LibraryRepository
	}

	// UoW is what a command handler needs for one execution.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   lib, err := uow.LibraryRepository().Get(ctx)
	//   // ... change lib
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		LibraryRepoFactory
	}

	// UoWFactory creates a fresh UoW per command.
	UoWFactory interface {
		Create() UoW
	}
)

// inUnitOfWork runs change against the library and commits when it succeeds.
func inUnitOfWork(
	ctx context.Context,
	factory UoWFactory,
	change func(ctx context.Context, repo ports.LibraryRepository) error,
) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := change(ctx, uow.LibraryRepository()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
