package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork for each command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the boundary inside which one use case reads and changes the
// library. While it is open no other unit of work can observe the aggregate,
// which keeps check-then-act sequences such as lending atomic.
type UnitOfWork interface {
	// Begin opens the unit of work, waiting for any other open one to finish
	// or for ctx to be done.
	Begin(ctx context.Context) error

	// Commit closes the unit of work and keeps its changes.
	// Returns error if the unit of work is not open.
	Commit(ctx context.Context) error

	// Rollback closes the unit of work if it is still open. Calling it after
	// Commit is a no-op, so it can be deferred unconditionally.
	Rollback(ctx context.Context) error

	// LibraryRepository returns the repository bound to this unit of work.
	LibraryRepository() LibraryRepository
}
