// Package memory provides the in-process implementation of the Unit of Work
// pattern over the Library aggregate.
//
// The process keeps exactly one Library in a Store. A UnitOfWork takes the
// store's lock in Begin and gives it back in Commit or Rollback, so every command
// and query sees the aggregate alone. This is what keeps LoanBook's
// availability check and the append of the new loan atomic when HTTP requests
// and scheduled jobs run concurrently.
//
// Usage:
//
//	factory := memory.NewUnitOfWorkFactory(memory.NewStore(library.New()))
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	lib, err := uow.LibraryRepository().Get(ctx)
//	if err != nil {
//	    return err
//	}
//	if _, err = lib.LoanBook(isbn, memberID, start, due); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// The aggregate is changed in place. Rollback therefore only releases the lock;
// this is sound because the Library never applies part of a failed operation.
package memory

import (
	"context"
	"errors"

	"library/internal/adapters/out/memory/libraryrepo"
	"library/internal/core/ports"
)

// ErrUnitOfWorkIsNotOpen is returned by Commit when Begin was not called.
var ErrUnitOfWorkIsNotOpen = errors.New("unit of work is not open")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a closed unit of work. Each use case needs its own instance.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork serializes access to the Store. A single instance must not be
// shared between goroutines.
type UnitOfWork struct {
	store *Store
	open  bool
}

// Begin waits for the store lock. Calling Begin on an open unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.open {
		return nil
	}

	select {
	case uow.store.lock <- struct{}{}:
		uow.open = true
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.open {
		return ErrUnitOfWorkIsNotOpen
	}

	uow.release()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.open {
		uow.release()
	}
	return nil
}

// IsOpen reports whether Begin succeeded and the unit of work is not finished yet.
func (uow *UnitOfWork) IsOpen() bool {
	return uow.open
}

func (uow *UnitOfWork) LibraryRepository() ports.LibraryRepository {
	return libraryrepo.NewRepository(uow.store, uow)
}

func (uow *UnitOfWork) release() {
	uow.open = false
	<-uow.store.lock
}
