// Package libraryrepo implements ports.LibraryRepository on top of the
// in-memory store.
package libraryrepo

import (
	"context"
	"errors"

	"library/internal/core/domain/model/library"
)

// ErrNoOpenUnitOfWork is returned when the repository is used outside Begin/Commit.
var ErrNoOpenUnitOfWork = errors.New("library repository used outside an open unit of work")

type storage interface {
	Load() *library.Library
	Replace(lib *library.Library)
}

type unitOfWork interface {
	IsOpen() bool
}

// Repository reads and replaces the stored aggregate on behalf of one unit of work.
type Repository struct {
	storage storage
	uow     unitOfWork
}

func NewRepository(storage storage, uow unitOfWork) *Repository {
	return &Repository{
		storage: storage,
		uow:     uow,
	}
}

// Get returns the stored library.
func (r *Repository) Get(ctx context.Context) (*library.Library, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}

	lib := r.storage.Load()
	if err := lib.Validate(); err != nil {
		return nil, err
	}

	return lib, nil
}

// Save replaces the stored library with lib.
func (r *Repository) Save(ctx context.Context, lib *library.Library) error {
	if err := r.check(ctx); err != nil {
		return err
	}
	if err := lib.Validate(); err != nil {
		return err
	}

	r.storage.Replace(lib)
	return nil
}

func (r *Repository) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.uow.IsOpen() {
		return ErrNoOpenUnitOfWork
	}
	return nil
}
