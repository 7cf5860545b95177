// Package queries contains the read operations of the library.
// Queries return read models copied out of the aggregate, so nothing a caller
// does with the result can reach the stored library.
package queries

import (
	"context"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/library"
	"library/internal/core/domain/model/loan"
	"library/internal/core/ports"
)

// LoanView is the read model of one loan.
type LoanView struct {
	ID        kernel.UUID
	ISBN      string
	MemberID  string
	StartDate kernel.Date
	DueDate   kernel.Date
	Status    string
}

func newLoanViews(loans []*loan.Loan) []LoanView {
	views := make([]LoanView, 0, len(loans))
	for _, ln := range loans {
		views = append(views, LoanView{
			ID:        ln.ID(),
			ISBN:      ln.ISBN(),
			MemberID:  ln.MemberID(),
			StartDate: ln.StartDate(),
			DueDate:   ln.DueDate(),
			Status:    ln.Status().String(),
		})
	}
	return views
}

// readLibrary runs read inside a unit of work. Queries take the same lock as
// commands, so they never observe a half-finished command.
func readLibrary[T any](
	ctx context.Context,
	factory ports.UnitOfWorkFactory,
	read func(lib *library.Library) (T, error),
) (T, error) {
	var zero T

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lib, err := uow.LibraryRepository().Get(ctx)
	if err != nil {
		return zero, err
	}

	result, err := read(lib)
	if err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return result, nil
}
