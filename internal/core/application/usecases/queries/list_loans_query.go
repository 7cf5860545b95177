package queries

import (
	"context"
	"errors"

	"library/internal/core/domain/model/library"
	"library/internal/core/ports"
	"library/internal/pkg/guard"
)

var ErrListLoansQueryIsNotConstructed = errors.New(
	"ListLoansQuery must be created via NewListLoansQuery constructor",
)

// ListLoansQuery reads the whole loan history.
type ListLoansQuery struct {
	guard guard.ConstructorGuard
}

func NewListLoansQuery() ListLoansQuery {
	return ListLoansQuery{guard: guard.NewConstructorGuard()}
}

func (q ListLoansQuery) Validate() error {
	return q.guard.Validate(ErrListLoansQueryIsNotConstructed)
}

type ListLoansQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewListLoansQueryHandler reads through uowFactory.
func NewListLoansQueryHandler(uowFactory ports.UnitOfWorkFactory) ListLoansQueryHandler {
	return ListLoansQueryHandler{uowFactory: uowFactory}
}

// Handle returns every loan, returned ones included, in the order they were made.
func (h ListLoansQueryHandler) Handle(ctx context.Context, query ListLoansQuery) ([]LoanView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return readLibrary(ctx, h.uowFactory, func(lib *library.Library) ([]LoanView, error) {
		return newLoanViews(lib.Loans()), nil
	})
}
