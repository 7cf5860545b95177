package queries

import (
	"context"
	"errors"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/library"
	"library/internal/core/ports"
	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

var ErrGetOverdueLoansQueryIsNotConstructed = errors.New(
	"GetOverdueLoansQuery must be created via NewGetOverdueLoansQuery constructor",
)

// GetOverdueLoansQuery lists active loans due before a given day.
type GetOverdueLoansQuery struct {
	today kernel.Date

	guard guard.ConstructorGuard
}

func NewGetOverdueLoansQuery(today string) (GetOverdueLoansQuery, error) {
	d, err := kernel.NewDate(today)
	if err != nil {
		return GetOverdueLoansQuery{}, errs.NewValueIsRequiredErrorWithCause("today", err)
	}

	return GetOverdueLoansQuery{today: d, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOverdueLoansQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueLoansQueryIsNotConstructed)
}

func (q GetOverdueLoansQuery) Today() kernel.Date {
	return q.today
}

type GetOverdueLoansQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOverdueLoansQueryHandler reads through uowFactory.
func NewGetOverdueLoansQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOverdueLoansQueryHandler {
	return GetOverdueLoansQueryHandler{uowFactory: uowFactory}
}

// Handle returns the overdue loans in the order they were made.
func (h GetOverdueLoansQueryHandler) Handle(ctx context.Context, query GetOverdueLoansQuery) ([]LoanView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return readLibrary(ctx, h.uowFactory, func(lib *library.Library) ([]LoanView, error) {
		return newLoanViews(lib.OverdueLoans(query.Today())), nil
	})
}
