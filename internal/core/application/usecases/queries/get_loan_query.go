package queries

import (
	"context"
	"errors"
	"strings"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/library"
	"library/internal/core/domain/model/loan"
	"library/internal/core/ports"
	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

var ErrGetLoanQueryIsNotConstructed = errors.New(
	"GetLoanQuery must be created via NewGetLoanQuery constructor",
)

// GetLoanQuery looks a single loan up by its id.
type GetLoanQuery struct {
	loanID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoanQuery rejects an empty id and anything that is not a non-nil UUID.
func NewGetLoanQuery(loanID string) (GetLoanQuery, error) {
	loanID = strings.TrimSpace(loanID)
	if loanID == "" {
		return GetLoanQuery{}, errs.NewValueIsRequiredError("loanId")
	}

	id, err := kernel.UUIDFromString(loanID)
	if err != nil {
		return GetLoanQuery{}, errs.NewValueIsInvalidErrorWithCause("loanId", err)
	}

	return GetLoanQuery{loanID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLoanQuery) Validate() error {
	return q.guard.Validate(ErrGetLoanQueryIsNotConstructed)
}

func (q GetLoanQuery) LoanID() kernel.UUID {
	return q.loanID
}

type GetLoanQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetLoanQueryHandler reads through uowFactory.
func NewGetLoanQueryHandler(uowFactory ports.UnitOfWorkFactory) GetLoanQueryHandler {
	return GetLoanQueryHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound when no loan carries the id.
func (h GetLoanQueryHandler) Handle(ctx context.Context, query GetLoanQuery) (LoanView, error) {
	if err := query.Validate(); err != nil {
		return LoanView{}, err
	}

	return readLibrary(ctx, h.uowFactory, func(lib *library.Library) (LoanView, error) {
		for _, ln := range lib.Loans() {
			if ln.ID().IsEqual(query.LoanID()) {
				return newLoanViews([]*loan.Loan{ln})[0], nil
			}
		}
		return LoanView{}, errs.NewObjectNotFoundError("loanId", query.LoanID().String())
	})
}
