package queries

import (
	"context"
	"errors"
	"strings"

	"library/internal/core/domain/model/library"
	"library/internal/core/ports"
	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

var ErrGetMemberLoansQueryIsNotConstructed = errors.New(
	"GetMemberLoansQuery must be created via NewGetMemberLoansQuery constructor",
)

// GetMemberLoansQuery lists a member's loan history, returned loans included.
type GetMemberLoansQuery struct {
	memberID string

	guard guard.ConstructorGuard
}

func NewGetMemberLoansQuery(memberID string) (GetMemberLoansQuery, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return GetMemberLoansQuery{}, errs.NewValueIsRequiredError("memberId")
	}

	return GetMemberLoansQuery{memberID: memberID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMemberLoansQuery) Validate() error {
	return q.guard.Validate(ErrGetMemberLoansQueryIsNotConstructed)
}

func (q GetMemberLoansQuery) MemberID() string {
	return q.memberID
}

type GetMemberLoansQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetMemberLoansQueryHandler reads through uowFactory.
func NewGetMemberLoansQueryHandler(uowFactory ports.UnitOfWorkFactory) GetMemberLoansQueryHandler {
	return GetMemberLoansQueryHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound for a member that is not registered.
// A registered member without loans gets an empty slice.
func (h GetMemberLoansQueryHandler) Handle(ctx context.Context, query GetMemberLoansQuery) ([]LoanView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return readLibrary(ctx, h.uowFactory, func(lib *library.Library) ([]LoanView, error) {
		if !lib.HasMember(query.MemberID()) {
			return nil, errs.NewObjectNotFoundError("memberId", query.MemberID())
		}
		return newLoanViews(lib.LoansOfMember(query.MemberID())), nil
	})
}
