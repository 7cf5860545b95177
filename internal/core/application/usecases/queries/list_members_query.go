package queries

import (
	"context"
	"errors"

	"library/internal/core/domain/model/library"
	"library/internal/core/ports"
	"library/internal/pkg/guard"
)

var ErrListMembersQueryIsNotConstructed = errors.New(
	"ListMembersQuery must be created via NewListMembersQuery constructor",
)

// ListMembersQuery reads every registered member.
type ListMembersQuery struct {
	guard guard.ConstructorGuard
}

func NewListMembersQuery() ListMembersQuery {
	return ListMembersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListMembersQuery) Validate() error {
	return q.guard.Validate(ErrListMembersQueryIsNotConstructed)
}

// MemberView is the read model of one registered member.
type MemberView struct {
	Name       string
	MemberID   string
	YearJoined int
}

type ListMembersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewListMembersQueryHandler reads through uowFactory.
func NewListMembersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListMembersQueryHandler {
	return ListMembersQueryHandler{uowFactory: uowFactory}
}

// Handle returns the members in registration order.
func (h ListMembersQueryHandler) Handle(ctx context.Context, query ListMembersQuery) ([]MemberView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return readLibrary(ctx, h.uowFactory, func(lib *library.Library) ([]MemberView, error) {
		members := lib.Members()

		views := make([]MemberView, 0, len(members))
		for _, m := range members {
			views = append(views, MemberView{Name: m.Name(), MemberID: m.ID(), YearJoined: m.YearJoined()})
		}
		return views, nil
	})
}
