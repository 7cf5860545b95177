package commands

import (
	"context"

	"library/internal/core/domain/model/member"
	"library/internal/core/ports"
)

// AddMemberCommandHandler registers members.
type AddMemberCommandHandler struct {
	uowFactory UoWFactory
}

func NewAddMemberCommandHandler(uowFactory UoWFactory) AddMemberCommandHandler {
	return AddMemberCommandHandler{uowFactory: uowFactory}
}

// Handle returns the member id actually stored, which differs from the
// command's when it was empty.
func (h AddMemberCommandHandler) Handle(ctx context.Context, command AddMemberCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	m := member.New(command.Name(), command.MemberID(), command.YearJoined())

	err := inUnitOfWork(ctx, h.uowFactory, func(ctx context.Context, repo ports.LibraryRepository) error {
		lib, err := repo.Get(ctx)
		if err != nil {
			return err
		}
		return lib.AddMember(m)
	})
	if err != nil {
		return "", err
	}

	return m.ID(), nil
}
