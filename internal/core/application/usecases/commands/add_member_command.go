package commands

import (
	"errors"

	"library/internal/pkg/guard"
)

var ErrAddMemberCommandIsNotConstructed = errors.New(
	"AddMemberCommand must be created via NewAddMemberCommand constructor",
)

// AddMemberCommand registers a member. An empty member id is accepted and
// becomes "UNKNOWN" in the domain.
type AddMemberCommand struct {
	name       string
	memberID   string
	yearJoined int

	guard guard.ConstructorGuard
}

func NewAddMemberCommand(name, memberID string, yearJoined int) AddMemberCommand {
	return AddMemberCommand{
		name:       name,
		memberID:   memberID,
		yearJoined: yearJoined,
		guard:      guard.NewConstructorGuard(),
	}
}

func (c AddMemberCommand) Validate() error {
	return c.guard.Validate(ErrAddMemberCommandIsNotConstructed)
}

func (c AddMemberCommand) Name() string {
	return c.name
}

func (c AddMemberCommand) MemberID() string {
	return c.memberID
}

func (c AddMemberCommand) YearJoined() int {
	return c.yearJoined
}
