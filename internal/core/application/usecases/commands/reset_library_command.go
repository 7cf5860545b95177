package commands

import (
	"errors"

	"library/internal/pkg/guard"
)

var ErrResetLibraryCommandIsNotConstructed = errors.New(
	"ResetLibraryCommand must be created via NewResetLibraryCommand constructor",
)

// ResetLibraryCommand replaces the stored library with an empty one.
type ResetLibraryCommand struct {
	guard guard.ConstructorGuard
}

func NewResetLibraryCommand() ResetLibraryCommand {
	return ResetLibraryCommand{guard: guard.NewConstructorGuard()}
}

func (c ResetLibraryCommand) Validate() error {
	return c.guard.Validate(ErrResetLibraryCommandIsNotConstructed)
}
