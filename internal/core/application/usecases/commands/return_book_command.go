package commands

import (
	"errors"
	"strings"

	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

var ErrReturnBookCommandIsNotConstructed = errors.New(
	"ReturnBookCommand must be created via NewReturnBookCommand constructor",
)

// ReturnBookCommand closes the active loan of a book held by a member.
// Both identifiers are needed: a book cannot be returned under another member's id.
type ReturnBookCommand struct { //nolint:recvcheck //using for validation
	isbn     string
	memberID string

	guard guard.ConstructorGuard
}

func NewReturnBookCommand(isbn, memberID string) (ReturnBookCommand, error) {
	cmd := ReturnBookCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setISBN(isbn),
		cmd.setMemberID(memberID),
	); err != nil {
		return ReturnBookCommand{}, err
	}

	return cmd, nil
}

func (c ReturnBookCommand) Validate() error {
	return c.guard.Validate(ErrReturnBookCommandIsNotConstructed)
}

func (c ReturnBookCommand) ISBN() string {
	return c.isbn
}

func (c ReturnBookCommand) MemberID() string {
	return c.memberID
}

func (c *ReturnBookCommand) setISBN(isbn string) error {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return errs.NewValueIsRequiredError("isbn")
	}
	c.isbn = isbn
	return nil
}

func (c *ReturnBookCommand) setMemberID(memberID string) error {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return errs.NewValueIsRequiredError("memberId")
	}
	c.memberID = memberID
	return nil
}
