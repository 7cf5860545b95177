package commands

import (
	"errors"
	"strings"

	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

var ErrLoanBookCommandIsNotConstructed = errors.New(
	"LoanBookCommand must be created via NewLoanBookCommand constructor",
)

// LoanBookCommand lends a catalogued book to a registered member.
//
// Example:
//
//	cmd, err := NewLoanBookCommand("ISBN-001", "M001", "2025-11-03", "2025-11-17")
//	if err != nil {
//	    return err
//	}
//	loaned, err := handler.Handle(ctx, cmd)
//	switch library.OutcomeOf(err) {
//	case library.OK:
//	    fmt.Println("loan", loaned.ID)
//	case library.BookUnavailable:
//	    fmt.Println("already on loan")
//	}
type LoanBookCommand struct { //nolint:recvcheck //using for validation
	isbn      string
	memberID  string
	startDate kernel.Date
	dueDate   kernel.Date

	guard guard.ConstructorGuard
}

// NewLoanBookCommand requires every field. Date order is not checked: the
// domain swaps reversed dates.
func NewLoanBookCommand(isbn, memberID, startDate, dueDate string) (LoanBookCommand, error) {
	cmd := LoanBookCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setISBN(isbn),
		cmd.setMemberID(memberID),
		cmd.setStartDate(startDate),
		cmd.setDueDate(dueDate),
	); err != nil {
		return LoanBookCommand{}, err
	}

	return cmd, nil
}

func (c LoanBookCommand) Validate() error {
	return c.guard.Validate(ErrLoanBookCommandIsNotConstructed)
}

func (c LoanBookCommand) ISBN() string {
	return c.isbn
}

func (c LoanBookCommand) MemberID() string {
	return c.memberID
}

func (c LoanBookCommand) StartDate() kernel.Date {
	return c.startDate
}

func (c LoanBookCommand) DueDate() kernel.Date {
	return c.dueDate
}

func (c *LoanBookCommand) setISBN(isbn string) error {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return errs.NewValueIsRequiredError("isbn")
	}
	c.isbn = isbn
	return nil
}

func (c *LoanBookCommand) setMemberID(memberID string) error {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return errs.NewValueIsRequiredError("memberId")
	}
	c.memberID = memberID
	return nil
}

func (c *LoanBookCommand) setStartDate(startDate string) error {
	d, err := kernel.NewDate(startDate)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("startDate", err)
	}
	c.startDate = d
	return nil
}

func (c *LoanBookCommand) setDueDate(dueDate string) error {
	d, err := kernel.NewDate(dueDate)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dueDate", err)
	}
	c.dueDate = d
	return nil
}
