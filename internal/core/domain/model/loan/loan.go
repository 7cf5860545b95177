package loan

import (
	"errors"
	"fmt"
	"log/slog"

	"library/internal/core/domain/model/kernel"
)

// ErrLoanIsNotConstructed is returned by Validate for loans not built by New.
var ErrLoanIsNotConstructed = errors.New("Loan must be created via New constructor")

// Loan links a book (by ISBN) and a member (by id) over [startDate, dueDate].
type Loan struct {
	id        kernel.UUID
	isbn      string
	memberID  string
	startDate kernel.Date
	dueDate   kernel.Date
	status    Status

	isConstructed bool
}

// New creates an active Loan with a fresh id. When due is before start the two
// dates are swapped and a warning is logged, so StartDate() <= DueDate() always holds.
func New(isbn, memberID string, start, due kernel.Date) *Loan {
	if due.Before(start) {
		slog.Default().Warn("due date is before start date, swapping",
			"isbn", isbn,
			"member_id", memberID,
			"start_date", start.String(),
			"due_date", due.String(),
		)
		start, due = due, start
	}

	return &Loan{
		id:            kernel.NewUUID(),
		isbn:          isbn,
		memberID:      memberID,
		startDate:     start,
		dueDate:       due,
		status:        Active,
		isConstructed: true,
	}
}

// Validate ensures the Loan was created through New.
func (l *Loan) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoanIsNotConstructed
	}
	return nil
}

func (l *Loan) ID() kernel.UUID {
	return l.id
}

func (l *Loan) ISBN() string {
	return l.isbn
}

func (l *Loan) MemberID() string {
	return l.memberID
}

func (l *Loan) StartDate() kernel.Date {
	return l.startDate
}

func (l *Loan) DueDate() kernel.Date {
	return l.dueDate
}

func (l *Loan) Status() Status {
	return l.status
}

func (l *Loan) IsReturned() bool {
	return l.status == Returned
}

// Matches reports whether the loan is for the given book and member.
func (l *Loan) Matches(isbn, memberID string) bool {
	return l.isbn == isbn && l.memberID == memberID
}

// MarkReturned closes the loan. It is idempotent.
func (l *Loan) MarkReturned() error {
	newStatus, err := l.status.Return()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// IsOverdue is true for an active loan when today is after the due date.
// Returned loans are never overdue.
func (l *Loan) IsOverdue(today kernel.Date) bool {
	return !l.IsReturned() && today.After(l.dueDate)
}

// Copy returns a detached snapshot of the loan with the same id.
func (l *Loan) Copy() *Loan {
	c := *l
	return &c
}

// String renders "Loan: Book ISBN-001 to Member M001 (2025-11-03 -> 2025-11-17) [ACTIVE]".
func (l *Loan) String() string {
	return fmt.Sprintf("Loan: Book %s to Member %s (%s -> %s) [%s]",
		l.isbn, l.memberID, l.startDate, l.dueDate, l.status)
}
