package library

import (
	"errors"
	"strings"

	"library/internal/core/domain/model/book"
	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/loan"
	"library/internal/core/domain/model/member"
)

// ErrLibraryIsNotConstructed is returned by Validate for a Library not built by New.
var ErrLibraryIsNotConstructed = errors.New("Library must be created via New constructor")

const (
	opAddBook = "add book"
	opLoan    = "loan"
	opReturn  = "return"
)

// Library is the aggregate root. It owns copies of its books and members and the
// full loan history. Loans are never removed; returning one only flips its status.
type Library struct {
	books   []*book.Book
	members []member.Member
	loans   []*loan.Loan

	isConstructed bool
}

// New creates an empty Library.
func New() *Library {
	return &Library{
		books:         make([]*book.Book, 0),
		members:       make([]member.Member, 0),
		loans:         make([]*loan.Loan, 0),
		isConstructed: true,
	}
}

// Validate ensures the Library was created through New.
func (l *Library) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLibraryIsNotConstructed
	}
	return nil
}

// AddBook stores a copy of b. A book whose ISBN is already catalogued is rejected
// with an OperationError (DuplicateISBN) and the library is left unchanged.
func (l *Library) AddBook(b *book.Book) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if l.HasBook(b.ISBN()) {
		return newOperationError(opAddBook, DuplicateISBN, b.ISBN(), "")
	}

	l.books = append(l.books, b.Clone())
	return nil
}

// AddMember stores a copy of m. Member ids are not required to be unique;
// lookups use the first match.
func (l *Library) AddMember(m member.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}

	l.members = append(l.members, m)
	return nil
}

// HasBook reports whether a book with the ISBN is catalogued.
func (l *Library) HasBook(isbn string) bool {
	return l.findBook(isbn) != nil
}

// HasMember reports whether a member with the id is registered.
func (l *Library) HasMember(memberID string) bool {
	for _, m := range l.members {
		if m.ID() == memberID {
			return true
		}
	}
	return false
}

// IsBookAvailable is false for unknown ISBNs and for books with an active loan.
func (l *Library) IsBookAvailable(isbn string) bool {
	if !l.HasBook(isbn) {
		return false
	}
	return l.activeLoanOf(isbn) == nil
}

// LoanBook lends the book to the member and returns a snapshot of the new loan.
//
// The checks run in this order and the first failure wins:
//  1. the ISBN must be catalogued (BookNotFound)
//  2. the book must not be on an active loan (BookUnavailable)
//  3. the member must be registered (MemberNotFound)
//
// Nothing is recorded when a check fails.
func (l *Library) LoanBook(isbn, memberID string, start, due kernel.Date) (*loan.Loan, error) {
	if !l.HasBook(isbn) {
		return nil, newOperationError(opLoan, BookNotFound, isbn, memberID)
	}
	if l.activeLoanOf(isbn) != nil {
		return nil, newOperationError(opLoan, BookUnavailable, isbn, memberID)
	}
	if !l.HasMember(memberID) {
		return nil, newOperationError(opLoan, MemberNotFound, isbn, memberID)
	}

	created := loan.New(isbn, memberID, start, due)
	l.loans = append(l.loans, created)

	return created.Copy(), nil
}

// ReturnBook marks the first active loan of the book to this member as returned
// and returns a snapshot of it. A loan held by another member is not touched.
func (l *Library) ReturnBook(isbn, memberID string) (*loan.Loan, error) {
	for _, ln := range l.loans {
		if ln.Matches(isbn, memberID) && !ln.IsReturned() {
			if err := ln.MarkReturned(); err != nil {
				return nil, err
			}
			return ln.Copy(), nil
		}
	}

	return nil, newOperationError(opReturn, NoActiveLoan, isbn, memberID)
}

// FindByAuthor returns copies of the books whose author name contains substr
// (case-sensitive), in catalog order. The copies count as live books; callers
// release them when done.
func (l *Library) FindByAuthor(substr string) []*book.Book {
	found := make([]*book.Book, 0)
	for _, b := range l.books {
		if strings.Contains(b.Author().Name(), substr) {
			found = append(found, b.Clone())
		}
	}
	return found
}

// Books returns copies of the whole catalog. Callers release them when done.
func (l *Library) Books() []*book.Book {
	copies := make([]*book.Book, len(l.books))
	for i, b := range l.books {
		copies[i] = b.Clone()
	}
	return copies
}

// Members returns copies of the registered members in registration order.
func (l *Library) Members() []member.Member {
	copies := make([]member.Member, len(l.members))
	copy(copies, l.members)
	return copies
}

// Loans returns snapshots of the loan history in the order loans were made.
func (l *Library) Loans() []*loan.Loan {
	return l.selectLoans(func(*loan.Loan) bool { return true })
}

// ActiveLoans returns snapshots of the loans not yet returned.
func (l *Library) ActiveLoans() []*loan.Loan {
	return l.selectLoans(func(ln *loan.Loan) bool { return !ln.IsReturned() })
}

// OverdueLoans returns active loans whose due date is before today.
func (l *Library) OverdueLoans(today kernel.Date) []*loan.Loan {
	return l.selectLoans(func(ln *loan.Loan) bool { return ln.IsOverdue(today) })
}

// LoansOfMember returns every loan, active or returned, made to the member.
func (l *Library) LoansOfMember(memberID string) []*loan.Loan {
	return l.selectLoans(func(ln *loan.Loan) bool { return ln.MemberID() == memberID })
}

// Summary counts the library's contents.
func (l *Library) Summary() Summary {
	active := 0
	for _, ln := range l.loans {
		if !ln.IsReturned() {
			active++
		}
	}

	return Summary{
		Books:       len(l.books),
		Members:     len(l.members),
		Loans:       len(l.loans),
		ActiveLoans: active,
		LiveBooks:   book.LiveCount(),
	}
}

// String renders the status report block.
func (l *Library) String() string {
	return l.Summary().String()
}

// Release drops the library's own book copies from the live counter and empties the catalog.
func (l *Library) Release() {
	for _, b := range l.books {
		b.Release()
	}
	l.books = l.books[:0]
}

func (l *Library) findBook(isbn string) *book.Book {
	for _, b := range l.books {
		if b.ISBN() == isbn {
			return b
		}
	}
	return nil
}

func (l *Library) activeLoanOf(isbn string) *loan.Loan {
	for _, ln := range l.loans {
		if ln.ISBN() == isbn && !ln.IsReturned() {
			return ln
		}
	}
	return nil
}

func (l *Library) selectLoans(keep func(*loan.Loan) bool) []*loan.Loan {
	selected := make([]*loan.Loan, 0)
	for _, ln := range l.loans {
		if keep(ln) {
			selected = append(selected, ln.Copy())
		}
	}
	return selected
}
