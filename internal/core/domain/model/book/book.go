package book

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"library/internal/core/domain/model/author"
	"library/internal/pkg/errs"
)

const (
	MaxYear      = 2025
	DefaultYear  = 2000
	DefaultTitle = "Untitled"
	DefaultISBN  = "000-000"
)

// ErrBookIsNotConstructed is returned by Validate when the Book was not built by a constructor.
var ErrBookIsNotConstructed = errors.New("Book must be created via New, NewDefault or Clone")

var live atomic.Int64

// LiveCount returns how many books are currently constructed and not released.
func LiveCount() int {
	return int(live.Load())
}

// Book is a catalogued title with its author, publication year, price and ISBN.
//
// Invariants:
//   - 0 < year <= MaxYear (otherwise DefaultYear)
//   - price >= 0 (otherwise 0)
//   - the author is always a constructed author.Author
type Book struct {
	title  string
	author author.Author
	year   int
	price  float64
	isbn   string

	isConstructed bool
	released      bool
}

// New creates a Book. Invalid year and price are replaced by their defaults and a
// warning is logged; construction always succeeds. A zero author.Author is replaced
// by author.NewDefault().
//
// Example:
//
//	vazov := author.New("Ivan Vazov", 1850)
//	b := book.New("Pod igoto", vazov, 1894, 25.50, "ISBN-001")
//	defer b.Release()
func New(title string, a author.Author, year int, price float64, isbn string) *Book {
	b := &Book{
		title:         title,
		isbn:          isbn,
		isConstructed: true,
	}
	b.setAuthor(a)
	b.SetYear(year)
	b.SetPrice(price)
	live.Add(1)

	return b
}

// NewDefault returns the placeholder book used when no data is known.
func NewDefault() *Book {
	live.Add(1)
	return &Book{
		title:         DefaultTitle,
		author:        author.NewDefault(),
		year:          DefaultYear,
		price:         0,
		isbn:          DefaultISBN,
		isConstructed: true,
	}
}

// Clone returns an independent copy that counts as a new live book.
func (b *Book) Clone() *Book {
	live.Add(1)
	return &Book{
		title:         b.title,
		author:        b.author,
		year:          b.year,
		price:         b.price,
		isbn:          b.isbn,
		isConstructed: true,
	}
}

// Release ends the life of this Book value for the live counter.
// Calling it more than once has no further effect.
func (b *Book) Release() {
	if b == nil || !b.isConstructed || b.released {
		return
	}
	b.released = true
	live.Add(-1)
}

// Validate ensures the Book was created through one of its constructors.
func (b *Book) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookIsNotConstructed
	}
	return nil
}

func (b *Book) Title() string {
	return b.title
}

func (b *Book) Author() author.Author {
	return b.author
}

func (b *Book) Year() int {
	return b.year
}

func (b *Book) Price() float64 {
	return b.price
}

func (b *Book) ISBN() string {
	return b.isbn
}

// SetYear keeps year if 0 < year <= MaxYear, otherwise stores DefaultYear.
func (b *Book) SetYear(year int) {
	if year > 0 && year <= MaxYear {
		b.year = year
		return
	}

	slog.Default().Warn("invalid publication year for book, using default",
		"isbn", b.isbn,
		"year", year,
		"default", DefaultYear,
		"error", errs.NewValueIsOutOfRangeError("year", year, 1, MaxYear),
	)
	b.year = DefaultYear
}

// SetPrice keeps non-negative prices, otherwise stores 0.
func (b *Book) SetPrice(price float64) {
	if price >= 0 {
		b.price = price
		return
	}

	slog.Default().Warn("negative price for book, using 0",
		"isbn", b.isbn,
		"price", price,
		"error", errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%.2f is below 0", price)),
	)
	b.price = 0
}

// String renders the book as "'Pod igoto' by Ivan Vazov, 1894, $25.50 [ISBN: ISBN-001]".
func (b *Book) String() string {
	return fmt.Sprintf("'%s' by %s, %d, $%.2f [ISBN: %s]",
		b.title, b.author.Name(), b.year, b.price, b.isbn)
}

func (b *Book) setAuthor(a author.Author) {
	if err := a.Validate(); err != nil {
		slog.Default().Warn("book created without author, using default",
			"isbn", b.isbn,
			"error", err,
		)
		a = author.NewDefault()
	}
	b.author = a
}
