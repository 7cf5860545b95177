package commands

import (
	"errors"
	"strings"

	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

var ErrAddBookCommandIsNotConstructed = errors.New(
	"AddBookCommand must be created via NewAddBookCommand constructor",
)

// AddBookCommand adds a title to the catalog.
//
// Year, price and author birth year are not checked here: the domain clamps
// them to safe defaults. Only the identifying fields are required.
//
// Example:
//
//	cmd, err := NewAddBookCommand("Pod igoto", "Ivan Vazov", 1850, 1894, 25.50, "ISBN-001")
//	if err != nil {
//	    return fmt.Errorf("invalid book: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type AddBookCommand struct { //nolint:recvcheck //using for validation
	title           string
	authorName      string
	authorBirthYear int
	year            int
	price           float64
	isbn            string

	guard guard.ConstructorGuard
}

// NewAddBookCommand validates that title and ISBN are present.
func NewAddBookCommand(
	title string,
	authorName string,
	authorBirthYear int,
	year int,
	price float64,
	isbn string,
) (AddBookCommand, error) {
	cmd := AddBookCommand{
		authorName:      authorName,
		authorBirthYear: authorBirthYear,
		year:            year,
		price:           price,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTitle(title),
		cmd.setISBN(isbn),
	); err != nil {
		return AddBookCommand{}, err
	}

	return cmd, nil
}

func (c AddBookCommand) Validate() error {
	return c.guard.Validate(ErrAddBookCommandIsNotConstructed)
}

func (c AddBookCommand) Title() string {
	return c.title
}

func (c AddBookCommand) AuthorName() string {
	return c.authorName
}

func (c AddBookCommand) AuthorBirthYear() int {
	return c.authorBirthYear
}

func (c AddBookCommand) Year() int {
	return c.year
}

func (c AddBookCommand) Price() float64 {
	return c.price
}

func (c AddBookCommand) ISBN() string {
	return c.isbn
}

func (c *AddBookCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *AddBookCommand) setISBN(isbn string) error {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return errs.NewValueIsRequiredError("isbn")
	}
	c.isbn = isbn
	return nil
}
