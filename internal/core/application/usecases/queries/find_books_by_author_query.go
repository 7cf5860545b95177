package queries

import (
	"context"
	"errors"

	"library/internal/core/domain/model/book"
	"library/internal/core/domain/model/library"
	"library/internal/core/ports"
	"library/internal/pkg/guard"
)

var ErrFindBooksByAuthorQueryIsNotConstructed = errors.New(
	"FindBooksByAuthorQuery must be created via NewFindBooksByAuthorQuery constructor",
)

// FindBooksByAuthorQuery matches books whose author name contains a substring.
// Matching is case-sensitive. The empty substring matches every book.
//
// Example:
//
//	query := NewFindBooksByAuthorQuery("Vazov")
//	books, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, b := range books {
//	    fmt.Println(b.Title, b.ISBN)
//	}
type FindBooksByAuthorQuery struct {
	authorSubstring string

	guard guard.ConstructorGuard
}

func NewFindBooksByAuthorQuery(authorSubstring string) FindBooksByAuthorQuery {
	return FindBooksByAuthorQuery{authorSubstring: authorSubstring, guard: guard.NewConstructorGuard()}
}

func (q FindBooksByAuthorQuery) Validate() error {
	return q.guard.Validate(ErrFindBooksByAuthorQueryIsNotConstructed)
}

func (q FindBooksByAuthorQuery) AuthorSubstring() string {
	return q.authorSubstring
}

// BookView is the read model of one catalogued book.
type BookView struct {
	Title           string
	Author          string
	AuthorBirthYear int
	Year            int
	Price           float64
	ISBN            string
	Available       bool
}

type FindBooksByAuthorQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewFindBooksByAuthorQueryHandler reads through uowFactory.
func NewFindBooksByAuthorQueryHandler(uowFactory ports.UnitOfWorkFactory) FindBooksByAuthorQueryHandler {
	return FindBooksByAuthorQueryHandler{uowFactory: uowFactory}
}

// Handle returns the matches in catalog order.
func (h FindBooksByAuthorQueryHandler) Handle(ctx context.Context, query FindBooksByAuthorQuery) ([]BookView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return readLibrary(ctx, h.uowFactory, func(lib *library.Library) ([]BookView, error) {
		var found []*book.Book
		if query.AuthorSubstring() == "" {
			found = lib.Books()
		} else {
			found = lib.FindByAuthor(query.AuthorSubstring())
		}

		views := make([]BookView, 0, len(found))
		for _, b := range found {
			views = append(views, BookView{
				Title:           b.Title(),
				Author:          b.Author().Name(),
				AuthorBirthYear: b.Author().BirthYear(),
				Year:            b.Year(),
				Price:           b.Price(),
				ISBN:            b.ISBN(),
				Available:       lib.IsBookAvailable(b.ISBN()),
			})
			b.Release()
		}

		return views, nil
	})
}
