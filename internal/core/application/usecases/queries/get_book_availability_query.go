package queries

import (
	"context"
	"errors"
	"strings"

	"library/internal/core/domain/model/library"
	"library/internal/core/ports"
	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

var ErrGetBookAvailabilityQueryIsNotConstructed = errors.New(
	"GetBookAvailabilityQuery must be created via NewGetBookAvailabilityQuery constructor",
)

// GetBookAvailabilityQuery asks whether a book can be lent right now.
type GetBookAvailabilityQuery struct {
	isbn string

	guard guard.ConstructorGuard
}

func NewGetBookAvailabilityQuery(isbn string) (GetBookAvailabilityQuery, error) {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return GetBookAvailabilityQuery{}, errs.NewValueIsRequiredError("isbn")
	}

	return GetBookAvailabilityQuery{isbn: isbn, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBookAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetBookAvailabilityQueryIsNotConstructed)
}

func (q GetBookAvailabilityQuery) ISBN() string {
	return q.isbn
}

// GetBookAvailabilityQueryResponse separates "not in the catalog" from "on loan";
// Available is false in both cases.
type GetBookAvailabilityQueryResponse struct {
	ISBN       string
	Catalogued bool
	Available  bool
}

type GetBookAvailabilityQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetBookAvailabilityQueryHandler reads through uowFactory.
func NewGetBookAvailabilityQueryHandler(uowFactory ports.UnitOfWorkFactory) GetBookAvailabilityQueryHandler {
	return GetBookAvailabilityQueryHandler{uowFactory: uowFactory}
}

// Handle never fails for an unknown ISBN; it reports Catalogued false instead.
func (h GetBookAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetBookAvailabilityQuery,
) (GetBookAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBookAvailabilityQueryResponse{}, err
	}

	return readLibrary(ctx, h.uowFactory, func(lib *library.Library) (GetBookAvailabilityQueryResponse, error) {
		return GetBookAvailabilityQueryResponse{
			ISBN:       query.ISBN(),
			Catalogued: lib.HasBook(query.ISBN()),
			Available:  lib.IsBookAvailable(query.ISBN()),
		}, nil
	})
}
