package queries

import (
	"context"
	"errors"

	"library/internal/core/domain/model/library"
	"library/internal/core/ports"
	"library/internal/pkg/guard"
)

var ErrGetLibrarySummaryQueryIsNotConstructed = errors.New(
	"GetLibrarySummaryQuery must be created via NewGetLibrarySummaryQuery constructor",
)

// GetLibrarySummaryQuery reads the counters shown on the status report.
type GetLibrarySummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLibrarySummaryQuery() GetLibrarySummaryQuery {
	return GetLibrarySummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLibrarySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetLibrarySummaryQueryIsNotConstructed)
}

type GetLibrarySummaryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetLibrarySummaryQueryHandler reads through uowFactory.
func NewGetLibrarySummaryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetLibrarySummaryQueryHandler {
	return GetLibrarySummaryQueryHandler{uowFactory: uowFactory}
}

// Handle returns the book, member and active loan counters.
func (h GetLibrarySummaryQueryHandler) Handle(ctx context.Context, query GetLibrarySummaryQuery) (library.Summary, error) {
	if err := query.Validate(); err != nil {
		return library.Summary{}, err
	}

	return readLibrary(ctx, h.uowFactory, func(lib *library.Library) (library.Summary, error) {
		return lib.Summary(), nil
	})
}
