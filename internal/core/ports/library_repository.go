// Package ports defines the contracts between the library application core and
// its adapters. Keeping them here lets the core be tested with fakes and lets the
// storage adapter change without touching use cases.
package ports

import (
	"context"

	"library/internal/core/domain/model/library"
)

// LibraryRepository gives access to the single Library aggregate.
type LibraryRepository interface {
	// Get returns the aggregate. Changes made to it are visible to later Gets
	// once the surrounding unit of work commits.
	Get(ctx context.Context) (*library.Library, error)

	// Save replaces the stored aggregate. The library must be valid.
	Save(ctx context.Context, lib *library.Library) error
}
