package author

import (
	"errors"
	"fmt"
	"log/slog"

	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

const (
	MinBirthYear     = 1850
	MaxBirthYear     = 2025
	DefaultBirthYear = 1900
	DefaultName      = "Unknown"
)

// ErrAuthorIsNotConstructed is returned by Validate for a zero Author.
var ErrAuthorIsNotConstructed = errors.New("Author must be created via New or NewDefault")

// Author is the writer of a book. Copies are independent and never change after construction.
type Author struct {
	name      string
	birthYear int

	guard guard.ConstructorGuard
}

// New creates an Author. A birth year outside [MinBirthYear, MaxBirthYear] is
// replaced by DefaultBirthYear.
//
// Example:
//
//	vazov := author.New("Ivan Vazov", 1850)
//	fmt.Println(vazov) // Ivan Vazov (1850)
func New(name string, birthYear int) Author {
	a := Author{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}
	a.setBirthYear(birthYear)

	return a
}

// NewDefault returns the placeholder author "Unknown" born in DefaultBirthYear.
func NewDefault() Author {
	return Author{
		name:      DefaultName,
		birthYear: DefaultBirthYear,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate reports whether the Author was created through a constructor.
func (a Author) Validate() error {
	return a.guard.Validate(ErrAuthorIsNotConstructed)
}

// Name returns the author's full name.
func (a Author) Name() string {
	return a.name
}

// BirthYear returns the birth year, already clamped to the allowed range.
func (a Author) BirthYear() int {
	return a.birthYear
}

// String renders the author as "Ivan Vazov (1850)".
func (a Author) String() string {
	return fmt.Sprintf("%s (%d)", a.name, a.birthYear)
}

func (a *Author) setBirthYear(year int) {
	if year >= MinBirthYear && year <= MaxBirthYear {
		a.birthYear = year
		return
	}

	slog.Default().Warn("invalid birth year for author, using default",
		"author", a.name,
		"birth_year", year,
		"default", DefaultBirthYear,
		"error", errs.NewValueIsOutOfRangeError("birthYear", year, MinBirthYear, MaxBirthYear),
	)
	a.birthYear = DefaultBirthYear
}
