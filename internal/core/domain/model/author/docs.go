// Package author models the writer of a book.
//
// An Author is an immutable value. Its birth year is kept inside
// [MinBirthYear, MaxBirthYear]; out-of-range input is replaced by
// DefaultBirthYear and a warning is logged through slog.Default().
// Construction never fails.
package author
