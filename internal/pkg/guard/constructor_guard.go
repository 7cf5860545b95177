// Package guard provides ConstructorGuard, used by domain objects, commands and
// queries to tell values built by their constructor apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in a struct and set only by that struct's constructor.
// A zero-value struct therefore fails Validate.
//
// Example:
//
//	type LoanBookCommand struct {
//	    isbn  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c LoanBookCommand) Validate() error {
//	    return c.guard.Validate(ErrLoanBookCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
