package library

import (
	"errors"
	"fmt"

	"library/internal/pkg/errs"
)

// Outcome names the result of a library operation.
type Outcome int

const (
	OK Outcome = iota
	BookNotFound
	BookUnavailable
	MemberNotFound
	NoActiveLoan
	DuplicateISBN
	// Unclassified covers errors that did not come from the aggregate.
	Unclassified
)

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrBookUnavailable = errors.New("book is not available")
	ErrMemberNotFound  = errors.New("member not found")
	ErrNoActiveLoan    = errors.New("no active loan")
	ErrDuplicateISBN   = errors.New("duplicate isbn")
)

func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		OK:              "Ok",
		BookNotFound:    "BookNotFound",
		BookUnavailable: "BookUnavailable",
		MemberNotFound:  "MemberNotFound",
		NoActiveLoan:    "NoActiveLoan",
		DuplicateISBN:   "DuplicateISBN",
		Unclassified:    "Unclassified",
	}
}

func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "Unclassified"
}

// Sentinel returns the sentinel error for a failure outcome, nil otherwise.
func (o Outcome) Sentinel() error {
	switch o {
	case BookNotFound:
		return ErrBookNotFound
	case BookUnavailable:
		return ErrBookUnavailable
	case MemberNotFound:
		return ErrMemberNotFound
	case NoActiveLoan:
		return ErrNoActiveLoan
	case DuplicateISBN:
		return ErrDuplicateISBN
	case OK, Unclassified:
		return nil
	}
	return nil
}

// OutcomeOf classifies err. nil is OK; errors not produced by the aggregate are Unclassified.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OK
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Outcome
	}

	for _, o := range []Outcome{BookNotFound, BookUnavailable, MemberNotFound, NoActiveLoan, DuplicateISBN} {
		if errors.Is(err, o.Sentinel()) {
			return o
		}
	}

	return Unclassified
}

// OperationError describes a rejected library operation. State is unchanged when it is returned.
type OperationError struct {
	Op       string
	Outcome  Outcome
	ISBN     string
	MemberID string
}

func newOperationError(op string, outcome Outcome, isbn, memberID string) *OperationError {
	return &OperationError{Op: op, Outcome: outcome, ISBN: isbn, MemberID: memberID}
}

func (e *OperationError) Error() string {
	var detail string
	switch e.Outcome {
	case BookNotFound:
		detail = fmt.Sprintf("book %s does not exist", e.ISBN)
	case BookUnavailable:
		detail = fmt.Sprintf("book %s is already on loan", e.ISBN)
	case MemberNotFound:
		detail = fmt.Sprintf("member %s not found", e.MemberID)
	case NoActiveLoan:
		detail = fmt.Sprintf("no active loan found for book %s and member %s", e.ISBN, e.MemberID)
	case DuplicateISBN:
		detail = fmt.Sprintf("book %s is already in the catalog", e.ISBN)
	case OK, Unclassified:
		detail = e.Outcome.String()
	}

	return fmt.Sprintf("%s failed: %s", e.Op, detail)
}

// Unwrap exposes the outcome sentinel, plus errs.ErrObjectNotFound for lookups that matched nothing.
func (e *OperationError) Unwrap() []error {
	unwrapped := make([]error, 0, 2)
	if sentinel := e.Outcome.Sentinel(); sentinel != nil {
		unwrapped = append(unwrapped, sentinel)
	}

	switch e.Outcome {
	case BookNotFound, MemberNotFound, NoActiveLoan:
		unwrapped = append(unwrapped, errs.ErrObjectNotFound)
	case OK, BookUnavailable, DuplicateISBN, Unclassified:
	}

	return unwrapped
}
