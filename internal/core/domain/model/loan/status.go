package loan

import (
	"fmt"

	"library/internal/pkg/errs"
)

// Status is the lifecycle state of a Loan.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota

	// Active means the book is still with the member.
	Active

	// Returned is final.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Active:   "ACTIVE",
		Returned: "RETURNED",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s != Active && s != Returned {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Return transitions Active or Returned to Returned.
func (s Status) Return() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Returned, nil
}
