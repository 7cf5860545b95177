package kernel

import (
	"strings"
	"time"

	"library/internal/pkg/errs"
)

// DateLayout is the layout used when a Date is derived from a time.Time.
const DateLayout = "2006-01-02"

// Date is a calendar day such as "2025-11-03". Dates are ordered by plain string
// comparison, which matches calendar order for zero-padded ISO-8601 values.
// No calendar arithmetic is offered.
type Date string

// NewDate trims s and rejects the empty string. The format itself is not checked.
func NewDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errs.NewValueIsRequiredError("date")
	}
	return Date(s), nil
}

// DateOf formats t in UTC as a Date.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

// Today returns the current UTC day.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) String() string {
	return string(d)
}

func (d Date) Before(other Date) bool {
	return d < other
}

func (d Date) After(other Date) bool {
	return d > other
}
