// Package member models a registered library member.
package member

import (
	"errors"
	"fmt"

	"library/internal/pkg/guard"
)

const (
	UnknownID     = "UNKNOWN"
	DefaultName   = "Guest"
	DefaultID     = "G000"
	DefaultJoined = 2024
)

var ErrMemberIsNotConstructed = errors.New("Member must be created via New or NewDefault")

// Member is a person allowed to borrow books. The member id is the only field
// the library looks at; it is never empty.
type Member struct {
	name       string
	memberID   string
	yearJoined int

	guard guard.ConstructorGuard
}

// New creates a Member. An empty memberID becomes UnknownID.
func New(name, memberID string, yearJoined int) Member {
	if memberID == "" {
		memberID = UnknownID
	}

	return Member{
		name:       name,
		memberID:   memberID,
		yearJoined: yearJoined,
		guard:      guard.NewConstructorGuard(),
	}
}

// NewDefault returns the guest member.
func NewDefault() Member {
	return New(DefaultName, DefaultID, DefaultJoined)
}

// Validate reports whether the Member was created through a constructor.
func (m Member) Validate() error {
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

// Name returns the member's display name.
func (m Member) Name() string {
	return m.name
}

// ID returns the member id, UnknownID when none was given.
func (m Member) ID() string {
	return m.memberID
}

// YearJoined returns the year the member registered.
func (m Member) YearJoined() int {
	return m.yearJoined
}

// String renders the member as "Petar Petrov [ID: M001]".
func (m Member) String() string {
	return fmt.Sprintf("%s [ID: %s]", m.name, m.memberID)
}
