package library

import (
	"fmt"
	"strings"
)

// Summary is a point-in-time count of the library's contents.
type Summary struct {
	Books       int
	Members     int
	Loans       int
	ActiveLoans int
	// LiveBooks is book.LiveCount() at the time of the snapshot.
	LiveBooks int
}

func (s Summary) String() string {
	var sb strings.Builder

	sb.WriteString("=== Library Status ===\n")
	fmt.Fprintf(&sb, "Total Books in Collection: %d\n", s.Books)
	fmt.Fprintf(&sb, "Total Members: %d\n", s.Members)
	fmt.Fprintf(&sb, "Total Loans (History): %d\n", s.Loans)
	fmt.Fprintf(&sb, "Active Loans: %d\n", s.ActiveLoans)
	fmt.Fprintf(&sb, "Global Book Instances (Static): %d\n", s.LiveBooks)
	sb.WriteString("======================")

	return sb.String()
}
