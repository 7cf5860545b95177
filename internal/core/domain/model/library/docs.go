// Package library contains the Library aggregate: the catalog of books, the
// member register and the append-only loan history.
//
// The aggregate enforces the lending rules:
//   - a book is on loan iff an active (not returned) Loan references its ISBN
//   - LoanBook checks availability and member existence before appending, and
//     appends nothing when a check fails
//   - ReturnBook closes the first active loan matching both ISBN and member id
//   - ISBNs are unique within the catalog
//
// Failures are returned as *OperationError values; OutcomeOf classifies any
// returned error into an Outcome. A Library is not safe for concurrent use:
// callers serialize access (see the memory adapter's unit of work).
package library
