// Package loan models the record of a book lent to a member.
//
// A Loan references its book and member by identifier only (ISBN and member
// id). It never owns them. The start date is never after the due date: New swaps
// the two when they arrive in the wrong order.
//
// Lifecycle:
//
//	Active ──> Returned
//	            │  ▲
//	            └──┘ (marking again has no effect)
package loan
