// Package kernel provides the domain primitives shared by the library model.
//
// The package includes:
//   - UUID: identifier value object used for loans
//   - Date: a calendar day kept as an ISO-8601 string and compared lexicographically
//
// Both are immutable values and safe for concurrent use.
package kernel
