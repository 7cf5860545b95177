// Package book models a catalogued book and tracks how many Book values are alive.
//
// Every constructor path (New, NewDefault, Clone) increments a process-wide
// counter and Release decrements it, so LiveCount always equals the number of
// constructed and not yet released books. The counter is observational only:
// no business rule reads it.
package book
