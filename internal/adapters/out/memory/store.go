package memory

import (
	"library/internal/core/domain/model/library"
)

// Store holds the one Library aggregate of the process together with the
// lock that units of work take before touching it.
type Store struct {
	lib  *library.Library
	lock chan struct{}
}

// NewStore wraps lib. A nil lib is replaced by an empty library.
func NewStore(lib *library.Library) *Store {
	if lib == nil {
		lib = library.New()
	}

	return &Store{
		lib:  lib,
		lock: make(chan struct{}, 1),
	}
}

// Load returns the stored aggregate. Callers must hold the lock.
func (s *Store) Load() *library.Library {
	return s.lib
}

// Replace swaps the stored aggregate. Callers must hold the lock.
func (s *Store) Replace(lib *library.Library) {
	s.lib = lib
}
