package pipeline

import "sync/atomic"

// Store publishes the current snapshot. Readers always see a complete snapshot;
// replacing it is a single pointer swap.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding initial.
func NewStore(initial *Snapshot) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Current returns the published snapshot, or nil before the first one.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Swap publishes next and returns the previous snapshot.
func (s *Store) Swap(next *Snapshot) *Snapshot {
	return s.current.Swap(next)
}
