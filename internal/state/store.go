package state

import "sync"

// Store coordinates concurrent access to the shared State. The poller and
// the config watcher both mutate it; the UI reads snapshots.
//
// The contract is narrow on purpose: no network or file I/O happens while
// the lock is held, so every critical section is a bounded in-memory
// operation. A Snapshot taken concurrently with a Mutate observes either
// the fully-pre or fully-post state, never a mix.
type Store struct {
	mu sync.RWMutex
	st State
}

// NewStore builds a Store seeded with the initial state.
func NewStore(initial State) *Store {
	return &Store{st: initial.Clone()}
}

// Snapshot returns a deep copy of the current state. Callers may keep or
// modify it freely without affecting the store.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Clone()
}

// Mutate applies fn under the exclusive lock. fn must be a pure in-memory
// operation; concurrent Mutate calls are serialized.
func (s *Store) Mutate(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.st)
}
