package store

import (
	"errors"
	"sync"
)

var (
	// ErrStale is returned when a commit carries a sequence number that has
	// been superseded by a newer lookup.
	ErrStale = errors.New("stale lookup result")
)

// StateStore is a concurrency-safe holder for exactly one value of type T,
// versioned by a monotonically increasing sequence number.
type StateStore[T any] struct {
	mu sync.RWMutex

	current T
	latest  uint64 // last issued sequence number
}

// NewStateStore creates a StateStore holding initial.
func NewStateStore[T any](initial T) *StateStore[T] {
	return &StateStore[T]{current: initial}
}

// Next issues a new sequence number. Every result committed with an older
// number is discarded from now on.
func (s *StateStore[T]) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest++
	return s.latest
}

// Commit replaces the held value if seq is still the latest issued number.
// apply, when non-nil, runs under the same lock so observers of the value
// see commits in order.
func (s *StateStore[T]) Commit(seq uint64, value T, apply func(T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.latest {
		return ErrStale
	}
	s.current = value
	if apply != nil {
		apply(value)
	}
	return nil
}

// Get returns the held value.
func (s *StateStore[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Latest returns the last issued sequence number.
func (s *StateStore[T]) Latest() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latest
}
