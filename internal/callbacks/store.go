package callbacks

import (
	"context"
	"slices"
	"sync"
)

// Kind identifies which callback route recorded a transaction.
type Kind string

const (
	// KindConfirmation is recorded by the confirm route.
	KindConfirmation Kind = "confirmation"
	// KindCancellation is recorded by the cancel route.
	KindCancellation Kind = "cancellation"
)

// Store keeps the transaction ids received by the callback routes in arrival order.
// It is safe for concurrent use.
type Store struct {
	mu            sync.Mutex
	confirmations []string
	cancellations []string
	// changed is closed and replaced on every append.
	changed chan struct{}
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		confirmations: make([]string, 0),
		cancellations: make([]string, 0),
		changed:       make(chan struct{}),
	}
}

// Record appends a transaction id to the list of the given kind.
func (s *Store) Record(kind Kind, transactionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case KindConfirmation:
		s.confirmations = append(s.confirmations, transactionID)
	case KindCancellation:
		s.cancellations = append(s.cancellations, transactionID)
	default:
		return
	}
	close(s.changed)
	s.changed = make(chan struct{})
}

// Confirmations returns a copy of the confirmed transaction ids.
func (s *Store) Confirmations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.confirmations)
}

// Cancellations returns a copy of the canceled transaction ids.
func (s *Store) Cancellations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.cancellations)
}

// Contains reports whether the transaction id was recorded with the given kind.
func (s *Store) Contains(kind Kind, transactionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(kind, transactionID)
}

// WaitFor blocks until the transaction id is recorded with the given kind or ctx is done.
// It reports whether the id was seen.
func (s *Store) WaitFor(ctx context.Context, kind Kind, transactionID string) bool {
	for {
		s.mu.Lock()
		if s.containsLocked(kind, transactionID) {
			s.mu.Unlock()
			return true
		}
		changed := s.changed
		s.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return s.Contains(kind, transactionID)
		}
	}
}

// Reset drops every recorded id.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmations = s.confirmations[:0]
	s.cancellations = s.cancellations[:0]
}

func (s *Store) containsLocked(kind Kind, transactionID string) bool {
	switch kind {
	case KindConfirmation:
		return slices.Contains(s.confirmations, transactionID)
	case KindCancellation:
		return slices.Contains(s.cancellations, transactionID)
	default:
		return false
	}
}
