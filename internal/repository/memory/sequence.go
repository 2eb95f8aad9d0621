package memory

import (
	"context"
	"sync"
)

// Sequence is an in-memory identifier allocator. First Next returns 0.
type Sequence struct {
	mu   sync.Mutex
	next uint64
}

// NewSequence constructs a sequence starting at 0.
func NewSequence() *Sequence { return &Sequence{} }

// Next returns the current value and advances the counter.
func (s *Sequence) Next(_ context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id, nil
}
