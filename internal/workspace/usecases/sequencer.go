package usecases

import (
	"sync"
	"sync/atomic"
)

// Sequencer tags requests with increasing numbers so that only the response
// to the latest request is applied.
type Sequencer struct {
	latest atomic.Uint64
	mu     sync.Mutex
}

func (s *Sequencer) Next() uint64 {
	return s.latest.Add(1)
}

func (s *Sequencer) Latest() uint64 {
	return s.latest.Load()
}

func (s *Sequencer) IsLatest(seq uint64) bool {
	return seq == s.latest.Load()
}

// Apply runs fn only when seq is still the latest issued number. The check
// and fn run under one lock so a newer response cannot interleave.
func (s *Sequencer) Apply(seq uint64, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.IsLatest(seq) {
		return ErrStaleResponse
	}
	fn()
	return nil
}
