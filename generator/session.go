package generator

import "sync"

// Session holds the most recent Result. The zero value is ready to use and
// safe for concurrent use.
type Session struct {
	mu   sync.RWMutex
	last *Result
}

// Store replaces the last result.
func (s *Session) Store(r *Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = r
}

// Last returns the last result and whether one is stored.
func (s *Session) Last() (*Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.last != nil
}

// Clear forgets the last result.
func (s *Session) Clear() {
	s.Store(nil)
}
