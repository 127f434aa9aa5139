// Package splash holds the splash screen's visibility and the work queued
// to run once it is dismissed.
package splash

import "sync"

// Screen starts visible. Use one Screen per page load; Reset returns it to
// that state.
type Screen struct {
	mu      sync.Mutex
	hidden  bool
	pending []func()
}

func (s *Screen) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.hidden
}

// Hide dismisses the splash and runs the queued callbacks in registration
// order.
func (s *Screen) Hide() {
	s.mu.Lock()
	s.hidden = true
	queued := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range queued {
		fn()
	}
}

// Show displays the splash again.
func (s *Screen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden = false
}

// OnHidden runs fn once the splash is hidden: immediately if it already is,
// otherwise on the next Hide.
func (s *Screen) OnHidden(fn func()) {
	s.mu.Lock()
	if s.hidden {
		s.mu.Unlock()
		fn()
		return
	}
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// Reset makes the splash visible and drops queued callbacks.
func (s *Screen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden = false
	s.pending = nil
}
