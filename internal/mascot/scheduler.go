package mascot

import (
	"sync"
	"time"
)

// Timer is a scheduled callback that can be stopped.
type Timer interface {
	Stop() bool
}

// AfterFunc arranges for fn to run once after d.
type AfterFunc func(d time.Duration, fn func()) Timer

func systemAfter(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Scheduler runs named, cancellable timers. Every key carries a generation
// number that is bumped whenever the key is rescheduled or cancelled; a
// callback only runs if its generation is still current, so a timer that
// fires after being superseded is a no-op even if Stop lost the race.
type Scheduler struct {
	mu     sync.Mutex
	after  AfterFunc
	gens   map[string]uint64
	timers map[string]Timer
}

// NewScheduler returns a Scheduler backed by after, or by time.AfterFunc
// when after is nil.
func NewScheduler(after AfterFunc) *Scheduler {
	if after == nil {
		after = systemAfter
	}
	return &Scheduler{
		after:  after,
		gens:   make(map[string]uint64),
		timers: make(map[string]Timer),
	}
}

// Schedule runs fn once after d, superseding any pending task under key.
func (s *Scheduler) Schedule(key string, d time.Duration, fn func()) {
	s.arm(key, d, fn, false)
}

// Every runs fn every d until key is cancelled, rescheduled or the
// scheduler is stopped.
func (s *Scheduler) Every(key string, d time.Duration, fn func()) {
	s.arm(key, d, fn, true)
}

// Cancel drops the task under key, if any.
func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidate(key)
}

// Stop cancels every task.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.timers {
		s.invalidate(key)
	}
}

// Pending reports whether a task is waiting under key.
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[key]
	return ok
}

func (s *Scheduler) arm(key string, d time.Duration, fn func(), repeat bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidate(key)
	s.start(key, s.gens[key], d, fn, repeat)
}

// start must be called with mu held.
func (s *Scheduler) start(key string, gen uint64, d time.Duration, fn func(), repeat bool) {
	s.timers[key] = s.after(d, func() { s.fire(key, gen, d, fn, repeat) })
}

// invalidate must be called with mu held.
func (s *Scheduler) invalidate(key string) {
	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
	s.gens[key]++
}

func (s *Scheduler) fire(key string, gen uint64, d time.Duration, fn func(), repeat bool) {
	s.mu.Lock()
	if s.gens[key] != gen {
		s.mu.Unlock()
		return
	}
	if !repeat {
		delete(s.timers, key)
	}
	s.mu.Unlock()

	fn()

	if repeat {
		s.mu.Lock()
		if s.gens[key] == gen {
			s.start(key, gen, d, fn, repeat)
		}
		s.mu.Unlock()
	}
}
