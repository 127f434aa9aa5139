package mascot

import (
	"math/rand"
	"sync"
	"time"
)

type Position string

const (
	BottomRight Position = "bottom-right"
	BottomLeft  Position = "bottom-left"
	TopRight    Position = "top-right"
	TopLeft     Position = "top-left"
)

var positions = []Position{BottomRight, BottomLeft, TopRight, TopLeft}

const (
	ShowDelay    = time.Second
	ClearDelay   = 6 * time.Second
	MoveInterval = 15 * time.Second
	ScrollSettle = 200 * time.Millisecond
)

// Scheduler keys.
const (
	taskShow   = "show"
	taskClear  = "clear"
	taskMove   = "move"
	taskScroll = "scroll"
)

// State is a snapshot of what the mascot shows.
type State struct {
	Visible   bool     `json:"visible"`
	Message   string   `json:"message,omitempty"`
	Animation string   `json:"animation,omitempty"`
	Section   Section  `json:"section"`
	Position  Position `json:"position"`
}

// Mascot is safe for concurrent use: timer callbacks and scroll samples may
// arrive from different goroutines.
type Mascot struct {
	mu         sync.Mutex
	state      State
	moveAround bool
	rng        *rand.Rand
	pending    *Viewport

	sched *Scheduler
}

type Option func(*Mascot)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s *Scheduler) Option {
	return func(m *Mascot) { m.sched = s }
}

// WithMoveAround enables or disables the periodic corner change. Enabled by
// default.
func WithMoveAround(enabled bool) Option {
	return func(m *Mascot) { m.moveAround = enabled }
}

// WithRand sets the source used to pick new positions.
func WithRand(r *rand.Rand) Option {
	return func(m *Mascot) { m.rng = r }
}

// New returns a hidden mascot in the bottom right corner of the hero.
func New(opts ...Option) *Mascot {
	m := &Mascot{
		state:      State{Section: SectionHero, Position: BottomRight},
		moveAround: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.sched == nil {
		m.sched = NewScheduler(nil)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return m
}

func (m *Mascot) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start schedules the greeting, clears it a few seconds later and, when
// enabled, starts moving between corners.
func (m *Mascot) Start() {
	m.sched.Schedule(taskShow, ShowDelay, func() {
		m.Show()
		m.Say("mascot.welcome", "wave")
	})
	m.sched.Schedule(taskClear, ClearDelay, m.ClearMessage)
	if m.moveAround {
		m.sched.Every(taskMove, MoveInterval, func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.state.Position = m.otherPosition()
		})
	}
}

// Stop cancels every timer and drops any unhandled scroll sample.
func (m *Mascot) Stop() {
	m.sched.Stop()
	m.mu.Lock()
	m.pending = nil
	m.mu.Unlock()
}

func (m *Mascot) Show() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Visible = true
}

func (m *Mascot) Hide() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Visible = false
}

// Say sets the message, and the animation when one is given.
func (m *Mascot) Say(message, animation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.say(message, animation)
}

func (m *Mascot) say(message, animation string) {
	m.state.Message = message
	if animation != "" {
		m.state.Animation = animation
	}
}

func (m *Mascot) ClearMessage() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Message = ""
	m.state.Animation = ""
}

func (m *Mascot) Animate(animation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Animation = animation
}

func (m *Mascot) MoveTo(p Position) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Position = p
}

// otherPosition picks a random corner other than the current one. Call with
// mu held.
func (m *Mascot) otherPosition() Position {
	choices := make([]Position, 0, len(positions)-1)
	for _, p := range positions {
		if p != m.state.Position {
			choices = append(choices, p)
		}
	}
	return choices[m.rng.Intn(len(choices))]
}

// Scroll records a scroll sample. The first sample arms a short settle
// timer; samples arriving while it is pending only replace the viewport
// that will be handled when it fires.
func (m *Mascot) Scroll(v Viewport) {
	m.mu.Lock()
	first := m.pending == nil
	m.pending = &v
	m.mu.Unlock()

	if first {
		m.sched.Schedule(taskScroll, ScrollSettle, m.flushScroll)
	}
}

func (m *Mascot) flushScroll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending == nil {
		return
	}
	v := *m.pending
	m.pending = nil
	m.handleScroll(v)
}

// HandleScroll updates the section immediately, without throttling.
func (m *Mascot) HandleScroll(v Viewport) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handleScroll(v)
}

func (m *Mascot) handleScroll(v Viewport) {
	next := DetectSection(v, m.state.Section)
	if next != m.state.Section {
		if cue, ok := cues[next]; ok {
			m.say(cue.Message, cue.Animation)
		}
	}
	m.state.Section = next
}
