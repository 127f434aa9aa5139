package mascot

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock fires timers on Advance instead of on the wall clock.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
	// leaky timers keep firing after Stop, like a time.Timer whose
	// callback was already running when Stop was called.
	leaky bool
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
	leaky   bool
}

func (t *fakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	if t.leaky {
		return false
	}
	t.stopped = true
	return true
}

func (c *fakeClock) After(d time.Duration, fn func()) Timer {
	t := &fakeTimer{at: c.now + d, fn: fn, leaky: c.leaky}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.fired || t.stopped || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			break
		}
		c.now = next.at
		next.fired = true
		next.fn()
	}
	c.now = target
}

func (c *fakeClock) created() int {
	return len(c.timers)
}

func newTestMascot(opts ...Option) (*Mascot, *fakeClock) {
	clock := &fakeClock{}
	opts = append([]Option{WithScheduler(NewScheduler(clock.After)), WithRand(rand.New(rand.NewSource(1)))}, opts...)
	return New(opts...), clock
}

func page() Viewport {
	return Viewport{
		WindowHeight:   800,
		DocumentHeight: 5000,
		Sections: map[Section]Bounds{
			SectionIntro:       {Top: 800, Height: 600},
			SectionExperiences: {Top: 1400, Height: 1200},
			SectionProjects:    {Top: 2600, Height: 1200},
			SectionOther:       {Top: 3800, Height: 600},
		},
	}
}

func at(v Viewport, scrollY float64) Viewport {
	v.ScrollY = scrollY
	return v
}

func TestDetectSection(t *testing.T) {
	tests := []struct {
		name    string
		scrollY float64
		current Section
		want    Section
	}{
		{name: "top of hero", scrollY: 0, current: SectionProjects, want: SectionHero},
		{name: "lower hero", scrollY: 500, current: SectionHero, want: SectionHeroBottom},
		{name: "intro", scrollY: 900, current: SectionHero, want: SectionIntro},
		{name: "experiences", scrollY: 1500, current: SectionIntro, want: SectionExperiences},
		{name: "projects", scrollY: 3000, current: SectionIntro, want: SectionProjects},
		{name: "other", scrollY: 4000, current: SectionIntro, want: SectionOther},
		{name: "inside last section", scrollY: 4150, current: SectionOther, want: SectionOther},
		{name: "past every section", scrollY: 4450, current: SectionOther, want: SectionEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSection(at(page(), tt.scrollY), tt.current))
		})
	}
}

func TestDetectSectionMissingSections(t *testing.T) {
	v := Viewport{ScrollY: 1500, WindowHeight: 800, DocumentHeight: 10000}
	assert.Equal(t, SectionIntro, DetectSection(v, SectionIntro), "keeps current when nothing is available")

	v.Sections = map[Section]Bounds{SectionProjects: {Top: 1000, Height: 2000}}
	assert.Equal(t, SectionProjects, DetectSection(v, SectionIntro))
}

func TestStartSequence(t *testing.T) {
	m, clock := newTestMascot()
	m.Start()

	clock.Advance(999 * time.Millisecond)
	assert.False(t, m.State().Visible)

	clock.Advance(time.Millisecond)
	state := m.State()
	assert.True(t, state.Visible)
	assert.Equal(t, "mascot.welcome", state.Message)
	assert.Equal(t, "wave", state.Animation)

	clock.Advance(5 * time.Second)
	state = m.State()
	assert.True(t, state.Visible)
	assert.Empty(t, state.Message)
	assert.Empty(t, state.Animation)
	assert.Equal(t, BottomRight, state.Position)

	clock.Advance(9 * time.Second)
	first := m.State().Position
	assert.NotEqual(t, BottomRight, first)

	clock.Advance(MoveInterval)
	assert.NotEqual(t, first, m.State().Position)
}

func TestStartWithoutMoveAround(t *testing.T) {
	m, clock := newTestMascot(WithMoveAround(false))
	m.Start()

	clock.Advance(time.Minute)
	assert.Equal(t, BottomRight, m.State().Position)
	assert.True(t, m.State().Visible)
}

func TestStopCancelsTimers(t *testing.T) {
	m, clock := newTestMascot()
	m.Start()
	m.Scroll(at(page(), 1500))

	m.Stop()
	clock.Advance(time.Minute)

	state := m.State()
	assert.False(t, state.Visible)
	assert.Equal(t, BottomRight, state.Position)
	assert.Equal(t, SectionHero, state.Section)

	m.Scroll(at(page(), 1500))
	clock.Advance(ScrollSettle)
	assert.Equal(t, SectionExperiences, m.State().Section, "scrolling works again after stop")
}

func TestScrollIsThrottled(t *testing.T) {
	m, clock := newTestMascot()

	m.Scroll(at(page(), 500))
	m.Scroll(at(page(), 900))
	m.Scroll(at(page(), 1500))
	assert.Equal(t, 1, clock.created(), "one settle timer for a burst")
	assert.Equal(t, SectionHero, m.State().Section)

	clock.Advance(ScrollSettle)
	state := m.State()
	assert.Equal(t, SectionExperiences, state.Section, "latest sample wins")
	assert.Equal(t, "mascot.checkExperience", state.Message)
	assert.Equal(t, "point-up", state.Animation)

	m.Scroll(at(page(), 3000))
	assert.Equal(t, 2, clock.created())
	clock.Advance(ScrollSettle)
	assert.Equal(t, SectionProjects, m.State().Section)
}

func TestHandleScrollOnlyCuesOnSectionChange(t *testing.T) {
	m, _ := newTestMascot()

	m.HandleScroll(at(page(), 900))
	assert.Equal(t, "mascot.keepGoing", m.State().Message)

	m.ClearMessage()
	m.HandleScroll(at(page(), 1000))
	assert.Equal(t, SectionIntro, m.State().Section)
	assert.Empty(t, m.State().Message, "no repeat cue inside the same section")

	m.HandleScroll(at(page(), 4500))
	assert.Equal(t, SectionEnd, m.State().Section)
	assert.Equal(t, "mascot.goodbye", m.State().Message)
}

func TestSayKeepsAnimationWhenEmpty(t *testing.T) {
	m, _ := newTestMascot()
	m.Animate("bounce")
	m.Say("hello", "")

	state := m.State()
	assert.Equal(t, "hello", state.Message)
	assert.Equal(t, "bounce", state.Animation)

	m.Hide()
	assert.False(t, m.State().Visible)
	m.MoveTo(TopLeft)
	assert.Equal(t, TopLeft, m.State().Position)
}

func TestCueFor(t *testing.T) {
	for _, s := range []Section{SectionHero, SectionHeroBottom, SectionIntro, SectionExperiences, SectionProjects, SectionOther, SectionEnd} {
		cue, ok := CueFor(s)
		require.True(t, ok, s)
		assert.NotEmpty(t, cue.Message)
		assert.NotEmpty(t, cue.Animation)
	}
	_, ok := CueFor("nowhere")
	assert.False(t, ok)
}
