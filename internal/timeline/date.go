// Package timeline lays out CV entries (experiences, studies, projects) on a
// vertical, newest-on-top track. Overlapping entries are spread over lanes
// ("columns") so that no two entries sharing a lane overlap in time.
//
// All dates are evaluated in UTC. Ongoing entries (an empty end date) extend
// to the current date of the Timeline's clock, so two layouts computed at
// different times can differ.
package timeline

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// InvalidDate is returned by ParseDate for input it cannot read.
var InvalidDate = time.Time{}

var yearOnly = regexp.MustCompile(`^\d{4}$`)

// Accepted layouts for full dates, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01",
}

// Clock supplies the current time used for ongoing entries.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Timeline computes layouts relative to a clock.
type Timeline struct {
	clock Clock
}

// New returns a Timeline using clock, or the system clock when clock is nil.
func New(clock Clock) *Timeline {
	if clock == nil {
		clock = SystemClock
	}
	return &Timeline{clock: clock}
}

// Now returns the clock's current time in UTC.
func (t *Timeline) Now() time.Time {
	return t.clock.Now().UTC()
}

// ParseDate normalizes a date string:
//   - "" (ongoing) is the current date
//   - a four digit year is January 1 of that year
//   - anything else is parsed as a full date
//
// Malformed input yields InvalidDate rather than an error.
func (t *Timeline) ParseDate(s string) time.Time {
	return parseAt(s, t.Now())
}

// IsValid reports whether d is a successfully parsed date.
func IsValid(d time.Time) bool {
	return !d.IsZero()
}

func parseAt(s string, now time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return now
	}
	if yearOnly.MatchString(s) {
		year, _ := strconv.Atoi(s)
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.UTC()
		}
	}
	return InvalidDate
}

// span is an entry's resolved [start, end) range.
type span struct {
	start time.Time
	end   time.Time
}

// spanAt resolves an entry's dates. An unreadable end counts as now and an
// unreadable start collapses onto the end, leaving a zero-length range.
func spanAt(e Entry, now time.Time) span {
	end := parseAt(e.EndDate, now)
	if !IsValid(end) {
		end = now
	}
	start := parseAt(e.StartDate, now)
	if !IsValid(start) {
		start = end
	}
	return span{start: start, end: end}
}

// Range resolves e's dates the same way layouts do.
func (t *Timeline) Range(e Entry) (start, end time.Time) {
	s := spanAt(e, t.Now())
	return s.start, s.end
}

// overlaps uses half-open ranges: touching endpoints do not overlap.
func (s span) overlaps(o span) bool {
	return s.start.Before(o.end) && o.start.Before(s.end)
}
