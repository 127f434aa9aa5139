package timeline

import (
	"math"
	"time"
)

const (
	DefaultTopPadding  = 20
	DefaultEntryMargin = 4
	// MinEntryHeight keeps zero-length entries visible and clickable.
	MinEntryHeight = 20
	// emptyRangeYears is the window shown when there are no entries.
	emptyRangeYears = 10
)

// Positioned is an Assignment with its pixel placement on the track.
type Positioned struct {
	Assignment
	StartY int `json:"startY"`
	Height int `json:"height"`
}

// YearRange is the span of years covered by a set of entries.
type YearRange struct {
	MinYear int `json:"minYear"`
	MaxYear int `json:"maxYear"`
}

// Years is MaxYear-MinYear, never less than 1.
func (r YearRange) Years() int {
	if d := r.MaxYear - r.MinYear; d > 0 {
		return d
	}
	return 1
}

// YearRange returns the earliest start year and latest end year of entries.
// With no entries it is the ten years ending at the current year.
func (t *Timeline) YearRange(entries []Entry) YearRange {
	now := t.Now()
	spans := make([]span, len(entries))
	for i, e := range entries {
		spans[i] = spanAt(e, now)
	}
	return rangeOf(spans, now)
}

func rangeOf(spans []span, now time.Time) YearRange {
	if len(spans) == 0 {
		y := now.Year()
		return YearRange{MinYear: y - emptyRangeYears, MaxYear: y}
	}
	r := YearRange{MinYear: math.MaxInt, MaxYear: math.MinInt}
	for _, s := range spans {
		r.MinYear = min(r.MinYear, s.start.Year())
		r.MaxYear = max(r.MaxYear, s.end.Year())
	}
	return r
}

type positionConfig struct {
	topPadding  int
	entryMargin int
}

// PositionOption tunes CalculatePositions.
type PositionOption func(*positionConfig)

// WithTopPadding sets the space above the newest year. Default 20px.
func WithTopPadding(px int) PositionOption {
	return func(c *positionConfig) { c.topPadding = px }
}

// WithEntryMargin sets the gap kept around each entry. Default 4px.
func WithEntryMargin(px int) PositionOption {
	return func(c *positionConfig) { c.entryMargin = px }
}

// CalculatePositions maps each assignment onto a track trackHeight pixels
// tall, newest on top. Heights are proportional to duration in whole years
// and never below MinEntryHeight. Output order follows assigned.
func (t *Timeline) CalculatePositions(assigned []Assignment, trackHeight int, opts ...PositionOption) []Positioned {
	cfg := positionConfig{topPadding: DefaultTopPadding, entryMargin: DefaultEntryMargin}
	for _, opt := range opts {
		opt(&cfg)
	}

	now := t.Now()
	spans := make([]span, len(assigned))
	for i, a := range assigned {
		spans[i] = spanAt(a.Entry, now)
	}
	r := rangeOf(spans, now)
	years := float64(r.Years())
	height := float64(trackHeight)

	out := make([]Positioned, len(assigned))
	for i, a := range assigned {
		startYear, endYear := spans[i].start.Year(), spans[i].end.Year()
		y := float64(r.MaxYear-endYear)/years*height + float64(cfg.topPadding+cfg.entryMargin)
		h := float64(endYear-startYear)/years*height - float64(2*cfg.entryMargin)
		out[i] = Positioned{
			Assignment: a,
			StartY:     int(math.Round(y)),
			Height:     max(int(math.Round(h)), MinEntryHeight),
		}
	}
	return out
}

// Layout is a complete timeline pass over a set of entries.
type Layout struct {
	YearRange
	Columns int          `json:"columns"`
	Entries []Positioned `json:"entries"`
}

// Layout assigns columns and positions in one pass.
func (t *Timeline) Layout(entries []Entry, trackHeight int, opts ...PositionOption) Layout {
	assigned := t.AssignColumns(entries)
	return Layout{
		YearRange: t.YearRange(entries),
		Columns:   Columns(assigned),
		Entries:   t.CalculatePositions(assigned, trackHeight, opts...),
	}
}
