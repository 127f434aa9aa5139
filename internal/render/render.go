// Package render draws a timeline layout as plain text, one row per year with
// the newest year on top and one lane per column.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/Zachkp/folio/internal/timeline"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

const (
	continuation = "|"
	ellipsis     = "…"
)

// TerminalWidth returns the width of f when it is a terminal, DefaultWidth
// otherwise.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

type cell struct {
	label       string
	first, last int // years covered, first <= last
	labelled    bool
	start       time.Time
}

// Timeline writes layout to w. Every row is exactly width cells wide, unless
// width is too small to fit a character per lane, in which case the minimum
// is used instead.
func Timeline(w io.Writer, tl *timeline.Timeline, layout timeline.Layout, width int) error {
	prefixWidth := runewidth.StringWidth(rowPrefix(layout.MaxYear))
	lanes := max(layout.Columns, 0)
	width = max(width, prefixWidth+lanes)

	laneWidth := 0
	if lanes > 0 {
		laneWidth = (width - prefixWidth) / lanes
	}

	byLane := make([][]*cell, lanes)
	for _, e := range layout.Entries {
		if e.Column < 0 || e.Column >= lanes {
			continue
		}
		byLane[e.Column] = append(byLane[e.Column], coverage(tl, e))
	}

	bw := bufio.NewWriter(w)
	for year := layout.MaxYear; year >= layout.MinYear; year-- {
		var row strings.Builder
		row.WriteString(rowPrefix(year))
		for _, cells := range byLane {
			row.WriteString(runewidth.FillRight(laneText(cells, year, laneWidth), laneWidth))
		}
		line := runewidth.FillRight(row.String(), width)
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func rowPrefix(year int) string {
	return fmt.Sprintf("%4d | ", year)
}

// laneText picks the newest entry covering year. An entry's label goes on the
// first row it owns; later rows show a continuation mark.
func laneText(cells []*cell, year, width int) string {
	var owner *cell
	for _, c := range cells {
		if year < c.first || year > c.last {
			continue
		}
		if owner == nil || c.start.After(owner.start) {
			owner = c
		}
	}
	if owner == nil || width == 0 {
		return ""
	}
	if owner.labelled || width == 1 {
		return continuation
	}
	owner.labelled = true
	// Keep one trailing space between neighbouring lanes.
	return runewidth.Truncate(owner.label, width-1, ellipsis)
}

func coverage(tl *timeline.Timeline, e timeline.Positioned) *cell {
	start, end := tl.Range(e.Entry)
	last := end.Year()
	// An end on January 1st is exclusive, the entry stops with the year before.
	if end.After(start) && end.YearDay() == 1 && end.Hour() == 0 && end.Minute() == 0 {
		last--
	}
	return &cell{
		label: e.Label,
		first: start.Year(),
		last:  max(last, start.Year()),
		start: start,
	}
}
