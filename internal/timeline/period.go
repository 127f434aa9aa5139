package timeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// unknownDate never parses, so entries built from an unreadable year fall
// back to a zero-length range.
const unknownDate = "unknown"

// Period is a year range written the way CV content spells it,
// e.g. "2017 - 2020" or "2020 - Present".
type Period struct {
	Start    int  `json:"start"`
	End      int  `json:"end"`
	Duration int  `json:"duration"`
	Ongoing  bool `json:"ongoing"`
}

// ParsePeriod reads "<start> - <end>". An end of "Present" (any case) or an
// empty end is ongoing and resolves to now's year. A period without a
// separator is a single year. Unreadable years are 0.
func ParsePeriod(period string, now time.Time) Period {
	startRaw, endRaw, found := strings.Cut(period, " - ")
	startRaw = strings.TrimSpace(startRaw)
	endRaw = strings.TrimSpace(endRaw)
	if !found {
		endRaw = startRaw
	}

	p := Period{Start: atoiOrZero(startRaw)}
	if endRaw == "" || strings.EqualFold(endRaw, "present") {
		p.End = now.UTC().Year()
		p.Ongoing = true
	} else {
		p.End = atoiOrZero(endRaw)
	}
	p.Duration = p.End - p.Start
	return p
}

// Dates returns the period as entry start and end date strings. The end is
// empty for ongoing periods.
func (p Period) Dates() (start, end string) {
	start = yearString(p.Start)
	if p.Ongoing {
		return start, ""
	}
	return start, yearString(p.End)
}

func yearString(y int) string {
	if y <= 0 || y > 9999 {
		return unknownDate
	}
	return fmt.Sprintf("%04d", y)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
