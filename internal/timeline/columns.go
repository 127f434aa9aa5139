package timeline

import "sort"

// Kind classifies a timeline entry.
type Kind string

const (
	KindExperience Kind = "experience"
	KindStudy      Kind = "study"
	KindProject    Kind = "project"
	KindOther      Kind = "other"
)

// Entry is a time-ranged item on the timeline. An empty EndDate means the
// entry is ongoing.
type Entry struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Label     string `json:"label"`
}

// Assignment is an Entry placed in a lane.
type Assignment struct {
	Entry
	Column int `json:"column"`
}

// AssignColumns sorts entries by start date (stable, so ties keep input
// order) and places each one in the first lane where it overlaps none of the
// lane's occupants, opening a new lane when none qualifies. This is a greedy
// single pass; it does not backtrack to minimise lanes.
func (t *Timeline) AssignColumns(entries []Entry) []Assignment {
	now := t.Now()

	type item struct {
		entry Entry
		span  span
	}
	items := make([]item, len(entries))
	for i, e := range entries {
		items[i] = item{entry: e, span: spanAt(e, now)}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].span.start.Before(items[j].span.start)
	})

	var lanes [][]span
	out := make([]Assignment, 0, len(items))
	for _, it := range items {
		col := 0
		for col < len(lanes) && laneOverlaps(lanes[col], it.span) {
			col++
		}
		if col == len(lanes) {
			lanes = append(lanes, nil)
		}
		lanes[col] = append(lanes[col], it.span)
		out = append(out, Assignment{Entry: it.entry, Column: col})
	}
	return out
}

func laneOverlaps(lane []span, s span) bool {
	for _, occupant := range lane {
		if occupant.overlaps(s) {
			return true
		}
	}
	return false
}

// Columns returns the number of lanes used by assigned.
func Columns(assigned []Assignment) int {
	n := 0
	for _, a := range assigned {
		if a.Column+1 > n {
			n = a.Column + 1
		}
	}
	return n
}
