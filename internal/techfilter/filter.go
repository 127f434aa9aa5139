// Package techfilter narrows CV items down to the technologies a visitor
// picked. The selection lives in the "techs" query parameter as a comma
// separated list, so filtered views can be linked and bookmarked.
package techfilter

import (
	"net/url"
	"slices"
	"strings"
)

// QueryParam is the query field holding the selection.
const QueryParam = "techs"

// Filter is an ordered set of selected technology names. The zero value is
// an empty selection, which shows everything.
type Filter struct {
	selected []string
}

// Parse reads a comma joined selection, dropping empty segments.
func Parse(raw string) *Filter {
	f := &Filter{}
	for _, tech := range strings.Split(raw, ",") {
		tech = strings.TrimSpace(tech)
		if tech != "" && !f.IsSelected(tech) {
			f.selected = append(f.selected, tech)
		}
	}
	return f
}

// FromQuery reads the selection from query.
func FromQuery(query url.Values) *Filter {
	return Parse(query.Get(QueryParam))
}

// String joins the selection with commas, in selection order.
func (f *Filter) String() string {
	return strings.Join(f.selected, ",")
}

// Apply writes the selection into query, replacing any previous value and
// removing the field when nothing is selected.
func (f *Filter) Apply(query url.Values) {
	if !f.Active() {
		query.Del(QueryParam)
		return
	}
	query.Set(QueryParam, f.String())
}

// Selected returns a copy of the selection.
func (f *Filter) Selected() []string {
	return slices.Clone(f.selected)
}

// Active reports whether any technology is selected.
func (f *Filter) Active() bool {
	return len(f.selected) > 0
}

func (f *Filter) IsSelected(tech string) bool {
	return slices.Contains(f.selected, tech)
}

// Toggle selects tech if it is not selected and deselects it otherwise.
func (f *Filter) Toggle(tech string) {
	if i := slices.Index(f.selected, tech); i >= 0 {
		f.selected = slices.Delete(f.selected, i, i+1)
		return
	}
	f.selected = append(f.selected, tech)
}

func (f *Filter) Clear() {
	f.selected = nil
}

// ShouldShow reports whether an item using itemTechs passes the filter.
// Everything passes an empty selection. Otherwise an item passes when it
// uses any selected technology, so an item without technologies is hidden.
func (f *Filter) ShouldShow(itemTechs []string) bool {
	if !f.Active() {
		return true
	}
	for _, tech := range itemTechs {
		if f.IsSelected(tech) {
			return true
		}
	}
	return false
}

// Keep returns the items whose technologies pass f, preserving order.
func Keep[T any](f *Filter, items []T, techs func(T) []string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f.ShouldShow(techs(item)) {
			out = append(out, item)
		}
	}
	return out
}
