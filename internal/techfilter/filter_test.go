package techfilter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "Vue.js", want: []string{"Vue.js"}},
		{name: "several", raw: "Vue.js,React,TypeScript", want: []string{"Vue.js", "React", "TypeScript"}},
		{name: "empty segments dropped", raw: ",Go,,Rust,", want: []string{"Go", "Rust"}},
		{name: "duplicates collapsed", raw: "Go,Go", want: []string{"Go"}},
		{name: "only commas", raw: ",,,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Parse(tt.raw)
			if tt.want == nil {
				assert.Empty(t, f.Selected())
				assert.False(t, f.Active())
				return
			}
			assert.Equal(t, tt.want, f.Selected())
		})
	}
}

func TestToggle(t *testing.T) {
	f := &Filter{}

	f.Toggle("Vue.js")
	assert.Equal(t, []string{"Vue.js"}, f.Selected())

	f.Toggle("React")
	assert.Equal(t, []string{"Vue.js", "React"}, f.Selected())

	f.Toggle("Vue.js")
	assert.Equal(t, []string{"React"}, f.Selected())

	f.Toggle("React")
	assert.Empty(t, f.Selected())
	assert.False(t, f.Active())
}

func TestToggleTwiceRestoresEmpty(t *testing.T) {
	f := Parse("")
	f.Toggle("Vue.js")
	f.Toggle("Vue.js")

	assert.Empty(t, f.Selected())
	assert.Equal(t, "", f.String())
}

func TestIsSelectedAndClear(t *testing.T) {
	f := Parse("Vue.js")

	assert.True(t, f.IsSelected("Vue.js"))
	assert.False(t, f.IsSelected("React"))
	assert.False(t, f.IsSelected("vue.js"))

	f.Clear()
	assert.False(t, f.IsSelected("Vue.js"))
	assert.False(t, f.Active())
}

func TestShouldShow(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		item     []string
		want     bool
	}{
		{name: "no filter shows everything", selected: "", item: []string{"React"}, want: true},
		{name: "no filter shows items without techs", selected: "", item: nil, want: true},
		{name: "match", selected: "Vue.js", item: []string{"Vue.js", "TypeScript"}, want: true},
		{name: "no match", selected: "Vue.js", item: []string{"React", "JavaScript"}, want: false},
		{name: "any selected tech is enough", selected: "Vue.js,React", item: []string{"React"}, want: true},
		{name: "item without techs hidden while filtering", selected: "Go", item: []string{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.selected).ShouldShow(tt.item))
		})
	}
}

type item struct {
	id    int
	techs []string
}

func TestKeep(t *testing.T) {
	items := []item{
		{id: 1, techs: []string{"Vue.js"}},
		{id: 2, techs: []string{"React"}},
		{id: 3, techs: []string{"TypeScript"}},
		{id: 4, techs: []string{"Go", "Vue.js"}},
	}
	techs := func(i item) []string { return i.techs }

	ids := func(items []item) []int {
		out := make([]int, len(items))
		for i, it := range items {
			out[i] = it.id
		}
		return out
	}

	assert.Equal(t, []int{1, 2, 4}, ids(Keep(Parse("Vue.js,React"), items, techs)))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(Keep(Parse(""), items, techs)))
}

func TestQueryRoundTrip(t *testing.T) {
	query, err := url.ParseQuery("tenant=acme&techs=Vue.js,React")
	require.NoError(t, err)

	f := FromQuery(query)
	assert.Equal(t, []string{"Vue.js", "React"}, f.Selected())

	f.Toggle("Go")
	f.Apply(query)
	assert.Equal(t, "Vue.js,React,Go", query.Get(QueryParam))
	assert.Equal(t, "acme", query.Get("tenant"))
	assert.Len(t, query[QueryParam], 1)

	f.Clear()
	f.Apply(query)
	_, present := query[QueryParam]
	assert.False(t, present)
	assert.Equal(t, "acme", query.Get("tenant"))
}
