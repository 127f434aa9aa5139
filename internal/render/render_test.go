package render

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/tenant"
	"github.com/Zachkp/folio/internal/timeline"
)

var fixedNow = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func renderDefault(t *testing.T, width int) []string {
	t.Helper()
	tl := timeline.New(timeline.ClockFunc(func() time.Time { return fixedNow }))
	def := tenant.Default()
	layout := tl.Layout(def.TimelineEntries(tl.Now()), 800)

	var buf bytes.Buffer
	require.NoError(t, Timeline(&buf, tl, layout, width))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestTimelineRows(t *testing.T) {
	lines := renderDefault(t, 60)
	require.Len(t, lines, 14, "2025 down to 2012")

	for _, l := range lines {
		assert.Equal(t, 60, runewidth.StringWidth(l), l)
	}

	assert.True(t, strings.HasPrefix(lines[0], "2025 | Senior Software Architect"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "2012 | "))

	row := func(year int) string { return lines[2025-year] }
	assert.Contains(t, row(2022), "E-Commerce Platform")
	assert.Contains(t, row(2021), "Mobile Banking App")
	assert.Contains(t, row(2020), "Cloud Infrastructure")
	assert.True(t, strings.HasPrefix(row(2020), "2020 | |"), "ongoing entry continues below its label")
	assert.Contains(t, row(2019), "Full Stack Developer")
	assert.Contains(t, row(2014), "Bachelor of Science", "labels sit on the newest year an entry covers")
	assert.True(t, strings.HasPrefix(row(2012), "2012 | |"))
}

func TestTimelineTruncatesLabels(t *testing.T) {
	lines := renderDefault(t, 20)
	for _, l := range lines {
		assert.Equal(t, 20, runewidth.StringWidth(l), l)
	}
	assert.Contains(t, lines[0], ellipsis)
	assert.NotContains(t, lines[0], "Architect")
}

func TestTimelineMinimumWidth(t *testing.T) {
	lines := renderDefault(t, 3)
	for _, l := range lines {
		assert.Equal(t, len("2025 | ")+2, runewidth.StringWidth(l), l)
	}
}

func TestTimelineEmpty(t *testing.T) {
	tl := timeline.New(timeline.ClockFunc(func() time.Time { return fixedNow }))

	var buf bytes.Buffer
	require.NoError(t, Timeline(&buf, tl, tl.Layout(nil, 800), DefaultWidth))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "2025 |", strings.TrimSpace(lines[0]))
}

func TestTerminalWidthFallback(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, DefaultWidth, TerminalWidth(f))
}
