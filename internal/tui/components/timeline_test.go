package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/testutil/records"
	tuitesting "github.com/Veraticus/the-truth-is-out-there/internal/tui/testing"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/themes"
)

func spreadTimeline(t *testing.T) *Timeline {
	t.Helper()
	tl := NewTimeline(model.ViewTimeline, themes.Default)
	tl.SetSize(44, 12)
	tl.SetData(dimension.Aggregate(records.Fixture(records.FixtureSpread), dimension.Year))
	require.Len(t, tl.Rows(), 4)
	return tl
}

func TestTimeline_CommitAtCursor(t *testing.T) {
	tl := spreadTimeline(t)

	g := tl.Commit()
	assert.Equal(t, GestureEnd, g.Kind)
	assert.Equal(t, "year 1998", g.Selection.Label)
	assert.Equal(t, []string{"1998"}, keyLabels(g.Selection.Keys))
}

func TestTimeline_BrushWholeAxis(t *testing.T) {
	tl := spreadTimeline(t)

	g := tl.Anchor()
	assert.Equal(t, GestureMove, g.Kind)
	assert.True(t, tl.Anchored())

	g = tl.Move(100, 0)
	assert.Equal(t, GestureMove, g.Kind)
	assert.Equal(t, "years 1998-2001", g.Selection.Label)

	g = tl.Commit()
	assert.Equal(t, GestureEnd, g.Kind)
	assert.False(t, tl.Anchored())
	for _, r := range records.Fixture(records.FixtureSpread) {
		assert.True(t, g.Selection.Match(r))
	}
	assert.True(t, tl.Brush().Highlighted(dimension.YearKey(2000)))
}

func TestTimeline_Readout(t *testing.T) {
	tl := spreadTimeline(t)
	assert.Equal(t, "1998: 1 Sightings", tl.Readout())

	tl.Move(100, 0)
	assert.Equal(t, 2001, tl.CursorYear())
	assert.Equal(t, "2001: 2 Sightings", tl.Readout())
}

func TestTimeline_ExtentNeverShrinks(t *testing.T) {
	tl := spreadTimeline(t)
	tl.SetData([]model.AggregateRow{{Key: dimension.YearKey(2000), Count: 1}})

	assert.Equal(t, 1998, tl.CursorYear())
	assert.Equal(t, "1998: 0 Sightings", tl.Readout())

	out := tuitesting.StripANSI(tl.View(false))
	assert.True(t, tuitesting.ContainsInOrder(out, "Sightings per year", "1998", "2001"))
}

func TestTimeline_CancelAndEmpty(t *testing.T) {
	tl := spreadTimeline(t)
	tl.Anchor()
	assert.Equal(t, GestureClear, tl.Cancel().Kind)
	assert.True(t, tl.Brush().Empty())

	empty := NewTimeline(model.ViewTimeline, themes.Default)
	assert.Equal(t, GestureNone, empty.Anchor().Kind)
	assert.Equal(t, GestureNone, empty.Commit().Kind)
	assert.Equal(t, "no sightings", empty.Readout())
}
