package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/selection"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/themes"
)

// Timeline draws sightings per year across the panel width. The year
// extent only ever grows, so filtering never rescales the axis.
type Timeline struct {
	theme     themes.Theme
	brush     selection.Selection
	series    *selection.TimeSeries
	counts    map[int]int
	id        model.ViewID
	rows      []model.AggregateRow
	minYear   int
	maxYear   int
	width     int
	height    int
	cursor    int
	anchor    int
	refreshes int
	hasExtent bool
}

// NewTimeline creates the year panel.
func NewTimeline(id model.ViewID, theme themes.Theme) *Timeline {
	t := &Timeline{
		id:     id,
		theme:  theme,
		series: selection.NewTimeSeries(id),
		counts: make(map[int]int),
		anchor: noAnchor,
		brush:  selection.None(id),
	}
	t.SetSize(80, 10)
	return t
}

// ID implements coordinator.ViewAdapter.
func (t *Timeline) ID() model.ViewID { return t.id }

// Dimension implements coordinator.ViewAdapter.
func (t *Timeline) Dimension() (model.DimensionID, bool) { return model.DimensionYear, true }

// SetData implements coordinator.ViewAdapter.
func (t *Timeline) SetData(rows []model.AggregateRow) {
	t.rows = rows
	t.counts = make(map[int]int, len(rows))
	for _, r := range rows {
		t.counts[r.Key.Ordinal] = r.Count
		if !t.hasExtent {
			t.minYear, t.maxYear, t.hasExtent = r.Key.Ordinal, r.Key.Ordinal, true
		}
		t.minYear = min(t.minYear, r.Key.Ordinal)
		t.maxYear = max(t.maxYear, r.Key.Ordinal)
	}
	t.series.SetDomain(t.minYear, t.maxYear)
}

// Refresh implements coordinator.ViewAdapter.
func (t *Timeline) Refresh() { t.refreshes++ }

// ClearBrush implements coordinator.ViewAdapter.
func (t *Timeline) ClearBrush(coordinator.Broadcast) {
	t.anchor = noAnchor
	t.brush = selection.None(t.id)
}

// Title returns the panel heading.
func (t *Timeline) Title() string { return "Sightings per year" }

// SetSize sets the outer panel size.
func (t *Timeline) SetSize(width, height int) {
	t.width, t.height = innerSize(t.theme, width, height)
	t.series.SetWidth(float64(t.width))
	t.cursor = clamp(t.cursor, 0, t.width-1)
	if t.anchor >= t.width {
		t.anchor = noAnchor
	}
}

// Move shifts the cursor by dx columns.
func (t *Timeline) Move(dx, _ int) Gesture {
	t.cursor = clamp(t.cursor+dx, 0, t.width-1)
	if t.anchor == noAnchor {
		return none()
	}
	t.brush = t.translate(t.anchor, t.cursor)
	return Gesture{Kind: GestureMove, Selection: t.brush}
}

// Anchor starts a brush at the cursor column.
func (t *Timeline) Anchor() Gesture {
	if !t.hasExtent {
		return none()
	}
	t.anchor = t.cursor
	t.brush = t.translate(t.anchor, t.cursor)
	return Gesture{Kind: GestureMove, Selection: t.brush}
}

// Commit ends the brush. Without an anchor it selects the cursor column.
func (t *Timeline) Commit() Gesture {
	if !t.hasExtent {
		return none()
	}
	from := t.anchor
	if from == noAnchor {
		from = t.cursor
	}
	t.brush = t.translate(from, t.cursor)
	t.anchor = noAnchor
	return Gesture{Kind: GestureEnd, Selection: t.brush}
}

// Cancel drops the brush.
func (t *Timeline) Cancel() Gesture {
	t.anchor = noAnchor
	t.brush = selection.None(t.id)
	return Gesture{Kind: GestureClear}
}

// translate covers columns lo..hi inclusive.
func (t *Timeline) translate(i, j int) selection.Selection {
	return t.series.Translate(selection.PixelInterval{
		Start: float64(min(i, j)),
		End:   float64(max(i, j) + 1),
	})
}

// yearAt returns the year nearest to the center of column x.
func (t *Timeline) yearAt(x int) int {
	return int(math.Round(t.series.Scale().Invert(float64(x) + 0.5)))
}

// Readout names the year under the cursor.
func (t *Timeline) Readout() string {
	if !t.hasExtent {
		return "no sightings"
	}
	year := t.yearAt(t.cursor)
	return fmt.Sprintf("%d: %d Sightings", year, t.counts[year])
}

// CursorYear returns the year under the cursor.
func (t *Timeline) CursorYear() int { return t.yearAt(t.cursor) }

// Anchored reports whether a brush is being dragged.
func (t *Timeline) Anchored() bool { return t.anchor != noAnchor }

// Brush returns the panel's own brush.
func (t *Timeline) Brush() selection.Selection { return t.brush }

// Rows returns the displayed rows.
func (t *Timeline) Rows() []model.AggregateRow { return t.rows }

// Refreshes returns how often the coordinator refreshed the panel.
func (t *Timeline) Refreshes() int { return t.refreshes }

// View renders the panel.
func (t *Timeline) View(focused bool) string {
	return panel(t.theme, t.Title(), t.plot(), fit(t.Readout(), t.width), focused)
}

func (t *Timeline) plot() string {
	if !t.hasExtent {
		return t.theme.Faint.Render(fit("no sightings", t.width))
	}

	plotRows := max(1, t.height-1)
	years := make([]int, t.width)
	maxCount := 0
	for x := range years {
		years[x] = t.yearAt(x)
		maxCount = max(maxCount, t.counts[years[x]])
	}

	lines := make([]string, 0, plotRows+1)
	for level := plotRows - 1; level >= 0; level-- {
		var line run
		for x, year := range years {
			h := scaledHeight(t.counts[year], maxCount, plotRows)
			line.add(t.styleFor(x, year), columnGlyph(h, level))
		}
		lines = append(lines, line.String())
	}
	lines = append(lines, t.axis())
	return joinLines(lines)
}

func (t *Timeline) styleFor(x, year int) *lipgloss.Style {
	switch {
	case x == t.cursor:
		return &t.theme.BarCursor
	case x == t.anchor:
		return &t.theme.Anchor
	case t.brush.Highlighted(dimension.YearKey(year)):
		return &t.theme.BarBrushed
	}
	return &t.theme.Bar
}

// axis prints the first and last year at the panel edges.
func (t *Timeline) axis() string {
	lo, hi := fmt.Sprint(t.minYear), fmt.Sprint(t.maxYear)
	gap := t.width - len(lo) - len(hi)
	if gap < 1 {
		return t.theme.Faint.Render(fit(lo, t.width))
	}
	return t.theme.Faint.Render(lo + fmt.Sprintf("%*s", gap, "") + hi)
}
