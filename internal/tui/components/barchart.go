package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/selection"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/themes"
)

const noAnchor = -1

// BarChart draws one dimension as vertical bars and brushes a contiguous
// run of them.
type BarChart struct {
	theme     themes.Theme
	brush     selection.Selection
	band      *selection.Band
	dim       dimension.Descriptor
	id        model.ViewID
	title     string
	rows      []model.AggregateRow
	width     int
	height    int
	cursor    int
	anchor    int
	refreshes int
}

// NewBarChart creates a bar chart for dim, registered as view id.
func NewBarChart(id model.ViewID, dim dimension.Descriptor, theme themes.Theme) *BarChart {
	b := &BarChart{
		id:     id,
		dim:    dim,
		title:  dim.Name,
		theme:  theme,
		band:   selection.NewBand(id, dim),
		anchor: noAnchor,
		brush:  selection.None(id),
	}
	b.SetSize(40, 10)
	return b
}

// ID implements coordinator.ViewAdapter.
func (b *BarChart) ID() model.ViewID { return b.id }

// Dimension implements coordinator.ViewAdapter.
func (b *BarChart) Dimension() (model.DimensionID, bool) { return b.dim.ID, true }

// SetData implements coordinator.ViewAdapter.
func (b *BarChart) SetData(rows []model.AggregateRow) {
	b.rows = rows
	b.band.SetDomain(model.Keys(rows))
	b.cursor = clamp(b.cursor, 0, len(rows)-1)
	if b.anchor >= len(rows) {
		b.anchor = noAnchor
	}
}

// Refresh implements coordinator.ViewAdapter. Rendering happens in View.
func (b *BarChart) Refresh() { b.refreshes++ }

// ClearBrush implements coordinator.ViewAdapter.
func (b *BarChart) ClearBrush(coordinator.Broadcast) {
	b.anchor = noAnchor
	b.brush = selection.None(b.id)
}

// Title returns the panel heading.
func (b *BarChart) Title() string { return b.title }

// SetSize sets the outer panel size.
func (b *BarChart) SetSize(width, height int) {
	b.width, b.height = innerSize(b.theme, width, height)
	b.band.SetWidth(float64(b.width))
}

// Move shifts the cursor by dx bars.
func (b *BarChart) Move(dx, _ int) Gesture {
	if len(b.rows) == 0 {
		return none()
	}
	b.cursor = clamp(b.cursor+dx, 0, len(b.rows)-1)
	if b.anchor == noAnchor {
		return none()
	}
	b.brush = b.translate(b.anchor, b.cursor)
	return Gesture{Kind: GestureMove, Selection: b.brush}
}

// Anchor starts a brush on the bar under the cursor.
func (b *BarChart) Anchor() Gesture {
	if len(b.rows) == 0 {
		return none()
	}
	b.anchor = b.cursor
	b.brush = b.translate(b.anchor, b.cursor)
	return Gesture{Kind: GestureMove, Selection: b.brush}
}

// Commit ends the brush. Without an anchor it selects the cursor bar.
func (b *BarChart) Commit() Gesture {
	if len(b.rows) == 0 {
		return none()
	}
	from := b.anchor
	if from == noAnchor {
		from = b.cursor
	}
	b.brush = b.translate(from, b.cursor)
	b.anchor = noAnchor
	return Gesture{Kind: GestureEnd, Selection: b.brush}
}

// Cancel drops the brush.
func (b *BarChart) Cancel() Gesture {
	b.anchor = noAnchor
	b.brush = selection.None(b.id)
	return Gesture{Kind: GestureClear}
}

// translate brushes bars lo..hi inclusive.
func (b *BarChart) translate(i, j int) selection.Selection {
	lo, hi := min(i, j), max(i, j)
	scale := b.band.Scale()
	return b.band.Translate(selection.PixelInterval{
		Start: scale.Start(lo),
		End:   scale.Start(hi) + scale.Bandwidth(),
	})
}

// Readout names the bar under the cursor.
func (b *BarChart) Readout() string {
	if len(b.rows) == 0 {
		return "no sightings"
	}
	row := b.rows[b.cursor]
	return fmt.Sprintf("%s: %s (%d)", b.dim.Name, row.Key.Label, row.Count)
}

// Cursor returns the key under the cursor.
func (b *BarChart) Cursor() (model.Key, bool) {
	if len(b.rows) == 0 {
		return model.Key{}, false
	}
	return b.rows[b.cursor].Key, true
}

// Anchored reports whether a brush is being dragged.
func (b *BarChart) Anchored() bool { return b.anchor != noAnchor }

// Brush returns the panel's own brush.
func (b *BarChart) Brush() selection.Selection { return b.brush }

// Rows returns the displayed rows.
func (b *BarChart) Rows() []model.AggregateRow { return b.rows }

// Refreshes returns how often the coordinator refreshed the panel.
func (b *BarChart) Refreshes() int { return b.refreshes }

// View renders the panel.
func (b *BarChart) View(focused bool) string {
	return panel(b.theme, b.title, b.plot(), fit(b.Readout(), b.width), focused)
}

func (b *BarChart) plot() string {
	if len(b.rows) == 0 {
		return b.theme.Faint.Render(fit("no sightings", b.width))
	}

	scale := b.band.Scale()
	plotRows := max(1, b.height-1)
	maxCount := 0
	for _, r := range b.rows {
		maxCount = max(maxCount, r.Count)
	}

	bandAt := make([]int, b.width)
	for x := range bandAt {
		i, ok := scale.At(float64(x) + 0.5)
		if !ok {
			i = noAnchor
		}
		bandAt[x] = i
	}

	lines := make([]string, 0, plotRows+1)
	for level := plotRows - 1; level >= 0; level-- {
		var line run
		for _, i := range bandAt {
			if i == noAnchor {
				line.add(nil, ' ')
				continue
			}
			h := scaledHeight(b.rows[i].Count, maxCount, plotRows)
			line.add(b.styleFor(i), columnGlyph(h, level))
		}
		lines = append(lines, line.String())
	}
	lines = append(lines, b.labels(scale))
	return joinLines(lines)
}

func (b *BarChart) styleFor(i int) *lipgloss.Style {
	switch {
	case i == b.cursor:
		return &b.theme.BarCursor
	case i == b.anchor:
		return &b.theme.Anchor
	case b.brush.Highlighted(b.rows[i].Key):
		return &b.theme.BarBrushed
	}
	return &b.theme.Bar
}

// labels writes each bar's label under its band, cut to the band width.
func (b *BarChart) labels(scale selection.BandScale) string {
	cells := []rune(strings.Repeat(" ", b.width))
	bw := max(1, int(scale.Bandwidth()))
	for i, row := range b.rows {
		start := int(math.Ceil(scale.Start(i)))
		for j, c := range []rune(fit(row.Key.Label, bw)) {
			if x := start + j; x >= 0 && x < len(cells) {
				cells[x] = c
			}
		}
	}
	return b.theme.Faint.Render(string(cells))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
