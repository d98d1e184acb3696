package components

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	"github.com/Veraticus/the-truth-is-out-there/internal/debounce"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/selection"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/themes"
)

// DefaultAnchorTimeout is how long a first map corner waits for the second.
const DefaultAnchorTimeout = 3 * time.Second

// extentPad widens the map extent so edge points stay strictly inside a
// rectangle that covers the outermost cells.
const extentPad = 0.5

// ColorMode picks the field map markers are colored by.
type ColorMode int

// Color modes, in cycling order.
const (
	ColorByYear ColorMode = iota
	ColorByMonth
	ColorByTimeOfDay
	ColorByCategory
)

var colorModeNames = []string{"year", "month", "timeOfDay", "category"}

func (c ColorMode) String() string {
	if c < 0 || int(c) >= len(colorModeNames) {
		return "unknown"
	}
	return colorModeNames[c]
}

// ParseColorMode converts a configured name into a ColorMode.
func ParseColorMode(s string) (ColorMode, bool) {
	for i, name := range colorModeNames {
		if strings.EqualFold(name, s) {
			return ColorMode(i), true
		}
	}
	return ColorByYear, false
}

type cell struct {
	x, y int
}

// GeoMap plots sightings on a lat/lng grid. A rectangle brush takes two
// corners; a first corner left alone expires after the anchor timeout.
type GeoMap struct {
	theme     themes.Theme
	brush     selection.Selection
	geo       *selection.Geo
	expire    *debounce.Delay
	corner    *cell
	id        model.ViewID
	points    []model.Record
	lat       selection.LinearScale
	lng       selection.LinearScale
	yearLo    float64
	yearHi    float64
	cursor    cell
	width     int
	height    int
	refreshes int
	color     ColorMode
	hasExtent bool
}

// NewGeoMap creates the map panel. Corner expiry runs on sched.
func NewGeoMap(id model.ViewID, theme themes.Theme, sched debounce.Scheduler, anchorTimeout time.Duration) *GeoMap {
	if anchorTimeout <= 0 {
		anchorTimeout = DefaultAnchorTimeout
	}
	g := &GeoMap{
		id:     id,
		theme:  theme,
		geo:    selection.NewGeo(id),
		expire: debounce.NewDelay(sched, anchorTimeout),
		brush:  selection.None(id),
	}
	g.SetSize(60, 20)
	return g
}

// ID implements coordinator.ViewAdapter.
func (g *GeoMap) ID() model.ViewID { return g.id }

// Dimension implements coordinator.ViewAdapter. The map owns none.
func (g *GeoMap) Dimension() (model.DimensionID, bool) { return "", false }

// SetData implements coordinator.ViewAdapter; the map draws points only.
func (g *GeoMap) SetData([]model.AggregateRow) {}

// SetPoints implements coordinator.PointSink. The first non-empty set
// fixes the extent and the color ramps.
func (g *GeoMap) SetPoints(records []model.Record) {
	g.points = records
	if g.hasExtent || len(records) == 0 {
		return
	}

	minLat, maxLat := records[0].Latitude, records[0].Latitude
	minLng, maxLng := records[0].Longitude, records[0].Longitude
	g.yearLo, g.yearHi = float64(records[0].Year), float64(records[0].Year)
	for _, r := range records[1:] {
		minLat, maxLat = math.Min(minLat, r.Latitude), math.Max(maxLat, r.Latitude)
		minLng, maxLng = math.Min(minLng, r.Longitude), math.Max(maxLng, r.Longitude)
		g.yearLo = math.Min(g.yearLo, float64(r.Year))
		g.yearHi = math.Max(g.yearHi, float64(r.Year))
	}

	g.lat.Domain = [2]float64{minLat - extentPad, maxLat + extentPad}
	g.lng.Domain = [2]float64{minLng - extentPad, maxLng + extentPad}
	g.hasExtent = true
}

// Refresh implements coordinator.ViewAdapter.
func (g *GeoMap) Refresh() { g.refreshes++ }

// ClearBrush implements coordinator.ViewAdapter.
func (g *GeoMap) ClearBrush(coordinator.Broadcast) {
	g.expire.Cancel()
	g.corner = nil
	g.brush = selection.None(g.id)
}

// Title returns the panel heading.
func (g *GeoMap) Title() string { return "Map" }

// SetSize sets the outer panel size.
func (g *GeoMap) SetSize(width, height int) {
	g.width, g.height = innerSize(g.theme, width, height)
	g.lng.Range = [2]float64{0, float64(g.width)}
	g.lat.Range = [2]float64{float64(g.height), 0}
	g.cursor.x = clamp(g.cursor.x, 0, g.width-1)
	g.cursor.y = clamp(g.cursor.y, 0, g.height-1)
}

// Move shifts the cursor. Rectangle brushes do not emit while moving.
func (g *GeoMap) Move(dx, dy int) Gesture {
	g.cursor.x = clamp(g.cursor.x+dx, 0, g.width-1)
	g.cursor.y = clamp(g.cursor.y+dy, 0, g.height-1)
	return none()
}

// Anchor places the first corner, or completes the rectangle when one is
// already placed.
func (g *GeoMap) Anchor() Gesture {
	if !g.hasExtent {
		return none()
	}
	if g.corner != nil {
		return g.Commit()
	}

	c := g.cursor
	g.corner = &c
	g.expire.Start(func() { g.corner = nil })
	return none()
}

// Commit completes the rectangle at the cursor.
func (g *GeoMap) Commit() Gesture {
	if g.corner == nil {
		return none()
	}
	g.expire.Cancel()
	a, b := g.rectCorners(*g.corner, g.cursor)
	g.corner = nil
	g.brush = g.geo.Translate(selection.Corners{A: a, B: b})
	return Gesture{Kind: GestureEnd, Selection: g.brush}
}

// Cancel drops the pending corner and the brush.
func (g *GeoMap) Cancel() Gesture {
	g.expire.Cancel()
	g.corner = nil
	g.brush = selection.None(g.id)
	return Gesture{Kind: GestureClear}
}

// rectCorners returns the outer corners of the cell block spanned by a
// and b, so both corner cells lie inside.
func (g *GeoMap) rectCorners(a, b cell) (selection.LatLng, selection.LatLng) {
	x0, x1 := min(a.x, b.x), max(a.x, b.x)+1
	y0, y1 := min(a.y, b.y), max(a.y, b.y)+1
	return selection.LatLng{Lat: g.lat.Invert(float64(y1)), Lng: g.lng.Invert(float64(x0))},
		selection.LatLng{Lat: g.lat.Invert(float64(y0)), Lng: g.lng.Invert(float64(x1))}
}

// center returns the coordinate at the middle of a cell.
func (g *GeoMap) center(c cell) selection.LatLng {
	return selection.LatLng{
		Lat: g.lat.Invert(float64(c.y) + 0.5),
		Lng: g.lng.Invert(float64(c.x) + 0.5),
	}
}

func (g *GeoMap) cellOf(r model.Record) cell {
	return cell{
		x: clamp(int(math.Floor(g.lng.Map(r.Longitude))), 0, g.width-1),
		y: clamp(int(math.Floor(g.lat.Map(r.Latitude))), 0, g.height-1),
	}
}

// CycleColor switches to the next color mode.
func (g *GeoMap) CycleColor() ColorMode {
	g.color = (g.color + 1) % ColorMode(len(colorModeNames))
	return g.color
}

// SetColorMode sets the marker color mode.
func (g *GeoMap) SetColorMode(c ColorMode) { g.color = c }

// ColorMode returns the marker color mode.
func (g *GeoMap) ColorMode() ColorMode { return g.color }

// Cornered reports whether a first corner is waiting.
func (g *GeoMap) Cornered() bool { return g.corner != nil }

// Brush returns the panel's own brush.
func (g *GeoMap) Brush() selection.Selection { return g.brush }

// Points returns the plotted records.
func (g *GeoMap) Points() []model.Record { return g.points }

// Refreshes returns how often the coordinator refreshed the panel.
func (g *GeoMap) Refreshes() int { return g.refreshes }

// Readout describes the cursor position and how many sightings share its
// cell.
func (g *GeoMap) Readout() string {
	if !g.hasExtent {
		return "no sightings"
	}
	n := 0
	for _, r := range g.points {
		if g.cellOf(r) == g.cursor {
			n++
		}
	}
	at := g.center(g.cursor)
	out := fmt.Sprintf("%.2f, %.2f: %d Sightings | color by %s", at.Lat, at.Lng, n, g.color)
	if g.corner != nil {
		return "corner set | " + out
	}
	return out
}

// View renders the panel.
func (g *GeoMap) View(focused bool) string {
	return panel(g.theme, g.Title(), g.plot(), fit(g.Readout(), g.width), focused)
}

func (g *GeoMap) plot() string {
	if !g.hasExtent {
		return g.theme.Faint.Render(fit("no sightings", g.width))
	}

	marks := make(map[cell]model.Record, len(g.points))
	for _, r := range g.points {
		marks[g.cellOf(r)] = r
	}

	var pending *selection.Rect
	if g.corner != nil {
		a, b := g.rectCorners(*g.corner, g.cursor)
		r := selection.NewRect(a, b)
		pending = &r
	}

	lines := make([]string, g.height)
	for y := range g.height {
		var b strings.Builder
		for x := range g.width {
			b.WriteString(g.renderCell(cell{x, y}, marks, pending))
		}
		lines[y] = b.String()
	}
	return joinLines(lines)
}

func (g *GeoMap) renderCell(c cell, marks map[cell]model.Record, pending *selection.Rect) string {
	switch {
	case c == g.cursor:
		return g.theme.BarCursor.Render("+")
	case g.corner != nil && c == *g.corner:
		return g.theme.Anchor.Render("◆")
	}

	if r, ok := marks[c]; ok {
		return lipgloss.NewStyle().Foreground(g.markerColor(r)).Render("●")
	}

	at := g.center(c)
	if pending != nil && pending.Contains(at.Lat, at.Lng) {
		return g.theme.Anchor.Render("·")
	}
	if g.brush.Rect != nil && g.brush.Rect.Contains(at.Lat, at.Lng) {
		return g.theme.BarBrushed.Render("·")
	}
	return " "
}

func (g *GeoMap) markerColor(r model.Record) lipgloss.Color {
	switch g.color {
	case ColorByMonth:
		return themes.RampScale(1, 12, float64(r.Month))
	case ColorByTimeOfDay:
		return themes.RampScale(0, 24, r.TimeOfDayHours)
	case ColorByCategory:
		return themes.ShapeColor(r.Category)
	}
	return themes.RampScale(g.yearLo, g.yearHi, float64(r.Year))
}
