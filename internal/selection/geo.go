package selection

import (
	"fmt"
	"math"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// LatLng is a map coordinate.
type LatLng struct {
	Lat float64
	Lng float64
}

// Rect is an axis-aligned lat/lng rectangle.
type Rect struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// NewRect normalizes two opposite corners.
func NewRect(a, b LatLng) Rect {
	return Rect{
		MinLat: math.Min(a.Lat, b.Lat),
		MinLng: math.Min(a.Lng, b.Lng),
		MaxLat: math.Max(a.Lat, b.Lat),
		MaxLng: math.Max(a.Lng, b.Lng),
	}
}

// Contains reports whether the point lies strictly inside the rectangle.
func (r Rect) Contains(lat, lng float64) bool {
	return lat > r.MinLat && lat < r.MaxLat && lng > r.MinLng && lng < r.MaxLng
}

// Degenerate reports whether the rectangle encloses no area.
func (r Rect) Degenerate() bool {
	for _, v := range []float64{r.MinLat, r.MinLng, r.MaxLat, r.MaxLng} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return r.MaxLat <= r.MinLat || r.MaxLng <= r.MinLng
}

func (r Rect) String() string {
	return fmt.Sprintf("lat %.2f..%.2f lng %.2f..%.2f", r.MinLat, r.MaxLat, r.MinLng, r.MaxLng)
}

// Geo translates rectangle brushes on the map.
type Geo struct {
	view model.ViewID
}

// NewGeo creates a translator for a map view.
func NewGeo(view model.ViewID) *Geo {
	return &Geo{view: view}
}

// View returns the view this translator serves.
func (g *Geo) View() model.ViewID { return g.view }

// Translate converts two corners into a rectangle predicate.
func (g *Geo) Translate(p Primitive) Selection {
	corners, ok := p.(Corners)
	if !ok {
		return None(g.view)
	}

	rect := NewRect(corners.A, corners.B)
	if rect.Degenerate() {
		return None(g.view)
	}

	return Selection{
		Source: g.view,
		Rect:   &rect,
		Label:  rect.String(),
		Match: func(r model.Record) bool {
			return rect.Contains(r.Latitude, r.Longitude)
		},
	}
}
