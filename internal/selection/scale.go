package selection

import (
	"math"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// DefaultPaddingInner matches the bar charts of the original dashboard.
const DefaultPaddingInner = 0.1

// LinearScale maps a continuous domain onto a pixel range.
type LinearScale struct {
	Domain [2]float64
	Range  [2]float64
}

// Map converts a domain value to pixels.
func (s LinearScale) Map(v float64) float64 {
	d := s.Domain[1] - s.Domain[0]
	if d == 0 {
		return (s.Range[0] + s.Range[1]) / 2
	}
	t := (v - s.Domain[0]) / d
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

// Invert converts pixels back to a domain value.
func (s LinearScale) Invert(px float64) float64 {
	r := s.Range[1] - s.Range[0]
	if r == 0 {
		return s.Domain[0]
	}
	t := (px - s.Range[0]) / r
	return s.Domain[0] + t*(s.Domain[1]-s.Domain[0])
}

// Valid reports whether the scale can be inverted.
func (s LinearScale) Valid() bool {
	return s.Range[1] != s.Range[0] && !math.IsNaN(s.Domain[0]) && !math.IsNaN(s.Domain[1])
}

// BandScale lays ordered keys out as equal bands across a width, with
// inner padding between bands and none at the ends.
type BandScale struct {
	Domain       []model.Key
	Width        float64
	PaddingInner float64
}

// NewBandScale creates a band scale with the default inner padding.
func NewBandScale(domain []model.Key, width float64) BandScale {
	return BandScale{Domain: domain, Width: width, PaddingInner: DefaultPaddingInner}
}

// Step is the distance between the starts of adjacent bands.
func (s BandScale) Step() float64 {
	n := float64(len(s.Domain))
	return s.Width / math.Max(1, n-s.PaddingInner)
}

// Bandwidth is the drawn width of each band.
func (s BandScale) Bandwidth() float64 {
	return s.Step() * (1 - s.PaddingInner)
}

// offset centers the bands when there are too few to fill the width.
func (s BandScale) offset() float64 {
	n := float64(len(s.Domain))
	return (s.Width - s.Step()*(n-s.PaddingInner)) / 2
}

// Start returns the left edge of band i.
func (s BandScale) Start(i int) float64 {
	return s.offset() + s.Step()*float64(i)
}

// Index returns the band position of key.
func (s BandScale) Index(key model.Key) (int, bool) {
	for i, k := range s.Domain {
		if k == key {
			return i, true
		}
	}
	return -1, false
}

// At returns the band containing pixel px, if any.
func (s BandScale) At(px float64) (int, bool) {
	bw := s.Bandwidth()
	for i := range s.Domain {
		start := s.Start(i)
		if px >= start && px < start+bw {
			return i, true
		}
	}
	return -1, false
}

// Intersecting returns the keys whose rendered band intersects
// [start, end): bandStart+bandWidth > start && bandStart < end.
func (s BandScale) Intersecting(start, end float64) []model.Key {
	bw := s.Bandwidth()
	var keys []model.Key
	for i, k := range s.Domain {
		bandStart := s.Start(i)
		if bandStart+bw > start && bandStart < end {
			keys = append(keys, k)
		}
	}
	return keys
}
