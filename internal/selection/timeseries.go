package selection

import (
	"fmt"
	"math"

	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// yearBinWidth is the width of one time-series bin, in years.
const yearBinWidth = 1.0

// TimeSeries translates brushes on the year line chart.
type TimeSeries struct {
	view  model.ViewID
	scale LinearScale
}

// NewTimeSeries creates a translator for a year view.
func NewTimeSeries(view model.ViewID) *TimeSeries {
	return &TimeSeries{view: view}
}

// View returns the view this translator serves.
func (t *TimeSeries) View() model.ViewID { return t.view }

// SetDomain sets the year extent drawn by the view.
func (t *TimeSeries) SetDomain(minYear, maxYear int) {
	t.scale.Domain = [2]float64{float64(minYear), float64(maxYear)}
}

// SetWidth sets the drawn width in pixels (or terminal columns).
func (t *TimeSeries) SetWidth(px float64) {
	t.scale.Range = [2]float64{0, px}
}

// Scale returns the scale shared with the renderer.
func (t *TimeSeries) Scale() LinearScale { return t.scale }

// Translate converts a pixel interval into an inclusive year range padded
// by half a bin on each end, or a key set into exact years.
func (t *TimeSeries) Translate(p Primitive) Selection {
	switch p := p.(type) {
	case PixelInterval:
		return t.translateInterval(p)
	case KeySet:
		keys := make([]model.Key, 0, len(p.Keys))
		for _, k := range p.Keys {
			if dimension.Year.Universe(k) {
				keys = append(keys, k)
			}
		}
		return keySetSelection(t.view, keys, dimension.Year.KeyFn, yearLabel(keys))
	}
	return None(t.view)
}

func (t *TimeSeries) translateInterval(p PixelInterval) Selection {
	if math.IsNaN(p.Start) || math.IsNaN(p.End) || p.End <= p.Start || !t.scale.Valid() {
		return None(t.view)
	}

	y0, y1 := t.scale.Invert(p.Start), t.scale.Invert(p.End)
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	pad := yearBinWidth / 2
	lo := int(math.Ceil(y0 - pad))
	hi := int(math.Floor(y1 + pad))
	if lo > hi {
		return None(t.view)
	}

	keys := make([]model.Key, 0, hi-lo+1)
	for y := lo; y <= hi; y++ {
		keys = append(keys, dimension.YearKey(y))
	}

	sel := Selection{
		Source: t.view,
		Keys:   keys,
		Label:  yearLabel(keys),
		Match: func(r model.Record) bool {
			return r.Year >= lo && r.Year <= hi
		},
		Highlight: func(k model.Key) bool {
			return k.Ordinal >= lo && k.Ordinal <= hi
		},
	}
	return sel
}

func yearLabel(keys []model.Key) string {
	switch len(keys) {
	case 0:
		return ""
	case 1:
		return "year " + keys[0].Label
	}
	return fmt.Sprintf("years %s-%s", keys[0].Label, keys[len(keys)-1].Label)
}
