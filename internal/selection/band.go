package selection

import (
	"strings"

	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// Band translates brushes on a bar chart whose bars are bands of one
// dimension's keys.
type Band struct {
	dim   dimension.Descriptor
	view  model.ViewID
	scale BandScale
}

// NewBand creates a translator for a bar view over d.
func NewBand(view model.ViewID, d dimension.Descriptor) *Band {
	return &Band{
		view:  view,
		dim:   d,
		scale: NewBandScale(nil, 0),
	}
}

// View returns the view this translator serves.
func (b *Band) View() model.ViewID { return b.view }

// Dimension returns the descriptor the bars are drawn for.
func (b *Band) Dimension() dimension.Descriptor { return b.dim }

// SetDomain sets the drawn keys, in display order.
func (b *Band) SetDomain(keys []model.Key) {
	b.scale.Domain = append([]model.Key(nil), keys...)
}

// SetWidth sets the drawn width in pixels (or terminal columns).
func (b *Band) SetWidth(px float64) {
	b.scale.Width = px
}

// Scale returns the band layout shared with the renderer.
func (b *Band) Scale() BandScale { return b.scale }

// Translate converts a pixel interval into the set of intersecting bands,
// or accepts a key set directly. Keys the dimension can never produce are
// dropped; a selection left with no keys is empty.
func (b *Band) Translate(p Primitive) Selection {
	var keys []model.Key

	switch p := p.(type) {
	case PixelInterval:
		if !(p.End > p.Start) {
			return None(b.view)
		}
		keys = b.scale.Intersecting(p.Start, p.End)
	case KeySet:
		keys = p.Keys
	default:
		return None(b.view)
	}

	known := make([]model.Key, 0, len(keys))
	for _, k := range keys {
		if b.dim.Universe(k) {
			known = append(known, k)
		}
	}

	return keySetSelection(b.view, known, b.dim.KeyFn, b.label(known))
}

func (b *Band) label(keys []model.Key) string {
	if len(keys) == 0 {
		return ""
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.Label
	}
	return strings.ToLower(b.dim.Name) + " " + strings.Join(parts, ",")
}
