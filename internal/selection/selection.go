// Package selection turns raw view selection primitives (pixel intervals,
// key sets, map corners) into record predicates.
package selection

import (
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// Predicate reports whether a record belongs to a subset.
// A nil Predicate is the absence of a filter.
type Predicate func(model.Record) bool

// And combines predicates; nil operands match everything.
func And(preds ...Predicate) Predicate {
	active := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}

	return func(r model.Record) bool {
		for _, p := range active {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Selection is the translated form of a brush: a record predicate for the
// coordinator plus a same-view highlight predicate for the source view.
type Selection struct {
	Match     Predicate
	Highlight func(model.Key) bool
	Rect      *Rect
	Source    model.ViewID
	Label     string
	Keys      []model.Key
}

// Empty reports whether the selection filters nothing, which the
// coordinator treats as a full reset.
func (s Selection) Empty() bool {
	return s.Match == nil
}

// Highlighted reports whether key is part of the selection.
func (s Selection) Highlighted(key model.Key) bool {
	if s.Highlight == nil {
		return false
	}
	return s.Highlight(key)
}

// None returns the empty selection for a view.
func None(source model.ViewID) Selection {
	return Selection{Source: source}
}

// Primitive is a raw selection gesture emitted by a view.
type Primitive interface {
	isPrimitive()
}

// PixelInterval is a horizontal brush in view coordinates.
type PixelInterval struct {
	Start float64
	End   float64
}

// KeySet selects keys directly, e.g. from a command line flag.
type KeySet struct {
	Keys []model.Key
}

// Corners are two opposite corners of a map rectangle, in any order.
type Corners struct {
	A LatLng
	B LatLng
}

func (PixelInterval) isPrimitive() {}
func (KeySet) isPrimitive()        {}
func (Corners) isPrimitive()       {}

// Translator converts primitives raised by one view into selections.
type Translator interface {
	View() model.ViewID
	Translate(p Primitive) Selection
}

// keySetSelection builds the predicate shared by the key-based translators.
func keySetSelection(source model.ViewID, keys []model.Key, keyFn func(model.Record) (model.Key, bool), label string) Selection {
	if len(keys) == 0 {
		return None(source)
	}

	set := make(map[model.Key]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}

	inSet := func(k model.Key) bool {
		_, ok := set[k]
		return ok
	}

	return Selection{
		Source: source,
		Keys:   keys,
		Label:  label,
		Match: func(r model.Record) bool {
			k, ok := keyFn(r)
			return ok && inSet(k)
		},
		Highlight: inSet,
	}
}
