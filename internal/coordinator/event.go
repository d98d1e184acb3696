package coordinator

import (
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/selection"
)

// Event is an input to the coordinator. The set of events is closed.
type Event interface {
	isEvent()
}

// Select activates (or, when empty, clears) a brush on Source.
// Provisional selections come from a moving brush and are debounced.
type Select struct {
	Source      model.ViewID
	Selection   selection.Selection
	Provisional bool
}

// Clear reports that a view's brush was removed. Echo carries the tag of
// the broadcast that caused it; echoes are never reprocessed.
type Clear struct {
	Source model.ViewID
	Echo   Broadcast
}

// TextFilter replaces the free-text pattern.
type TextFilter struct {
	Pattern string
}

// Reset returns every view to the unfiltered state.
type Reset struct{}

// settle is raised by a view's debounce delay when a brush move goes quiet.
type settle struct {
	source    model.ViewID
	selection selection.Selection
}

func (Select) isEvent()     {}
func (Clear) isEvent()      {}
func (TextFilter) isEvent() {}
func (Reset) isEvent()      {}
func (settle) isEvent()     {}

func eventName(ev Event) string {
	switch ev.(type) {
	case Select:
		return "select"
	case Clear:
		return "clear"
	case TextFilter:
		return "text_filter"
	case Reset:
		return "reset"
	case settle:
		return "settle"
	}
	return "unknown"
}
