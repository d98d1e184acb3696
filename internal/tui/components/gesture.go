// Package components holds the dashboard panels. Each panel is a
// coordinator view that draws itself and turns key presses into brush
// gestures for the model to forward.
package components

import (
	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	"github.com/Veraticus/the-truth-is-out-there/internal/selection"
)

// GestureKind says what the model should tell the coordinator.
type GestureKind int

const (
	// GestureNone means the key only moved the cursor.
	GestureNone GestureKind = iota
	// GestureMove is a provisional brush change.
	GestureMove
	// GestureEnd commits the brush.
	GestureEnd
	// GestureClear removes the brush.
	GestureClear
)

func (k GestureKind) String() string {
	switch k {
	case GestureNone:
		return "none"
	case GestureMove:
		return "move"
	case GestureEnd:
		return "end"
	case GestureClear:
		return "clear"
	}
	return "unknown"
}

// Gesture is the outcome of one key press on a panel.
type Gesture struct {
	Selection selection.Selection
	Kind      GestureKind
}

// Brushable is a panel the user can focus and brush.
type Brushable interface {
	coordinator.ViewAdapter

	Title() string
	SetSize(width, height int)

	// Move shifts the cursor; dy is ignored by one-dimensional panels.
	Move(dx, dy int) Gesture
	// Anchor starts a brush at the cursor, or restarts it.
	Anchor() Gesture
	// Commit ends the brush.
	Commit() Gesture
	// Cancel drops the brush.
	Cancel() Gesture

	// Readout describes what is under the cursor.
	Readout() string
	View(focused bool) string
}

func none() Gesture { return Gesture{Kind: GestureNone} }
