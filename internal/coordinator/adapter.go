package coordinator

import (
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// Broadcast tags one outbound publish cycle. Zero means "no broadcast".
type Broadcast uint64

// ViewAdapter is the contract every dashboard view implements.
type ViewAdapter interface {
	ID() model.ViewID
	// Dimension returns the dimension the view draws; the map has none.
	Dimension() (model.DimensionID, bool)
	// SetData replaces the displayed aggregate sequence. The rows are the
	// view's own copy.
	SetData(rows []model.AggregateRow)
	// Refresh re-renders from current data.
	Refresh()
	// ClearBrush removes the view's own brush indicator. A view must not
	// answer it with a user-level Clear; if it reports the removal at all
	// it passes tag back as Clear.Echo.
	ClearBrush(tag Broadcast)
}

// PointSink is implemented by views that draw individual records.
type PointSink interface {
	SetPoints(records []model.Record)
}

// Observer is notified after every publish cycle.
type Observer interface {
	Published(s Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

// Published calls f.
func (f ObserverFunc) Published(s Snapshot) { f(s) }

// State is the coordinator's brush state.
type State int

const (
	// StateIdle means no brush is active; only the text pattern applies.
	StateIdle State = iota
	// StateBrushing means exactly one view's brush is live.
	StateBrushing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBrushing:
		return "brushing"
	}
	return "unknown"
}

// Snapshot summarizes the coordinator after a publish.
type Snapshot struct {
	Source     model.ViewID
	Pattern    string
	Selection  string
	State      State
	WorkingSet int
	Total      int
	Broadcast  Broadcast
}
