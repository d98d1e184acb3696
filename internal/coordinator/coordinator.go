// Package coordinator implements the cross-filter engine: it owns the
// active filter state, turns selections into a working set, recomputes
// aggregates and republishes them to every registered view.
//
// The coordinator is single-threaded. Every event runs its full
// recompute-and-publish cycle before the next one is accepted; events
// raised while a cycle is running are queued, and selections or clears
// raised by views in reaction to a broadcast are dropped.
package coordinator

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Veraticus/the-truth-is-out-there/internal/dataset"
	"github.com/Veraticus/the-truth-is-out-there/internal/debounce"
	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/selection"
	"github.com/Veraticus/the-truth-is-out-there/internal/textmatch"
)

// Registration errors.
var (
	ErrDuplicateView  = errors.New("view already registered")
	ErrDimensionOwned = errors.New("dimension already owned by another view")
	ErrUnknownDim     = errors.New("unknown dimension")
)

type registration struct {
	view   ViewAdapter
	points PointSink
	dim    dimension.Descriptor
	hasDim bool
}

// Coordinator is the single owner of FilterState and the WorkingSet.
type Coordinator struct {
	store  *dataset.Store
	sched  debounce.Scheduler
	logger *slog.Logger

	views     []*registration
	byID      map[model.ViewID]*registration
	byDim     map[model.DimensionID]*registration
	observers []Observer
	delays    map[model.ViewID]*debounce.Delay

	aggregates map[model.DimensionID][]model.AggregateRow
	brush      selection.Selection
	text       textmatch.Pattern
	source     model.ViewID
	working    []model.Record
	queue      []Event

	quiet      time.Duration
	inFlight   Broadcast
	lastTag    Broadcast
	suppressed int
	state      State

	dispatching bool
}

// New creates a coordinator over store. The working set starts as the
// full dataset; call Start to publish the initial aggregates.
func New(store *dataset.Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:      store,
		sched:      debounce.Immediate{},
		logger:     slog.Default(),
		quiet:      debounce.DefaultQuiet,
		byID:       make(map[model.ViewID]*registration),
		byDim:      make(map[model.DimensionID]*registration),
		delays:     make(map[model.ViewID]*debounce.Delay),
		aggregates: make(map[model.DimensionID][]model.AggregateRow),
		brush:      selection.None(""),
		text:       textmatch.Compile(""),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.recompute()
	for _, d := range dimension.All() {
		c.aggregates[d.ID] = dimension.Aggregate(c.working, d)
	}
	return c
}

// Register adds a view to the subscriber list. Each dimension can be
// owned by at most one view.
func (c *Coordinator) Register(v ViewAdapter) error {
	id := v.ID()
	if _, exists := c.byID[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateView, id)
	}

	reg := &registration{view: v}
	if sink, ok := v.(PointSink); ok {
		reg.points = sink
	}

	if dimID, ok := v.Dimension(); ok {
		d, known := dimension.ByID(dimID)
		if !known {
			return fmt.Errorf("%w: %s", ErrUnknownDim, dimID)
		}
		if owner, owned := c.byDim[dimID]; owned {
			return fmt.Errorf("%w: %s is drawn by %s", ErrDimensionOwned, dimID, owner.view.ID())
		}
		reg.dim = d
		reg.hasDim = true
		c.byDim[dimID] = reg
	}

	c.views = append(c.views, reg)
	c.byID[id] = reg
	return nil
}

// Observe adds an observer notified after every publish.
func (c *Coordinator) Observe(o Observer) {
	c.observers = append(c.observers, o)
}

// Start publishes the initial, unfiltered state to every view.
func (c *Coordinator) Start() {
	c.Dispatch(Reset{})
}

// BrushMove reports a moving brush. It is applied once the view's brush
// has been quiet for the configured interval.
func (c *Coordinator) BrushMove(source model.ViewID, sel selection.Selection) {
	c.Dispatch(Select{Source: source, Selection: sel, Provisional: true})
}

// BrushEnd reports a finished brush and applies it immediately.
func (c *Coordinator) BrushEnd(source model.ViewID, sel selection.Selection) {
	c.Dispatch(Select{Source: source, Selection: sel})
}

// SelectionCleared reports that the user removed source's brush.
func (c *Coordinator) SelectionCleared(source model.ViewID) {
	c.Dispatch(Clear{Source: source})
}

// SetTextFilter replaces the free-text pattern.
func (c *Coordinator) SetTextFilter(pattern string) {
	c.Dispatch(TextFilter{Pattern: pattern})
}

// ResetAll clears every filter except the text pattern.
func (c *Coordinator) ResetAll() {
	c.Dispatch(Reset{})
}

// Dispatch is the only way to change coordinator state.
func (c *Coordinator) Dispatch(ev Event) {
	if c.drop(ev) {
		c.suppressed++
		c.logger.Debug("Suppressed re-entrant event",
			"event", eventName(ev),
			"broadcast", uint64(c.inFlight),
			"suppressed", c.suppressed)
		return
	}

	c.queue = append(c.queue, ev)
	if c.dispatching {
		return
	}

	c.dispatching = true
	defer func() { c.dispatching = false }()

	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.handle(next)
	}
}

// drop reports whether ev is an echo of the coordinator's own output.
func (c *Coordinator) drop(ev Event) bool {
	switch ev := ev.(type) {
	case Clear:
		return ev.Echo != 0 || c.inFlight != 0
	case Select:
		return c.inFlight != 0
	}
	return false
}

func (c *Coordinator) handle(ev Event) {
	switch ev := ev.(type) {
	case Select:
		if ev.Provisional {
			c.schedule(ev.Source, ev.Selection)
			return
		}
		c.delayFor(ev.Source).Cancel()
		c.applySelect(ev.Source, ev.Selection)

	case settle:
		c.applySelect(ev.source, ev.selection)

	case Clear:
		c.delayFor(ev.Source).Cancel()
		c.reset("clear", ev.Source)

	case TextFilter:
		c.applyText(ev.Pattern)

	case Reset:
		c.reset("reset", "")
	}
}

func (c *Coordinator) schedule(source model.ViewID, sel selection.Selection) {
	c.delayFor(source).Start(func() {
		c.Dispatch(settle{source: source, selection: sel})
	})
}

func (c *Coordinator) delayFor(source model.ViewID) *debounce.Delay {
	d, ok := c.delays[source]
	if !ok {
		d = debounce.NewDelay(c.sched, c.quiet)
		c.delays[source] = d
	}
	return d
}

func (c *Coordinator) applySelect(source model.ViewID, sel selection.Selection) {
	if sel.Empty() {
		c.reset("empty selection", source)
		return
	}
	if sel.Source == "" {
		sel.Source = source
	}

	activating := c.state != StateBrushing || c.source != source
	if activating {
		for id, d := range c.delays {
			if id != source {
				d.Cancel()
			}
		}
	}

	c.state = StateBrushing
	c.source = source
	c.brush = sel
	c.recompute()

	var own model.DimensionID
	if reg, ok := c.byID[source]; ok && reg.hasDim {
		own = reg.dim.ID
	}
	for _, d := range dimension.All() {
		if d.ID != own {
			c.aggregates[d.ID] = dimension.Aggregate(c.working, d)
		}
	}

	c.logger.Debug("Brush applied",
		"source", source,
		"selection", sel.Label,
		"activating", activating,
		"working_set", len(c.working))

	c.broadcast(func(tag Broadcast, reg *registration) {
		if reg.view.ID() == source {
			return
		}
		if activating {
			reg.view.ClearBrush(tag)
		}
		switch {
		case reg.hasDim:
			reg.view.SetData(c.Aggregates(reg.dim.ID))
			reg.view.Refresh()
		case reg.points != nil:
			reg.points.SetPoints(c.WorkingSet())
			reg.view.Refresh()
		}
	})
}

func (c *Coordinator) applyText(pattern string) {
	c.text = textmatch.Compile(pattern)
	c.recompute()

	for _, d := range dimension.All() {
		c.aggregates[d.ID] = dimension.Aggregate(c.working, d)
	}

	c.logger.Debug("Text filter applied",
		"pattern", c.text.String(),
		"state", c.state.String(),
		"working_set", len(c.working))

	c.broadcast(func(_ Broadcast, reg *registration) {
		switch {
		case reg.hasDim:
			reg.view.SetData(c.Aggregates(reg.dim.ID))
		case reg.points != nil:
			reg.points.SetPoints(c.WorkingSet())
		}
		reg.view.Refresh()
	})
}

func (c *Coordinator) reset(reason string, source model.ViewID) {
	for _, d := range c.delays {
		d.Cancel()
	}

	c.state = StateIdle
	c.source = ""
	c.brush = selection.None("")
	c.recompute()

	for _, d := range dimension.All() {
		c.aggregates[d.ID] = dimension.Aggregate(c.working, d)
	}

	c.logger.Debug("Filters reset",
		"reason", reason,
		"source", source,
		"working_set", len(c.working))

	c.broadcast(func(tag Broadcast, reg *registration) {
		reg.view.ClearBrush(tag)
		switch {
		case reg.hasDim:
			reg.view.SetData(c.Aggregates(reg.dim.ID))
		case reg.points != nil:
			reg.points.SetPoints(c.WorkingSet())
		}
		reg.view.Refresh()
	})
}

// recompute derives the working set from the store and the filter state.
func (c *Coordinator) recompute() {
	textOnly := c.store.Filter(c.text.Predicate())

	if c.brush.Empty() {
		c.working = textOnly
		return
	}

	working := make([]model.Record, 0, len(textOnly))
	for _, r := range textOnly {
		if c.brush.Match(r) {
			working = append(working, r)
		}
	}
	c.working = working
}

// broadcast delivers one tagged publish cycle to every view in
// registration order, then notifies observers.
func (c *Coordinator) broadcast(deliver func(tag Broadcast, reg *registration)) {
	c.lastTag++
	c.inFlight = c.lastTag
	for _, reg := range c.views {
		deliver(c.inFlight, reg)
	}
	c.inFlight = 0

	snap := c.Snapshot()
	for _, o := range c.observers {
		o.Published(snap)
	}
}

// State returns the current brush state.
func (c *Coordinator) State() State { return c.state }

// ActiveSource returns the view owning the live brush, if any.
func (c *Coordinator) ActiveSource() (model.ViewID, bool) {
	return c.source, c.state == StateBrushing
}

// Pattern returns the active text pattern.
func (c *Coordinator) Pattern() string { return c.text.String() }

// ActiveSelection returns the live brush selection.
func (c *Coordinator) ActiveSelection() selection.Selection { return c.brush }

// WorkingSet returns a copy of the current working set.
func (c *Coordinator) WorkingSet() []model.Record {
	return append([]model.Record(nil), c.working...)
}

// Aggregates returns a copy of the last published rows for a dimension.
func (c *Coordinator) Aggregates(dim model.DimensionID) []model.AggregateRow {
	rows := c.aggregates[dim]
	if rows == nil {
		return nil
	}
	out := make([]model.AggregateRow, len(rows))
	for i, r := range rows {
		r.Descriptions = slices.Clone(r.Descriptions)
		out[i] = r
	}
	return out
}

// Suppressed returns how many re-entrant events were dropped.
func (c *Coordinator) Suppressed() int { return c.suppressed }

// PendingMove reports whether source has a debounced move waiting.
func (c *Coordinator) PendingMove(source model.ViewID) bool {
	d, ok := c.delays[source]
	return ok && d.Pending()
}

// Snapshot summarizes the current state.
func (c *Coordinator) Snapshot() Snapshot {
	return Snapshot{
		State:      c.state,
		Source:     c.source,
		Pattern:    c.text.String(),
		Selection:  c.brush.Label,
		WorkingSet: len(c.working),
		Total:      c.store.Len(),
		Broadcast:  c.lastTag,
	}
}
