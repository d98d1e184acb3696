// Package report collects what the coordinator publishes and renders it
// as styled text for headless runs.
package report

import (
	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// Collector stores the latest published state of every view.
type Collector struct {
	rows      map[model.DimensionID][]model.AggregateRow
	refreshes map[model.ViewID]int
	clears    map[model.ViewID]int
	points    []model.Record
	last      coordinator.Snapshot
	published int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		rows:      make(map[model.DimensionID][]model.AggregateRow),
		refreshes: make(map[model.ViewID]int),
		clears:    make(map[model.ViewID]int),
	}
}

// Register subscribes one adapter per dimension plus a map sink, and the
// collector itself as an observer.
func (c *Collector) Register(coord *coordinator.Coordinator) error {
	for _, d := range dimension.All() {
		if err := coord.Register(&dimensionView{c: c, dim: d.ID}); err != nil {
			return err
		}
	}
	if err := coord.Register(&mapView{c: c}); err != nil {
		return err
	}
	coord.Observe(c)
	return nil
}

// Published implements coordinator.Observer.
func (c *Collector) Published(s coordinator.Snapshot) {
	c.last = s
	c.published++
}

// Rows returns the latest rows held for dim.
func (c *Collector) Rows(dim model.DimensionID) []model.AggregateRow {
	return c.rows[dim]
}

// AllRows returns the latest rows for every dimension.
func (c *Collector) AllRows() map[model.DimensionID][]model.AggregateRow {
	out := make(map[model.DimensionID][]model.AggregateRow, len(c.rows))
	for k, v := range c.rows {
		out[k] = v
	}
	return out
}

// Points returns the latest records held by the map sink.
func (c *Collector) Points() []model.Record { return c.points }

// Snapshot returns the last observed snapshot.
func (c *Collector) Snapshot() coordinator.Snapshot { return c.last }

// PublishCount returns the number of publish cycles observed.
func (c *Collector) PublishCount() int { return c.published }

// Refreshes returns how often view was refreshed.
func (c *Collector) Refreshes(view model.ViewID) int { return c.refreshes[view] }

// Clears returns how often view was told to drop its brush.
func (c *Collector) Clears(view model.ViewID) int { return c.clears[view] }

type dimensionView struct {
	c   *Collector
	dim model.DimensionID
}

func (v *dimensionView) ID() model.ViewID { return model.DefaultView(v.dim) }

func (v *dimensionView) Dimension() (model.DimensionID, bool) { return v.dim, true }

func (v *dimensionView) SetData(rows []model.AggregateRow) { v.c.rows[v.dim] = rows }

func (v *dimensionView) Refresh() { v.c.refreshes[v.ID()]++ }

func (v *dimensionView) ClearBrush(coordinator.Broadcast) { v.c.clears[v.ID()]++ }

type mapView struct {
	c *Collector
}

func (v *mapView) ID() model.ViewID { return model.ViewMap }

func (v *mapView) Dimension() (model.DimensionID, bool) { return "", false }

func (v *mapView) SetData([]model.AggregateRow) {}

func (v *mapView) SetPoints(recs []model.Record) { v.c.points = recs }

func (v *mapView) Refresh() { v.c.refreshes[model.ViewMap]++ }

func (v *mapView) ClearBrush(coordinator.Broadcast) { v.c.clears[model.ViewMap]++ }
