package dimension

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBins indicates a bin table that is not contiguous and ordered.
var ErrInvalidBins = errors.New("invalid bin table")

// Bin is one duration tier. Max is exclusive; Open marks the last,
// unbounded tier.
type Bin struct {
	Label string
	Min   float64
	Max   float64
	Open  bool
}

// Contains reports whether seconds fall inside the bin.
func (b Bin) Contains(seconds float64) bool {
	if seconds < b.Min {
		return false
	}
	return b.Open || seconds < b.Max
}

// BinTable is an ordered list of contiguous, non-overlapping bins.
type BinTable []Bin

// DurationBins is the fixed duration tier table, from 0 seconds to an
// open-ended "5 hours+" tier.
var DurationBins = BinTable{
	{Label: "0-10sec", Min: 0, Max: 10},
	{Label: "10-30sec", Min: 10, Max: 30},
	{Label: "30-60sec", Min: 30, Max: 60},
	{Label: "1-5min", Min: 60, Max: 5 * 60},
	{Label: "5-10min", Min: 5 * 60, Max: 10 * 60},
	{Label: "10-30min", Min: 10 * 60, Max: 30 * 60},
	{Label: "30-60min", Min: 30 * 60, Max: 60 * 60},
	{Label: "1-2hrs", Min: 60 * 60, Max: 2 * 60 * 60},
	{Label: "2-5hrs", Min: 2 * 60 * 60, Max: 5 * 60 * 60},
	{Label: "5 hours+", Min: 5 * 60 * 60, Open: true},
}

// Lookup returns the first bin containing seconds and its index.
func (t BinTable) Lookup(seconds float64) (Bin, int, bool) {
	if math.IsNaN(seconds) {
		return Bin{}, -1, false
	}
	for i, b := range t {
		if b.Contains(seconds) {
			return b, i, true
		}
	}
	return Bin{}, -1, false
}

// Index returns the position of the bin with the given label.
func (t BinTable) Index(label string) (int, bool) {
	for i, b := range t {
		if b.Label == label {
			return i, true
		}
	}
	return -1, false
}

// Labels returns the bin labels in declared order.
func (t BinTable) Labels() []string {
	labels := make([]string, len(t))
	for i, b := range t {
		labels[i] = b.Label
	}
	return labels
}

// Validate checks that the table is contiguous with only the last bin open.
func (t BinTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidBins)
	}

	seen := make(map[string]bool, len(t))
	for i, b := range t {
		if seen[b.Label] {
			return fmt.Errorf("%w: duplicate label %q", ErrInvalidBins, b.Label)
		}
		seen[b.Label] = true

		last := i == len(t)-1
		if b.Open != last {
			return fmt.Errorf("%w: only the last bin may be open (bin %q)", ErrInvalidBins, b.Label)
		}
		if !b.Open && b.Max <= b.Min {
			return fmt.Errorf("%w: bin %q has max <= min", ErrInvalidBins, b.Label)
		}
		if i > 0 && t[i-1].Max != b.Min {
			return fmt.Errorf("%w: gap or overlap before bin %q", ErrInvalidBins, b.Label)
		}
	}
	return nil
}
