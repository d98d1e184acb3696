// Package viewmodel turns coordinator snapshots into display-ready values.
package viewmodel

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

var printer = message.NewPrinter(language.English)

// Status is what the status line shows after a publish.
type Status struct {
	Source    model.ViewID
	Selection string
	Pattern   string
	Visible   int
	Total     int
	Brushing  bool
}

// NewStatus builds a Status from a snapshot.
func NewStatus(s coordinator.Snapshot) Status {
	st := Status{
		Visible:  s.WorkingSet,
		Total:    s.Total,
		Pattern:  s.Pattern,
		Brushing: s.State == coordinator.StateBrushing,
	}
	if st.Brushing {
		st.Source = s.Source
		st.Selection = s.Selection
	}
	return st
}

// Percentage returns the visible share of the dataset in [0, 1].
func (s Status) Percentage() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Visible) / float64(s.Total)
}

// Filtered reports whether anything narrows the working set.
func (s Status) Filtered() bool {
	return s.Brushing || s.Pattern != ""
}

// Summary is a one-line description such as
// "1,234 of 80,332 sightings | map: lat 30.00..50.00 ... | text "light"".
func (s Status) Summary() string {
	parts := []string{printer.Sprintf("%d of %d sightings", s.Visible, s.Total)}
	if s.Brushing && s.Selection != "" {
		parts = append(parts, string(s.Source)+": "+s.Selection)
	}
	if s.Pattern != "" {
		parts = append(parts, printer.Sprintf("text %q", s.Pattern))
	}
	return strings.Join(parts, " | ")
}
