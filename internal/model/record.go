package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/the-truth-is-out-there/internal/common"
)

// Record represents a single sighting from the ingested dataset.
// Records are created once at load time and never mutated.
type Record struct {
	RawTimestamp    string
	Category        string // Reported shape (e.g. "disk", "light")
	Description     string
	ID              int
	Year            int
	Month           int // 1..12
	Day             int
	Hour            int // 0..23
	Minute          int
	TimeOfDayHours  float64 // Hour + Minute/60
	DurationSeconds float64
	Latitude        float64
	Longitude       float64
}

// Validate reports whether the record carries every field the dashboard
// groups on. The returned error is a *common.DataShapeError.
func (r Record) Validate() error {
	switch {
	case strings.TrimSpace(r.Category) == "":
		return common.NewDataShapeError("category", "empty")
	case r.Month < 1 || r.Month > 12:
		return common.NewDataShapeError("month", fmt.Sprintf("%d out of range", r.Month))
	case r.Hour < 0 || r.Hour > 23:
		return common.NewDataShapeError("hour", fmt.Sprintf("%d out of range", r.Hour))
	case math.IsNaN(r.DurationSeconds) || r.DurationSeconds <= 0:
		return common.NewDataShapeError("duration", "not positive")
	case math.IsNaN(r.Latitude) || r.Latitude < -90 || r.Latitude > 90:
		return common.NewDataShapeError("latitude", "out of range")
	case math.IsNaN(r.Longitude) || r.Longitude < -180 || r.Longitude > 180:
		return common.NewDataShapeError("longitude", "out of range")
	}
	return nil
}
