// Package dimension defines the five grouping axes of the dashboard and
// the aggregation that turns a working set into ordered tallies.
package dimension

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// Descriptor describes how one dimension keys and orders records.
type Descriptor struct {
	KeyFn   func(model.Record) (model.Key, bool)
	Compare func(a, b model.Key) int
	ID      model.DimensionID
	Name    string
	Bins    BinTable
}

// Universe reports whether key can ever be produced by this dimension.
// Categories are open-ended, so any non-empty label qualifies.
func (d Descriptor) Universe(key model.Key) bool {
	switch d.ID {
	case model.DimensionYear:
		return key.Label == strconv.Itoa(key.Ordinal)
	case model.DimensionMonth:
		return key.Ordinal >= 1 && key.Ordinal <= 12 && key.Label == MonthLabel(key.Ordinal)
	case model.DimensionHourOfDay:
		return key.Ordinal >= 0 && key.Ordinal <= 23 && key.Label == HourLabel(key.Ordinal)
	case model.DimensionCategory:
		return strings.TrimSpace(key.Label) != ""
	case model.DimensionDurationBucket:
		i, ok := d.Bins.Index(key.Label)
		return ok && i == key.Ordinal
	}
	return false
}

// Year groups by calendar year.
var Year = Descriptor{
	ID:      model.DimensionYear,
	Name:    "Year",
	KeyFn:   func(r model.Record) (model.Key, bool) { return YearKey(r.Year), true },
	Compare: compareOrdinal,
}

// Month groups by calendar month.
var Month = Descriptor{
	ID:   model.DimensionMonth,
	Name: "Month",
	KeyFn: func(r model.Record) (model.Key, bool) {
		if r.Month < 1 || r.Month > 12 {
			return model.Key{}, false
		}
		return MonthKey(r.Month), true
	},
	Compare: compareOrdinal,
}

// HourOfDay groups by the hour the sighting started.
var HourOfDay = Descriptor{
	ID:   model.DimensionHourOfDay,
	Name: "Hour of day",
	KeyFn: func(r model.Record) (model.Key, bool) {
		if r.Hour < 0 || r.Hour > 23 {
			return model.Key{}, false
		}
		return HourKey(r.Hour), true
	},
	Compare: compareOrdinal,
}

// Category groups by reported shape.
var Category = Descriptor{
	ID:   model.DimensionCategory,
	Name: "Shape",
	KeyFn: func(r model.Record) (model.Key, bool) {
		if strings.TrimSpace(r.Category) == "" {
			return model.Key{}, false
		}
		return CategoryKey(r.Category), true
	},
	Compare: func(a, b model.Key) int { return strings.Compare(a.Label, b.Label) },
}

// DurationBucket groups by encounter length tier, in declared bin order.
var DurationBucket = Descriptor{
	ID:   model.DimensionDurationBucket,
	Name: "Duration",
	Bins: DurationBins,
	KeyFn: func(r model.Record) (model.Key, bool) {
		bin, i, ok := DurationBins.Lookup(r.DurationSeconds)
		if !ok {
			return model.Key{}, false
		}
		return model.Key{Ordinal: i, Label: bin.Label}, true
	},
	Compare: compareOrdinal,
}

// All returns the five descriptors in display order.
func All() []Descriptor {
	return []Descriptor{Year, Month, HourOfDay, Category, DurationBucket}
}

// ByID returns the descriptor for id.
func ByID(id model.DimensionID) (Descriptor, bool) {
	for _, d := range All() {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// YearKey builds the key for a year.
func YearKey(year int) model.Key {
	return model.Key{Ordinal: year, Label: strconv.Itoa(year)}
}

// MonthKey builds the key for a month (1..12).
func MonthKey(month int) model.Key {
	return model.Key{Ordinal: month, Label: MonthLabel(month)}
}

// HourKey builds the key for an hour (0..23).
func HourKey(hour int) model.Key {
	return model.Key{Ordinal: hour, Label: HourLabel(hour)}
}

// CategoryKey builds the key for a shape name.
func CategoryKey(name string) model.Key {
	return model.Key{Label: name}
}

// DurationKey builds the key for a bin label, if the label exists.
func DurationKey(label string) (model.Key, bool) {
	i, ok := DurationBins.Index(label)
	if !ok {
		return model.Key{}, false
	}
	return model.Key{Ordinal: i, Label: label}, true
}

// MonthLabel returns the short month name.
func MonthLabel(month int) string {
	return time.Month(month).String()[:3]
}

// HourLabel returns a two digit hour.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d", hour)
}

func compareOrdinal(a, b model.Key) int {
	return cmp.Compare(a.Ordinal, b.Ordinal)
}
