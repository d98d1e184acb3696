package records

import (
	"fmt"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// SightingBuilder configures a single record.
type SightingBuilder struct {
	rec model.Record
}

// Sighting starts a record with valid defaults.
func Sighting() *SightingBuilder {
	return &SightingBuilder{rec: model.Record{
		Year:            2000,
		Month:           1,
		Day:             1,
		Hour:            12,
		TimeOfDayHours:  12,
		DurationSeconds: 60,
		Latitude:        40,
		Longitude:       -100,
		Category:        "light",
		Description:     "bright light in the sky",
	}}
}

// Year sets the year.
func (b *SightingBuilder) Year(y int) *SightingBuilder {
	b.rec.Year = y
	return b
}

// Month sets the month, 1 through 12.
func (b *SightingBuilder) Month(m int) *SightingBuilder {
	b.rec.Month = m
	return b
}

// At sets the hour and minute, keeping TimeOfDayHours consistent.
func (b *SightingBuilder) At(hour, minute int) *SightingBuilder {
	b.rec.Hour = hour
	b.rec.Minute = minute
	b.rec.TimeOfDayHours = float64(hour) + float64(minute)/60
	return b
}

// Shape sets the category.
func (b *SightingBuilder) Shape(s string) *SightingBuilder {
	b.rec.Category = s
	return b
}

// Seconds sets the duration.
func (b *SightingBuilder) Seconds(s float64) *SightingBuilder {
	b.rec.DurationSeconds = s
	return b
}

// Location sets the coordinates.
func (b *SightingBuilder) Location(lat, lng float64) *SightingBuilder {
	b.rec.Latitude = lat
	b.rec.Longitude = lng
	return b
}

// Description sets the free-text description.
func (b *SightingBuilder) Description(d string) *SightingBuilder {
	b.rec.Description = d
	return b
}

// Record returns the configured record.
func (b *SightingBuilder) Record() model.Record {
	return b.rec
}

// Builder accumulates records in order, assigning sequential IDs.
type Builder struct {
	recs []model.Record
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends records.
func (b *Builder) Add(sightings ...*SightingBuilder) *Builder {
	for _, s := range sightings {
		rec := s.Record()
		rec.ID = len(b.recs) + 1
		if rec.RawTimestamp == "" {
			rec.RawTimestamp = fmt.Sprintf("%d/%d/%d %02d:%02d", rec.Month, rec.Day, rec.Year, rec.Hour, rec.Minute)
		}
		b.recs = append(b.recs, rec)
	}
	return b
}

// WithFixture appends a predefined set.
func (b *Builder) WithFixture(f FixtureName) *Builder {
	return b.Add(fixtures[f]()...)
}

// Build returns the accumulated records.
func (b *Builder) Build() []model.Record {
	out := make([]model.Record, len(b.recs))
	copy(out, b.recs)
	return out
}
