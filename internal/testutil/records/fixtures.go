package records

import "github.com/Veraticus/the-truth-is-out-there/internal/model"

// FixtureName identifies a predefined record set.
type FixtureName string

// Predefined fixtures.
const (
	// FixtureScenario is three records over two years: one short circle
	// in 1999, a 50 second circle and a two hour disk in 2000.
	FixtureScenario FixtureName = "scenario"
	// FixtureSpread covers several years, months, hours, shapes and
	// duration bins, with distinct descriptions.
	FixtureSpread FixtureName = "spread"
)

var fixtures = map[FixtureName]func() []*SightingBuilder{
	FixtureScenario: func() []*SightingBuilder {
		return []*SightingBuilder{
			Sighting().Year(1999).Shape("circle").Seconds(4),
			Sighting().Year(2000).Shape("circle").Seconds(50),
			Sighting().Year(2000).Shape("disk").Seconds(4000),
		}
	},
	FixtureSpread: func() []*SightingBuilder {
		return []*SightingBuilder{
			Sighting().Year(1998).Month(3).At(21, 30).Shape("light").Seconds(5).
				Location(47.6, -122.3).Description("orange light hovering over the sound"),
			Sighting().Year(1999).Month(7).At(22, 15).Shape("disk").Seconds(120).
				Location(33.4, -112.0).Description("silver disk moving fast"),
			Sighting().Year(1999).Month(7).At(3, 0).Shape("triangle").Seconds(900).
				Location(35.1, -106.6).Description("three lights in a triangle"),
			Sighting().Year(2000).Month(12).At(19, 45).Shape("fireball").Seconds(20).
				Location(40.7, -74.0).Description("fireball over the river"),
			Sighting().Year(2001).Month(3).At(0, 5).Shape("light").Seconds(4000).
				Location(44.9, -93.2).Description("steady white light"),
			Sighting().Year(2001).Month(10).At(21, 0).Shape("cigar").Seconds(20000).
				Location(29.7, -95.3).Description("cigar shaped object, no sound"),
		}
	},
}

// Fixture returns a fresh copy of a predefined set.
func Fixture(name FixtureName) []model.Record {
	return NewBuilder().WithFixture(name).Build()
}
