package records

import (
	"math/rand/v2"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

var (
	demoShapes = []string{"light", "circle", "triangle", "disk", "fireball", "cigar", "sphere", "oval", "formation", "chevron"}
	demoWords  = []string{"bright", "orange", "silent", "hovering", "pulsing", "fast", "low", "white", "red", "moving"}
	demoCities = []struct{ lat, lng float64 }{
		{47.6, -122.3}, {34.1, -118.2}, {40.7, -74.0}, {41.9, -87.6}, {33.4, -112.1},
		{29.8, -95.4}, {39.7, -105.0}, {25.8, -80.2}, {45.5, -122.7}, {36.2, -115.1},
	}
)

// Random builds n plausible sightings from a fixed seed. Points cluster
// around a handful of cities and evenings are overrepresented.
func Random(n int, seed uint64) []model.Record {
	r := rand.New(rand.NewPCG(seed, seed^0x5eed))
	b := NewBuilder()
	for range n {
		city := demoCities[r.IntN(len(demoCities))]
		hour := r.IntN(24)
		if r.IntN(2) == 0 {
			hour = 18 + r.IntN(6)
		}
		b.Add(Sighting().
			Year(1990 + r.IntN(25)).
			Month(1 + r.IntN(12)).
			At(hour, r.IntN(60)).
			Shape(demoShapes[r.IntN(len(demoShapes))]).
			Seconds(float64(1 + r.IntN(3600))).
			Location(city.lat+r.NormFloat64()*1.5, city.lng+r.NormFloat64()*1.5).
			Description(demoWords[r.IntN(len(demoWords))] + " " + demoWords[r.IntN(len(demoWords))] + " object"))
	}
	return b.Build()
}
