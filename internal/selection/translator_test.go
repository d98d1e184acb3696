package selection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

func TestAnd(t *testing.T) {
	even := Predicate(func(r model.Record) bool { return r.ID%2 == 0 })
	big := Predicate(func(r model.Record) bool { return r.ID > 2 })

	assert.Nil(t, And())
	assert.Nil(t, And(nil, nil))

	both := And(even, nil, big)
	require.NotNil(t, both)
	assert.True(t, both(model.Record{ID: 4}))
	assert.False(t, both(model.Record{ID: 2}))
	assert.False(t, both(model.Record{ID: 3}))
}

func TestTimeSeries_PixelInterval(t *testing.T) {
	ts := NewTimeSeries(model.ViewTimeline)
	ts.SetDomain(1999, 2000)
	ts.SetWidth(100)

	tests := []struct {
		name       string
		start, end float64
		wantYears  []int
	}{
		{name: "pixels spanning 2000", start: 60, end: 100, wantYears: []int{2000}},
		{name: "whole axis", start: 0, end: 100, wantYears: []int{1999, 2000}},
		{name: "near 1999 rounds to 1999", start: 10, end: 40, wantYears: []int{1999}},
		{name: "straddling the midpoint", start: 40, end: 60, wantYears: []int{1999, 2000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := ts.Translate(PixelInterval{Start: tt.start, End: tt.end})
			require.False(t, sel.Empty())

			var years []int
			for _, k := range sel.Keys {
				years = append(years, k.Ordinal)
			}
			assert.Equal(t, tt.wantYears, years)

			for _, y := range []int{1998, 1999, 2000, 2001} {
				want := false
				for _, wy := range tt.wantYears {
					want = want || wy == y
				}
				assert.Equal(t, want, sel.Match(model.Record{Year: y}), "year %d", y)
				assert.Equal(t, want, sel.Highlighted(dimension.YearKey(y)), "year %d", y)
			}
		})
	}
}

func TestTimeSeries_Degenerate(t *testing.T) {
	ts := NewTimeSeries(model.ViewTimeline)
	ts.SetDomain(1999, 2010)
	ts.SetWidth(100)

	assert.True(t, ts.Translate(PixelInterval{Start: 50, End: 50}).Empty())
	assert.True(t, ts.Translate(PixelInterval{Start: 60, End: 50}).Empty())
	assert.True(t, ts.Translate(PixelInterval{Start: math.NaN(), End: 50}).Empty())
	assert.True(t, ts.Translate(Corners{}).Empty())

	unsized := NewTimeSeries(model.ViewTimeline)
	assert.True(t, unsized.Translate(PixelInterval{Start: 0, End: 10}).Empty())
}

func TestTimeSeries_KeySet(t *testing.T) {
	ts := NewTimeSeries(model.ViewTimeline)

	sel := ts.Translate(KeySet{Keys: []model.Key{dimension.YearKey(2001), {Ordinal: 5, Label: "bogus"}}})
	require.False(t, sel.Empty())
	assert.Equal(t, "year 2001", sel.Label)
	assert.True(t, sel.Match(model.Record{Year: 2001}))
	assert.False(t, sel.Match(model.Record{Year: 2002}))

	assert.True(t, ts.Translate(KeySet{}).Empty())
}

func TestBand_PixelInterval(t *testing.T) {
	b := NewBand(model.ViewMonth, dimension.Month)
	b.SetDomain(monthKeys(10))
	b.SetWidth(99)

	sel := b.Translate(PixelInterval{Start: 15, End: 25})
	require.False(t, sel.Empty())
	assert.Equal(t, model.ViewMonth, sel.Source)
	assert.Equal(t, "month Feb,Mar", sel.Label)
	assert.True(t, sel.Match(model.Record{Month: 2}))
	assert.True(t, sel.Match(model.Record{Month: 3}))
	assert.False(t, sel.Match(model.Record{Month: 4}))
	assert.True(t, sel.Highlighted(dimension.MonthKey(3)))
	assert.False(t, sel.Highlighted(dimension.MonthKey(1)))

	assert.True(t, b.Translate(PixelInterval{Start: 19.2, End: 19.8}).Empty(), "padding only")
	assert.True(t, b.Translate(PixelInterval{Start: 30, End: 30}).Empty(), "degenerate")
}

func TestBand_KeySetDropsUnknownKeys(t *testing.T) {
	b := NewBand(model.ViewDuration, dimension.DurationBucket)

	stale := model.Key{Ordinal: 3, Label: "1-3min"}
	good, ok := dimension.DurationKey("1-2hrs")
	require.True(t, ok)

	sel := b.Translate(KeySet{Keys: []model.Key{stale, good}})
	require.False(t, sel.Empty())
	assert.Equal(t, []model.Key{good}, sel.Keys)
	assert.True(t, sel.Match(model.Record{DurationSeconds: 4000}))
	assert.False(t, sel.Match(model.Record{DurationSeconds: 100}))

	onlyStale := b.Translate(KeySet{Keys: []model.Key{stale}})
	assert.True(t, onlyStale.Empty())
}

func TestBand_CategoryUnknownMatchesNothing(t *testing.T) {
	b := NewBand(model.ViewCategory, dimension.Category)

	sel := b.Translate(KeySet{Keys: []model.Key{dimension.CategoryKey("teapot")}})
	require.False(t, sel.Empty())
	assert.False(t, sel.Match(model.Record{Category: "disk"}))
	assert.True(t, sel.Match(model.Record{Category: "teapot"}))
}

func TestGeo_Translate(t *testing.T) {
	g := NewGeo(model.ViewMap)

	sel := g.Translate(Corners{A: LatLng{Lat: 45, Lng: -70}, B: LatLng{Lat: 40, Lng: -80}})
	require.False(t, sel.Empty())
	require.NotNil(t, sel.Rect)
	assert.Equal(t, Rect{MinLat: 40, MinLng: -80, MaxLat: 45, MaxLng: -70}, *sel.Rect)

	assert.True(t, sel.Match(model.Record{Latitude: 42, Longitude: -75}))
	assert.False(t, sel.Match(model.Record{Latitude: 40, Longitude: -75}), "edges are exclusive")
	assert.False(t, sel.Match(model.Record{Latitude: 46, Longitude: -75}))
	assert.False(t, sel.Highlighted(model.Key{}))

	assert.True(t, g.Translate(Corners{A: LatLng{1, 1}, B: LatLng{1, 5}}).Empty(), "zero height")
	assert.True(t, g.Translate(Corners{A: LatLng{math.NaN(), 1}, B: LatLng{3, 5}}).Empty())
	assert.True(t, g.Translate(PixelInterval{Start: 0, End: 1}).Empty())
}

func TestTranslatorsSatisfyInterface(t *testing.T) {
	translators := []Translator{
		NewTimeSeries(model.ViewTimeline),
		NewBand(model.ViewHour, dimension.HourOfDay),
		NewGeo(model.ViewMap),
	}
	for _, tr := range translators {
		assert.True(t, tr.Translate(KeySet{}).Empty(), string(tr.View()))
	}
}
