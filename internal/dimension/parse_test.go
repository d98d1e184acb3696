package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name  string
		d     Descriptor
		input string
		want  model.Key
		known bool
	}{
		{"year", Year, "1999", YearKey(1999), true},
		{"year garbage", Year, "nineties", model.Key{Label: "nineties", Ordinal: -1}, false},
		{"month number", Month, "7", MonthKey(7), true},
		{"month label", Month, "jul", MonthKey(7), true},
		{"month out of range", Month, "13", model.Key{Label: "13", Ordinal: -1}, false},
		{"hour", HourOfDay, " 21 ", HourKey(21), true},
		{"hour out of range", HourOfDay, "24", model.Key{Label: "24", Ordinal: -1}, false},
		{"shape folds case", Category, "Disk", CategoryKey("disk"), true},
		{"duration", DurationBucket, "1-2hrs", model.Key{Label: "1-2hrs", Ordinal: 7}, true},
		{"duration unknown", DurationBucket, "forever", model.Key{Label: "forever", Ordinal: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKey(tt.d, tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, tt.d.Universe(got))
		})
	}
}

func TestParseKeys(t *testing.T) {
	keys := ParseKeys(Category, "disk, light,,")
	assert.Equal(t, []model.Key{CategoryKey("disk"), CategoryKey("light")}, keys)
	assert.Empty(t, ParseKeys(Year, ""))
}

func TestForView(t *testing.T) {
	d, ok := ForView(model.ViewCategory)
	assert.True(t, ok)
	assert.Equal(t, model.DimensionCategory, d.ID)

	_, ok = ForView(model.ViewMap)
	assert.False(t, ok)
}
