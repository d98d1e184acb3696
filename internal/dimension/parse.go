package dimension

import (
	"strconv"
	"strings"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// ParseKey turns user input into a key of d. Month and hour accept either
// the label or the number. Input that names no key still comes back as a
// key so Universe can reject it.
func ParseKey(d Descriptor, s string) model.Key {
	s = strings.TrimSpace(s)
	switch d.ID {
	case model.DimensionYear:
		if y, err := strconv.Atoi(s); err == nil {
			return YearKey(y)
		}
	case model.DimensionMonth:
		if m, err := strconv.Atoi(s); err == nil && m >= 1 && m <= 12 {
			return MonthKey(m)
		}
		for m := 1; m <= 12; m++ {
			if strings.EqualFold(MonthLabel(m), s) {
				return MonthKey(m)
			}
		}
	case model.DimensionHourOfDay:
		if h, err := strconv.Atoi(s); err == nil && h >= 0 && h <= 23 {
			return HourKey(h)
		}
	case model.DimensionCategory:
		return CategoryKey(strings.ToLower(s))
	case model.DimensionDurationBucket:
		if k, ok := DurationKey(s); ok {
			return k
		}
	}
	return model.Key{Label: s, Ordinal: -1}
}

// ParseKeys parses a comma separated list of keys.
func ParseKeys(d Descriptor, list string) []model.Key {
	var keys []model.Key
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		keys = append(keys, ParseKey(d, part))
	}
	return keys
}

// ForView returns the dimension drawn by view.
func ForView(view model.ViewID) (Descriptor, bool) {
	for _, d := range All() {
		if model.DefaultView(d.ID) == view {
			return d, true
		}
	}
	return Descriptor{}, false
}
