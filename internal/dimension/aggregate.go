package dimension

import (
	"slices"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// Aggregate groups records by the descriptor's key, counts each group,
// collects member descriptions and orders the rows by the descriptor's
// comparator. Records the descriptor cannot key are skipped.
// Identical input always yields an identical row sequence.
func Aggregate(records []model.Record, d Descriptor) []model.AggregateRow {
	index := make(map[model.Key]int)
	rows := make([]model.AggregateRow, 0)

	for _, r := range records {
		key, ok := d.KeyFn(r)
		if !ok {
			continue
		}

		i, exists := index[key]
		if !exists {
			i = len(rows)
			index[key] = i
			rows = append(rows, model.AggregateRow{Key: key})
		}
		rows[i].Count++
		rows[i].Descriptions = append(rows[i].Descriptions, r.Description)
	}

	// Rows start in first-seen order, so a stable sort keeps ties deterministic.
	slices.SortStableFunc(rows, func(a, b model.AggregateRow) int {
		return d.Compare(a.Key, b.Key)
	})

	return rows
}

// AggregateAll runs Aggregate for every descriptor in ds. With no
// descriptors it aggregates all five dimensions.
func AggregateAll(records []model.Record, ds ...Descriptor) map[model.DimensionID][]model.AggregateRow {
	if len(ds) == 0 {
		ds = All()
	}

	out := make(map[model.DimensionID][]model.AggregateRow, len(ds))
	for _, d := range ds {
		out[d.ID] = Aggregate(records, d)
	}
	return out
}
