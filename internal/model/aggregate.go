package model

// Key identifies one group within a dimension. Ordinal carries the numeric
// value or the bin index; Label is what views print.
type Key struct {
	Label   string
	Ordinal int
}

// AggregateRow is one grouped tally over the working set.
// Rows are produced fresh on every working-set change and handed to views
// as read-only snapshots.
type AggregateRow struct {
	Key          Key
	Descriptions []string
	Count        int
}

// TotalCount sums the counts of a row sequence.
func TotalCount(rows []AggregateRow) int {
	total := 0
	for _, row := range rows {
		total += row.Count
	}
	return total
}

// Keys returns the keys of a row sequence in order.
func Keys(rows []AggregateRow) []Key {
	keys := make([]Key, len(rows))
	for i, row := range rows {
		keys[i] = row.Key
	}
	return keys
}
