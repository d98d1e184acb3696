// Package dataset holds the immutable, memory-resident record set the
// dashboard filters over.
package dataset

import (
	"log/slog"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// Store holds the full dataset. It is safe to share; nothing mutates it
// after New returns.
type Store struct {
	records  []model.Record
	rejected int
}

// New builds a store from ingested records. Records failing
// model.Record.Validate are excluded and counted instead of aborting.
func New(records []model.Record) *Store {
	kept := make([]model.Record, 0, len(records))
	rejected := 0
	var firstErr error

	for _, r := range records {
		if err := r.Validate(); err != nil {
			rejected++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		kept = append(kept, r)
	}

	if rejected > 0 {
		slog.Warn("Excluded malformed records",
			"rejected", rejected,
			"kept", len(kept),
			"first_error", firstErr)
	}

	return &Store{records: kept, rejected: rejected}
}

// All returns a copy of the full record sequence.
func (s *Store) All() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Filter returns the records matching pred, in load order.
// A nil predicate matches every record.
func (s *Store) Filter(pred func(model.Record) bool) []model.Record {
	if pred == nil {
		return s.All()
	}

	out := make([]model.Record, 0, len(s.records))
	for _, r := range s.records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of records held.
func (s *Store) Len() int {
	return len(s.records)
}

// Rejected returns how many records were excluded at load.
func (s *Store) Rejected() int {
	return s.rejected
}
