package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrEmptySlice     = errors.New("slice cannot be empty")
	ErrInvalidRecord  = errors.New("invalid record")
	ErrNegativeCounts = errors.New("import counts cannot be negative")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecords validates a slice of records before writing.
func validateRecords(records []model.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: records", ErrEmptySlice)
	}

	seen := make(map[int]struct{}, len(records))
	for i, r := range records {
		if r.ID <= 0 {
			return fmt.Errorf("record at index %d: %w: missing ID", i, ErrInvalidRecord)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("record at index %d: %w: duplicate ID %d", i, ErrInvalidRecord, r.ID)
		}
		seen[r.ID] = struct{}{}

		if err := r.Validate(); err != nil {
			return fmt.Errorf("record at index %d: %w: %w", i, ErrInvalidRecord, err)
		}
	}
	return nil
}
