package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

// ImportRun is one recorded import.
type ImportRun struct {
	ImportedAt time.Time
	Source     string
	ID         int64
	Saved      int
	Skipped    int
}

// SaveRecords replaces the stored records with the same IDs. All records
// are written in one transaction.
func (s *SQLiteStorage) SaveRecords(ctx context.Context, records []model.Record) error {
	// Validate inputs
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecords(records); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.saveRecordsTx(ctx, tx, records); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}

	slog.Debug("Saved records", "count", len(records))
	return nil
}

func (s *SQLiteStorage) saveRecordsTx(ctx context.Context, tx *sql.Tx, records []model.Record) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO sightings (
			id, raw_timestamp, year, month, day, hour, minute,
			time_of_day, duration_seconds, latitude, longitude, shape, description
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := stmt.ExecContext(ctx,
			r.ID, r.RawTimestamp, r.Year, r.Month, r.Day, r.Hour, r.Minute,
			r.TimeOfDayHours, r.DurationSeconds, r.Latitude, r.Longitude,
			r.Category, r.Description)
		if err != nil {
			return fmt.Errorf("failed to save record %d: %w", r.ID, err)
		}
	}
	return nil
}

// LoadRecords returns every stored record ordered by ID.
func (s *SQLiteStorage) LoadRecords(ctx context.Context) ([]model.Record, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, raw_timestamp, year, month, day, hour, minute,
			time_of_day, duration_seconds, latitude, longitude, shape, description
		FROM sightings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(
			&r.ID, &r.RawTimestamp, &r.Year, &r.Month, &r.Day, &r.Hour, &r.Minute,
			&r.TimeOfDayHours, &r.DurationSeconds, &r.Latitude, &r.Longitude,
			&r.Category, &r.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// CountRecords returns the number of stored records.
func (s *SQLiteStorage) CountRecords(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sightings").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

// DeleteAllRecords removes every stored record.
func (s *SQLiteStorage) DeleteAllRecords(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sightings"); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	return nil
}

// RecordImport stores the outcome of an import.
func (s *SQLiteStorage) RecordImport(ctx context.Context, source string, saved, skipped int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(source, "source"); err != nil {
		return err
	}
	if saved < 0 || skipped < 0 {
		return fmt.Errorf("%w: saved=%d skipped=%d", ErrNegativeCounts, saved, skipped)
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO imports (source, saved, skipped) VALUES (?, ?, ?)",
		source, saved, skipped)
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}
	return nil
}

// LastImport returns the most recent import, or nil if there is none.
func (s *SQLiteStorage) LastImport(ctx context.Context) (*ImportRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var run ImportRun
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, saved, skipped, imported_at
		FROM imports
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&run.ID, &run.Source, &run.Saved, &run.Skipped, &run.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last import: %w", err)
	}
	return &run, nil
}
