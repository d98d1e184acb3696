package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/Veraticus/the-truth-is-out-there/internal/common"
	"github.com/Veraticus/the-truth-is-out-there/internal/config"
	"github.com/Veraticus/the-truth-is-out-there/internal/ingest"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/storage"
)

var errNoDatabase = common.NewUserError("No sightings yet. Run `truth import --csv <file>` first", common.ErrNoRecords)

// loadRecords reads sightings from the CSV when one is configured, and
// from the database otherwise.
func loadRecords(ctx context.Context, cfg config.Dashboard) ([]model.Record, error) {
	if err := cfg.RequireSource(); err != nil {
		return nil, err
	}

	if cfg.CSVPath != "" {
		res, err := parseFile(cfg.CSVPath, nil)
		if err != nil {
			return nil, err
		}
		return res.Records, nil
	}

	if _, err := os.Stat(cfg.DBPath); errors.Is(err, os.ErrNotExist) {
		return nil, errNoDatabase
	}

	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close database", "error", closeErr)
		}
	}()

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	recs, err := store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errNoDatabase
	}

	fields := common.Fields{"count": len(recs), "db": cfg.DBPath}
	if run, err := store.LastImport(ctx); err != nil {
		common.LogError(err, "Failed to read import history", nil)
	} else if run != nil {
		fields["source"] = run.Source
		fields["imported_at"] = run.ImportedAt
	}
	common.LogInfo("Loaded sightings", fields)
	return recs, nil
}

// parseFile parses a CSV file, copying the bytes read into progress when
// it is set.
func parseFile(path string, progress io.Writer) (ingest.Result, error) {
	f, err := os.Open(path) //nolint:gosec // user-supplied data file
	if err != nil {
		return ingest.Result{}, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close CSV", "error", closeErr)
		}
	}()

	var r io.Reader = f
	if progress != nil {
		r = io.TeeReader(f, progress)
	}

	res, err := ingest.ParseCSV(r)
	if err != nil {
		return ingest.Result{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	slog.Info("Parsed sightings",
		"file", path,
		"records", len(res.Records),
		"skipped", res.Skipped)
	return res, nil
}

// skipLines lists skip reasons by descending count, then name.
func skipLines(reasons map[ingest.SkipReason]int) []string {
	keys := make([]ingest.SkipReason, 0, len(reasons))
	for k := range reasons {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if reasons[keys[i]] != reasons[keys[j]] {
			return reasons[keys[i]] > reasons[keys[j]]
		}
		return keys[i] < keys[j]
	})

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%-20s %d", k, reasons[k])
	}
	return lines
}
