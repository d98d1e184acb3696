package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/testutil/records"
)

func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func TestNewSQLiteStorage(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.ErrorIs(t, err, ErrEmptyString)

	nested := filepath.Join(t.TempDir(), "a", "b", "sightings.db")
	store, err := NewSQLiteStorage(nested)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	assert.Equal(t, nested, store.Path())
	assert.FileExists(t, nested)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
	assert.Equal(t, ExpectedSchemaVersion, migrations[len(migrations)-1].Version)
}

func TestSaveAndLoadRecords(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	recs := records.Fixture(records.FixtureSpread)
	require.NoError(t, store.SaveRecords(ctx, recs))

	loaded, err := store.LoadRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, recs, loaded)

	n, err := store.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(recs), n)
}

func TestSaveRecordsReplacesByID(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	recs := records.Fixture(records.FixtureScenario)
	require.NoError(t, store.SaveRecords(ctx, recs))

	changed := recs[1]
	changed.Category = "cigar"
	require.NoError(t, store.SaveRecords(ctx, []model.Record{changed}))

	loaded, err := store.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "cigar", loaded[1].Category)
}

func TestSaveRecordsValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	valid := records.Fixture(records.FixtureScenario)

	noID := valid[0]
	noID.ID = 0

	bad := valid[0]
	bad.Category = ""

	tests := []struct {
		ctx     context.Context
		wantErr error
		name    string
		recs    []model.Record
	}{
		{name: "nil context", ctx: nil, recs: valid, wantErr: ErrNilContext},
		{name: "empty slice", ctx: ctx, recs: nil, wantErr: ErrEmptySlice},
		{name: "missing id", ctx: ctx, recs: []model.Record{noID}, wantErr: ErrInvalidRecord},
		{name: "duplicate id", ctx: ctx, recs: []model.Record{valid[0], valid[0]}, wantErr: ErrInvalidRecord},
		{name: "malformed", ctx: ctx, recs: []model.Record{bad}, wantErr: ErrInvalidRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveRecords(tt.ctx, tt.recs) //nolint:staticcheck // nil context is under test
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	n, err := store.CountRecords(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSaveRecordsHonorsCancellation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.SaveRecords(ctx, records.Fixture(records.FixtureScenario))
	require.Error(t, err)

	n, err := store.CountRecords(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteAllRecords(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.SaveRecords(ctx, records.Fixture(records.FixtureScenario)))
	require.NoError(t, store.DeleteAllRecords(ctx))

	loaded, err := store.LoadRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestImportHistory(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	run, err := store.LastImport(ctx)
	require.NoError(t, err)
	assert.Nil(t, run)

	require.NoError(t, store.RecordImport(ctx, "first.csv", 10, 2))
	require.NoError(t, store.RecordImport(ctx, "second.csv", 7, 0))

	run, err = store.LastImport(ctx)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "second.csv", run.Source)
	assert.Equal(t, 7, run.Saved)
	assert.Zero(t, run.Skipped)
	assert.False(t, run.ImportedAt.IsZero())

	assert.ErrorIs(t, store.RecordImport(ctx, "", 1, 1), ErrEmptyString)
	assert.ErrorIs(t, store.RecordImport(ctx, "x.csv", -1, 0), ErrNegativeCounts)
}
