// Package testutil provides shared test helpers: an in-memory storage
// seeded with sighting records, and record builders in the records
// subpackage.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/storage"
	"github.com/Veraticus/the-truth-is-out-there/internal/testutil/records"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
	Records []model.Record
}

// SetupTestDB creates a new in-memory test database seeded with recs.
// It automatically handles migrations and cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t, records.Fixture(records.FixtureSpread))
func SetupTestDB(t *testing.T, recs []model.Record) *TestDB {
	t.Helper()

	// Create in-memory SQLite storage
	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Run migrations
	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Seed records if provided
	if len(recs) > 0 {
		if err := store.SaveRecords(ctx, recs); err != nil {
			t.Fatalf("failed to seed %d records: %v", len(recs), err)
		}
	}

	// Register cleanup
	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		Records: recs,
		t:       t,
	}
}

// SetupTestDBWithBuilder creates a test database from a record builder.
//
// Example:
//
//	db := testutil.SetupTestDBWithBuilder(t, func(b *records.Builder) *records.Builder {
//		return b.WithFixture(records.FixtureScenario).Add(records.Sighting().Shape("cigar"))
//	})
func SetupTestDBWithBuilder(t *testing.T, configure func(*records.Builder) *records.Builder) *TestDB {
	t.Helper()

	builder := records.NewBuilder()
	if configure != nil {
		builder = configure(builder)
	}
	return SetupTestDB(t, builder.Build())
}

// MustLoad returns every stored record or fails the test.
func (db *TestDB) MustLoad() []model.Record {
	db.t.Helper()
	recs, err := db.Storage.LoadRecords(context.Background())
	if err != nil {
		db.t.Fatalf("failed to load records: %v", err)
	}
	return recs
}
