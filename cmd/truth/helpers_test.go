package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-truth-is-out-there/internal/common"
	"github.com/Veraticus/the-truth-is-out-there/internal/config"
	"github.com/Veraticus/the-truth-is-out-there/internal/ingest"
	"github.com/Veraticus/the-truth-is-out-there/internal/storage"
	"github.com/Veraticus/the-truth-is-out-there/internal/testutil/records"
)

const sampleCSV = `date_time,city,ufo_shape,encounter_length,description,latitude,longitude
10/10/1949 20:30,san marcos,cylinder,2700,early fall sighting,29.88,-97.94
2004-06-01 03:15:00,austin,light,45.5,orange light,30.2,-97.7
1/1/2000 00:00,nowhere,disk,60,no coordinates,NA,NA
`

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sightings.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))
	return path
}

func TestLoadRecords_FromCSV(t *testing.T) {
	recs, err := loadRecords(context.Background(), config.Dashboard{CSVPath: writeCSV(t)})
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestLoadRecords_FromDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "truth.db")

	store, err := storage.NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.SaveRecords(ctx, records.Fixture(records.FixtureSpread)))
	require.NoError(t, store.Close())

	recs, err := loadRecords(ctx, config.Dashboard{DBPath: path})
	require.NoError(t, err)
	assert.Len(t, recs, 6)
}

func TestLoadRecords_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := loadRecords(ctx, config.Dashboard{})
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	_, err = loadRecords(ctx, config.Dashboard{DBPath: filepath.Join(t.TempDir(), "missing.db")})
	assert.ErrorIs(t, err, common.ErrNoRecords)

	empty := filepath.Join(t.TempDir(), "empty.db")
	store, err := storage.NewSQLiteStorage(empty)
	require.NoError(t, err)
	require.NoError(t, store.Close())
	_, err = loadRecords(ctx, config.Dashboard{DBPath: empty})
	assert.ErrorIs(t, err, common.ErrNoRecords)
}

func TestParseFile_CopiesProgress(t *testing.T) {
	var seen countingWriter
	res, err := parseFile(writeCSV(t), &seen)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, len(sampleCSV), int(seen))
}

func TestSkipLines(t *testing.T) {
	lines := skipLines(map[ingest.SkipReason]int{
		ingest.SkipBadDuration:        1,
		ingest.SkipMissingCoordinates: 4,
		ingest.SkipBadTimestamp:       1,
	})
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "missing_coordinates")
	assert.Contains(t, lines[1], "bad_duration")
	assert.Contains(t, lines[2], "bad_timestamp")
}

type countingWriter int

func (c *countingWriter) Write(p []byte) (int, error) {
	*c += countingWriter(len(p))
	return len(p), nil
}
