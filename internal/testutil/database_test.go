package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/the-truth-is-out-there/internal/testutil/records"
)

func TestSetupTestDB(t *testing.T) {
	db := SetupTestDB(t, records.Fixture(records.FixtureSpread))
	assert.Equal(t, db.Records, db.MustLoad())
}

func TestSetupTestDBWithBuilder(t *testing.T) {
	db := SetupTestDBWithBuilder(t, func(b *records.Builder) *records.Builder {
		return b.WithFixture(records.FixtureScenario).Add(records.Sighting().Shape("cigar"))
	})

	loaded := db.MustLoad()
	assert.Len(t, loaded, 4)
	assert.Equal(t, "cigar", loaded[3].Category)
}

func TestSetupTestDBEmpty(t *testing.T) {
	db := SetupTestDB(t, nil)
	assert.Empty(t, db.MustLoad())
}
