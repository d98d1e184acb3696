// Package records provides test infrastructure for building sighting
// records. It offers a fluent API for assembling valid records and a few
// predefined fixtures shared across package tests.
//
// # Basic Usage
//
//	recs := records.NewBuilder().
//		Add(records.Sighting().Year(2000).Shape("disk").Seconds(50)).
//		Build()
//
// # Using Fixtures
//
//	store := dataset.New(records.Fixture(records.FixtureScenario))
//
// Every record a Sighting produces is valid by default: it sits in the
// continental United States, in January 2000 at noon, with a one minute
// duration. Tests override only the fields they assert on.
package records
