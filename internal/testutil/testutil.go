// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"launchdash/internal/dataset"
	"launchdash/internal/db"
	"launchdash/internal/models"
)

// Launches returns a small launch table covering four sites, both outcomes
// and several booster categories.
func Launches() []models.LaunchRecord {
	return []models.LaunchRecord{
		{FlightNumber: 1, Site: "CCAFS LC-40", Outcome: 0, PayloadMassKg: 0, BoosterVersion: "F9 v1.0  B0003", BoosterVersionCategory: "v1.0"},
		{FlightNumber: 7, Site: "VAFB SLC-4E", Outcome: 0, PayloadMassKg: 500, BoosterVersion: "F9 v1.1  B1003", BoosterVersionCategory: "v1.1"},
		{FlightNumber: 10, Site: "CCAFS LC-40", Outcome: 1, PayloadMassKg: 2216, BoosterVersion: "F9 v1.1  B1011", BoosterVersionCategory: "v1.1"},
		{FlightNumber: 24, Site: "KSC LC-39A", Outcome: 1, PayloadMassKg: 2490, BoosterVersion: "F9 FT B1031.1", BoosterVersionCategory: "FT"},
		{FlightNumber: 30, Site: "KSC LC-39A", Outcome: 0, PayloadMassKg: 3600, BoosterVersion: "F9 FT B1035.1", BoosterVersionCategory: "FT"},
		{FlightNumber: 39, Site: "CCAFS SLC-40", Outcome: 1, PayloadMassKg: 6092, BoosterVersion: "F9 B4 B1043.1", BoosterVersionCategory: "B4"},
		{FlightNumber: 20, Site: "VAFB SLC-4E", Outcome: 1, PayloadMassKg: 9600, BoosterVersion: "F9 FT  B1029.1", BoosterVersionCategory: "FT"},
	}
}

// Dataset builds a Dataset from Launches.
func Dataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.New(Launches())
	if err != nil {
		t.Fatalf("failed to build test dataset: %v", err)
	}
	return ds
}

// TestDB connects to TEST_DATABASE_URL, runs migrations and empties the
// launches table. The test is skipped when the variable is unset.
func TestDB(t *testing.T) *db.DB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if _, err := database.Migrate(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanup := func() {
		database.Pool.Exec(ctx, "TRUNCATE launches RESTART IDENTITY")
	}
	cleanup()
	t.Cleanup(func() {
		cleanup()
		database.Close()
	})

	return database
}
