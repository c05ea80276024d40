package db

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"launchdash/internal/models"
)

func skipIfNoTestDB(t *testing.T) {
	t.Helper()
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}
}

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	skipIfNoTestDB(t)

	connString := os.Getenv("TEST_DATABASE_URL")
	ctx := context.Background()

	database, err := New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if _, err := database.Migrate(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Clean before test
	database.Pool.Exec(ctx, "TRUNCATE launches RESTART IDENTITY")

	t.Cleanup(func() {
		database.Pool.Exec(ctx, "TRUNCATE launches RESTART IDENTITY")
		database.Close()
	})

	return database
}

func sampleLaunches() []models.LaunchRecord {
	return []models.LaunchRecord{
		{FlightNumber: 1, Site: "CCAFS LC-40", Outcome: 0, PayloadMassKg: 0, BoosterVersion: "F9 v1.0  B0003", BoosterVersionCategory: "v1.0"},
		{FlightNumber: 24, Site: "KSC LC-39A", Outcome: 1, PayloadMassKg: 2490, BoosterVersion: "F9 FT B1031.1", BoosterVersionCategory: "FT"},
		{FlightNumber: 20, Site: "VAFB SLC-4E", Outcome: 1, PayloadMassKg: 9600, BoosterVersion: "F9 FT  B1029.1", BoosterVersionCategory: "FT"},
	}
}

func TestGetLaunches_Empty(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetLaunches(context.Background())
	if !errors.Is(err, ErrNoLaunches) {
		t.Errorf("GetLaunches() error = %v, want ErrNoLaunches", err)
	}
}

func TestReplaceLaunches_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	n, err := db.ReplaceLaunches(ctx, sampleLaunches())
	if err != nil {
		t.Fatalf("ReplaceLaunches() error = %v", err)
	}
	if n != 3 {
		t.Errorf("ReplaceLaunches() = %d rows, want 3", n)
	}

	got, err := db.GetLaunches(ctx)
	if err != nil {
		t.Fatalf("GetLaunches() error = %v", err)
	}
	if diff := cmp.Diff(sampleLaunches(), got); diff != "" {
		t.Errorf("launches mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceLaunches_DropsExistingRows(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.AppendLaunches(ctx, sampleLaunches()); err != nil {
		t.Fatalf("AppendLaunches() error = %v", err)
	}
	if _, err := db.ReplaceLaunches(ctx, sampleLaunches()[:1]); err != nil {
		t.Fatalf("ReplaceLaunches() error = %v", err)
	}

	got, err := db.GetLaunches(ctx)
	if err != nil {
		t.Fatalf("GetLaunches() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d launches after replace, want 1", len(got))
	}
}

func TestAppendLaunches_PreservesOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	launches := sampleLaunches()
	if _, err := db.AppendLaunches(ctx, launches[:2]); err != nil {
		t.Fatalf("AppendLaunches() error = %v", err)
	}
	if _, err := db.AppendLaunches(ctx, launches[2:]); err != nil {
		t.Fatalf("AppendLaunches() error = %v", err)
	}

	got, err := db.GetLaunches(ctx)
	if err != nil {
		t.Fatalf("GetLaunches() error = %v", err)
	}
	if diff := cmp.Diff(launches, got); diff != "" {
		t.Errorf("launches mismatch (-want +got):\n%s", diff)
	}
}
