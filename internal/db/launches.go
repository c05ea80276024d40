package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"launchdash/internal/models"
)

var launchColumns = []string{
	"flight_number",
	"launch_site",
	"class",
	"payload_mass_kg",
	"booster_version",
	"booster_version_category",
}

// GetLaunches returns every launch in insertion order.
func (d *DB) GetLaunches(ctx context.Context) ([]models.LaunchRecord, error) {
	query := `
		SELECT flight_number, launch_site, class, payload_mass_kg, booster_version, booster_version_category
		FROM launches
		ORDER BY id
	`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query launches: %w", err)
	}
	defer rows.Close()

	var launches []models.LaunchRecord
	for rows.Next() {
		var r models.LaunchRecord
		if err := rows.Scan(
			&r.FlightNumber, &r.Site, &r.Outcome, &r.PayloadMassKg,
			&r.BoosterVersion, &r.BoosterVersionCategory,
		); err != nil {
			return nil, fmt.Errorf("failed to scan launch: %w", err)
		}
		launches = append(launches, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read launches: %w", err)
	}

	if len(launches) == 0 {
		return nil, ErrNoLaunches
	}

	return launches, nil
}

// ReplaceLaunches swaps the contents of the launches table for records in one transaction.
func (d *DB) ReplaceLaunches(ctx context.Context, records []models.LaunchRecord) (int64, error) {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE launches RESTART IDENTITY"); err != nil {
		return 0, fmt.Errorf("failed to truncate launches: %w", err)
	}

	n, err := copyLaunches(ctx, tx, records)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit launches: %w", err)
	}
	return n, nil
}

// AppendLaunches adds records after the existing rows.
func (d *DB) AppendLaunches(ctx context.Context, records []models.LaunchRecord) (int64, error) {
	conn, err := d.Pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	return copyLaunches(ctx, conn.Conn(), records)
}

type copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

func copyLaunches(ctx context.Context, c copier, records []models.LaunchRecord) (int64, error) {
	n, err := c.CopyFrom(ctx, pgx.Identifier{"launches"}, launchColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{
				r.FlightNumber, r.Site, r.Outcome, r.PayloadMassKg,
				r.BoosterVersion, r.BoosterVersionCategory,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy launches: %w", err)
	}
	return n, nil
}
