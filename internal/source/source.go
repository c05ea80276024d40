// Package source loads the launch dataset from the configured backend.
package source

import (
	"context"
	"fmt"
	"log/slog"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/db"
)

// Load reads the dataset named by cfg. For the Postgres source the returned
// DB stays open for readiness probes and must be closed by the caller; it is
// nil for the CSV source.
func Load(ctx context.Context, cfg *config.Config, log *slog.Logger) (*dataset.Dataset, *db.DB, error) {
	switch cfg.DataSource {
	case config.SourceCSV:
		ds, err := dataset.Load(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		log.Info("dataset loaded", "source", "csv", "file", cfg.DataFile, "launches", ds.Len(), "sites", len(ds.Sites()))
		return ds, nil, nil

	case config.SourcePostgres:
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("data source %q: %w", cfg.DataSource, err)
		}
		version, err := database.Migrate(cfg.DatabaseURL)
		if err != nil {
			database.Close()
			return nil, nil, err
		}
		log.Debug("schema migrated", "version", version)
		ds, err := FromDB(ctx, database)
		if err != nil {
			database.Close()
			return nil, nil, err
		}
		log.Info("dataset loaded", "source", "postgres", "launches", ds.Len(), "sites", len(ds.Sites()))
		return ds, database, nil

	default:
		return nil, nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}

// FromDB reads every launch from the database into a Dataset.
func FromDB(ctx context.Context, database *db.DB) (*dataset.Dataset, error) {
	records, err := database.GetLaunches(ctx)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.New(records)
	if err != nil {
		return nil, fmt.Errorf("invalid launches in database: %w", err)
	}
	return ds, nil
}
