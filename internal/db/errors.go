package db

import "errors"

var (
	// ErrNoDatabaseURL is returned when no connection string is configured.
	ErrNoDatabaseURL = errors.New("database URL is required")

	// ErrNoLaunches is returned when the launches table holds no rows.
	ErrNoLaunches = errors.New("launches table is empty")

	// ErrDirtyMigration means a previous migration failed halfway and needs manual repair.
	ErrDirtyMigration = errors.New("database schema is dirty")
)
