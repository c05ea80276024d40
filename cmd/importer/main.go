// Command importer loads a launch CSV into the Postgres launches table so the
// server can run with DATA_SOURCE=postgres.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/db"
	"launchdash/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	var (
		csvPath     string
		databaseURL string
		appendRows  bool
	)

	cmd := &cobra.Command{
		Use:          "importer",
		Short:        "Import launch records from CSV into Postgres",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
			return runImport(cmd.Context(), csvPath, databaseURL, appendRows)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", cfg.DataFile, "path to the launch CSV file")
	cmd.Flags().StringVar(&databaseURL, "database-url", cfg.DatabaseURL, "Postgres connection URL (env: DATABASE_URL)")
	cmd.Flags().BoolVar(&appendRows, "append", false, "append to existing rows instead of replacing them")

	return cmd
}

func runImport(ctx context.Context, csvPath, databaseURL string, appendRows bool) error {
	log := logging.New("importer")

	// Fail before reading the CSV
	if databaseURL == "" {
		return fmt.Errorf("--database-url or DATABASE_URL: %w", db.ErrNoDatabaseURL)
	}

	ds, err := dataset.Load(csvPath)
	if err != nil {
		return err
	}

	database, err := db.New(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	version, err := database.Migrate(databaseURL)
	if err != nil {
		return err
	}
	log.Debug("schema migrated", "version", version)

	var n int64
	if appendRows {
		n, err = database.AppendLaunches(ctx, ds.Records())
	} else {
		n, err = database.ReplaceLaunches(ctx, ds.Records())
	}
	if err != nil {
		return err
	}

	log.Info("launches imported", "file", csvPath, "rows", n, "sites", len(ds.Sites()), "append", appendRows)
	return nil
}
