package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"launchdash/internal/config"
	"launchdash/internal/jobs"
	"launchdash/internal/logging"
	"launchdash/internal/metrics"
	"launchdash/internal/server"
	"launchdash/internal/source"
)

func main() {
	cfg := config.Load()
	logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	log := logging.New("server")

	if err := run(cfg); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server exited")
}

func run(cfg *config.Config) error {
	log := logging.New("server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dash, err := config.LoadDashboardConfig()
	if err != nil {
		return err
	}

	// A missing or malformed dataset aborts startup
	ds, database, err := source.Load(ctx, cfg, logging.New("source"))
	if err != nil {
		return err
	}

	metrics.Init(ds)

	g, gctx := errgroup.WithContext(ctx)

	deps := server.Deps{Dataset: ds, Dashboard: dash}
	var monitor *jobs.SourceMonitor
	if database != nil {
		defer database.Close()
		monitor = jobs.NewSourceMonitor(database, cfg.SourceCheckInterval, metrics.SetSourceUp, logging.New("jobs"))
		deps.DB = monitor
	}

	srv := server.New(cfg, logging.New("http"))
	if err := srv.RegisterRoutes(ctx, deps); err != nil {
		return err
	}

	if monitor != nil {
		g.Go(func() error { return monitor.Start(gctx) })
	}

	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
