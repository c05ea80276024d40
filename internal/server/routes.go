package server

import (
	"context"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"launchdash/internal/chart"
	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/handlers"
	"launchdash/internal/handlers/api"
	"launchdash/internal/middleware"
)

// Deps are the loaded resources the routes serve from.
type Deps struct {
	Dataset   *dataset.Dataset
	Dashboard *config.DashboardConfig
	DB        handlers.Pinger // nil when the dataset came from a file
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, deps Deps) error {
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg.IsAuthEnabled())

	builder := chart.NewBuilder(deps.Dashboard.Palette)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dataset, deps.Dashboard, s.Cfg)
	probeHandler := handlers.NewProbeHandler(s.Cfg.DataSource, deps.Dataset.Len(), deps.DB)
	chartHandler := api.NewChartHandler(deps.Dataset, builder)
	optionsHandler := api.NewOptionsHandler(deps.Dataset, deps.Dashboard)

	// Probes and metrics stay public
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth routes - only when OIDC is configured
	if s.Cfg.IsAuthEnabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, s.log)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		s.log.Info("OIDC authentication is disabled, dashboard is public. Set OIDC_ISSUER to enable.")
	}

	// Dashboard page
	s.App.Get("/", authMiddleware.RequireViewer, dashboardHandler.Index)

	// JSON API
	apiGroup := s.App.Group("/api", authMiddleware.RequireViewer)
	apiGroup.Get("/options", optionsHandler.Options)

	charts := apiGroup.Group("/charts", s.ChartCache())
	charts.Get("/pie", chartHandler.Pie)
	charts.Get("/scatter", chartHandler.Scatter)

	return nil
}
