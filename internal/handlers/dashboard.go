package handlers

import (
	"github.com/gofiber/fiber/v3"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/models"
	"launchdash/internal/query"
)

// DashboardHandler renders the dashboard page.
type DashboardHandler struct {
	ds   *dataset.Dataset
	dash *config.DashboardConfig
	cfg  *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(ds *dataset.Dataset, dash *config.DashboardConfig, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{ds: ds, dash: dash, cfg: cfg}
}

// Index renders the site dropdown, payload slider and chart containers.
// The page script fetches chart data from the API whenever a control changes.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	opts := query.Options(h.ds, h.dash)
	viewer, _ := c.Locals("viewer").(*models.Viewer)

	return c.Render("dashboard", MergeBranding(fiber.Map{
		"Title":    h.cfg.SiteTitle,
		"Options":  opts,
		"Launches": h.ds.Len(),
		"Viewer":   viewer,
	}, h.cfg))
}
