package api

import (
	"github.com/gofiber/fiber/v3"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/query"
)

// OptionsHandler serves the dashboard control settings.
type OptionsHandler struct {
	ds   *dataset.Dataset
	dash *config.DashboardConfig
}

// NewOptionsHandler creates a new API options handler.
func NewOptionsHandler(ds *dataset.Dataset, dash *config.DashboardConfig) *OptionsHandler {
	return &OptionsHandler{ds: ds, dash: dash}
}

// Options returns the site dropdown entries, slider settings and initial selection.
func (h *OptionsHandler) Options(c fiber.Ctx) error {
	return jsonSuccess(c, query.Options(h.ds, h.dash))
}
