package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/chart"
	"launchdash/internal/dataset"
	"launchdash/internal/metrics"
	"launchdash/internal/models"
	"launchdash/internal/query"
	"launchdash/internal/validation"
)

// PieResponse carries the aggregated slices and the figure to draw.
type PieResponse struct {
	Chart  models.PieChart `json:"chart"`
	Figure *chart.Figure   `json:"figure"`
}

// ScatterResponse carries the selected points and the figure to draw.
type ScatterResponse struct {
	Chart  models.ScatterChart `json:"chart"`
	Figure *chart.Figure       `json:"figure"`
}

// ChartHandler serves chart data for the dashboard controls.
type ChartHandler struct {
	ds      *dataset.Dataset
	builder *chart.Builder
}

// NewChartHandler creates a new API chart handler.
func NewChartHandler(ds *dataset.Dataset, builder *chart.Builder) *ChartHandler {
	return &ChartHandler{ds: ds, builder: builder}
}

// Pie returns the success pie chart for the selected site.
func (h *ChartHandler) Pie(c fiber.Ctx) error {
	site, err := siteParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result := query.Pie(h.ds, site)
	metrics.RecordChartQuery(chart.TypePie, site)

	return jsonSuccess(c, PieResponse{
		Chart:  result,
		Figure: h.builder.Pie(result),
	})
}

// Scatter returns the payload/outcome scatter plot for the selected site and payload range.
// Missing range bounds default to the dataset's payload bounds.
func (h *ChartHandler) Scatter(c fiber.Ctx) error {
	site, err := siteParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	r, err := validation.ParsePayloadRange(c.Query("low"), c.Query("high"), h.ds.FullRange())
	if err != nil {
		if errors.Is(err, models.ErrInvalidRange) {
			return jsonError(c, fiber.StatusBadRequest, "invalid payload range: low and high must be non-negative numbers with low <= high")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to parse payload range")
	}

	result := query.Scatter(h.ds, site, r)
	metrics.RecordChartQuery(chart.TypeScatter, site)

	return jsonSuccess(c, ScatterResponse{
		Chart:  result,
		Figure: h.builder.Scatter(result),
	})
}

var errInvalidSite = errors.New("invalid site")

func siteParam(c fiber.Ctx) (string, error) {
	site := validation.NormalizeSite(c.Query("site"))
	if !validation.ValidateSite(site) {
		return "", errInvalidSite
	}
	return site, nil
}
