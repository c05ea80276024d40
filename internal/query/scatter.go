package query

import (
	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// Scatter plot titles and axis labels.
const (
	TitleAllSitesScatter = "Payload vs. Outcome for All Sites"
	AxisPayload          = "Payload Mass (kg)"
	AxisOutcome          = "Launch Outcome"
)

// Scatter selects the launches inside the payload range, restricted to the
// selected site unless it is models.AllSites. Dataset order is preserved.
func Scatter(ds *dataset.Dataset, selectedSite string, r models.PayloadRange) models.ScatterChart {
	title := TitleAllSitesScatter
	if selectedSite != models.AllSites {
		title = "Payload vs. Outcome for site " + selectedSite
	}

	points := make([]models.ScatterPoint, 0)
	ds.Each(func(rec models.LaunchRecord) {
		if !r.Contains(rec.PayloadMassKg) {
			return
		}
		if selectedSite != models.AllSites && rec.Site != selectedSite {
			return
		}
		points = append(points, models.ScatterPoint{
			PayloadMassKg:          rec.PayloadMassKg,
			Outcome:                rec.Outcome,
			BoosterVersionCategory: rec.BoosterVersionCategory,
			Site:                   rec.Site,
			FlightNumber:           rec.FlightNumber,
			BoosterVersion:         rec.BoosterVersion,
		})
	})

	return models.ScatterChart{
		Site:   selectedSite,
		Range:  r,
		Title:  title,
		XAxis:  AxisPayload,
		YAxis:  AxisOutcome,
		Points: points,
	}
}
