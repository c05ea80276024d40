package query

import (
	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// AllSitesLabel is the dropdown label of the models.AllSites entry.
const AllSitesLabel = "All Sites"

// Options builds the dashboard controls: the site dropdown with the
// all-sites entry first, and the payload slider starting at the dataset bounds.
func Options(ds *dataset.Dataset, dash *config.DashboardConfig) models.DashboardOptions {
	sites := ds.Sites()
	opts := make([]models.SiteOption, 0, len(sites)+1)
	opts = append(opts, models.SiteOption{Label: AllSitesLabel, Value: models.AllSites})
	for _, site := range sites {
		opts = append(opts, models.SiteOption{Label: dash.SiteLabel(site), Value: site})
	}

	marks := dash.Slider.SortedMarks()
	sliderMarks := make([]models.SliderMark, 0, len(marks))
	for _, m := range marks {
		sliderMarks = append(sliderMarks, models.SliderMark{Value: m.Value, Label: m.Label})
	}

	return models.DashboardOptions{
		Sites: opts,
		Slider: models.SliderOptions{
			Min:   dash.Slider.Min,
			Max:   dash.Slider.Max,
			Step:  dash.Slider.Step,
			Marks: sliderMarks,
		},
		InitialSite:  models.AllSites,
		InitialRange: ds.FullRange(),
	}
}
