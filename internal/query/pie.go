// Package query computes chart data from the launch dataset.
//
// Every function is pure with respect to the dataset it receives: the same
// selection always yields the same result.
package query

import (
	"sort"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// TitleAllSitesPie is the pie chart title when no site filter is applied.
const TitleAllSitesPie = "Total Success Launches by Site"

// Pie aggregates launch outcomes for the selected site.
//
// For models.AllSites there is one slice per site holding its success count.
// For a single site there is one slice per observed outcome, largest first.
// An unknown site yields no slices.
func Pie(ds *dataset.Dataset, selectedSite string) models.PieChart {
	if selectedSite == models.AllSites {
		return pieAllSites(ds)
	}
	return pieForSite(ds, selectedSite)
}

func pieAllSites(ds *dataset.Dataset) models.PieChart {
	successes := make(map[string]int)
	ds.Each(func(r models.LaunchRecord) {
		if r.IsSuccess() {
			successes[r.Site]++
		}
	})

	sites := ds.Sites()
	slices := make([]models.PieSlice, 0, len(sites))
	for _, site := range sites {
		slices = append(slices, models.PieSlice{Label: site, Value: successes[site]})
	}

	return models.PieChart{
		Site:   models.AllSites,
		Title:  TitleAllSitesPie,
		Slices: slices,
	}
}

func pieForSite(ds *dataset.Dataset, site string) models.PieChart {
	counts := make(map[int]int)
	var order []int
	ds.Each(func(r models.LaunchRecord) {
		if r.Site != site {
			return
		}
		if _, ok := counts[r.Outcome]; !ok {
			order = append(order, r.Outcome)
		}
		counts[r.Outcome]++
	})

	// Largest count first; ties keep first-seen order.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	slices := make([]models.PieSlice, 0, len(order))
	for _, outcome := range order {
		slices = append(slices, models.PieSlice{
			Label: models.OutcomeLabel(outcome),
			Value: counts[outcome],
		})
	}

	return models.PieChart{
		Site:   site,
		Title:  "Success vs. Failure for site " + site,
		Slices: slices,
	}
}
