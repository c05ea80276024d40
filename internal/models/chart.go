package models

// PieSlice is one labelled value of a pie chart.
type PieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PieChart is the result of the pie aggregation for a site selection.
type PieChart struct {
	Site   string     `json:"site"`
	Title  string     `json:"title"`
	Slices []PieSlice `json:"slices"`
}

// Total returns the sum of all slice values.
func (p PieChart) Total() int {
	total := 0
	for _, s := range p.Slices {
		total += s.Value
	}
	return total
}

// ScatterPoint is one launch projected for the payload/outcome scatter plot.
type ScatterPoint struct {
	PayloadMassKg          float64 `json:"payload_mass_kg"`
	Outcome                int     `json:"class"`
	BoosterVersionCategory string  `json:"booster_version_category"`
	Site                   string  `json:"launch_site"`
	FlightNumber           int     `json:"flight_number,omitempty"`
	BoosterVersion         string  `json:"booster_version,omitempty"`
}

// ScatterChart is the result of the scatter selection.
type ScatterChart struct {
	Site   string         `json:"site"`
	Range  PayloadRange   `json:"range"`
	Title  string         `json:"title"`
	XAxis  string         `json:"x_axis"`
	YAxis  string         `json:"y_axis"`
	Points []ScatterPoint `json:"points"`
}

// Categories returns the distinct booster version categories in point order.
func (s ScatterChart) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.Points {
		if !seen[p.BoosterVersionCategory] {
			seen[p.BoosterVersionCategory] = true
			categories = append(categories, p.BoosterVersionCategory)
		}
	}
	return categories
}
