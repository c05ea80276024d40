package models

// SiteOption is one entry of the launch site dropdown.
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SliderMark is a labelled position on the payload slider.
type SliderMark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// SliderOptions describes the payload range slider.
type SliderOptions struct {
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Marks []SliderMark `json:"marks"`
}

// DashboardOptions contains everything the page needs to build its controls.
type DashboardOptions struct {
	Sites        []SiteOption  `json:"sites"`
	Slider       SliderOptions `json:"slider"`
	InitialSite  string        `json:"initial_site"`
	InitialRange PayloadRange  `json:"initial_range"`
}
