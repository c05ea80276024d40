// Package chart turns query results into figure descriptions the dashboard
// page renders in the browser.
package chart

import (
	"fmt"

	"launchdash/internal/models"
)

// Chart types understood by the page script.
const (
	TypePie     = "pie"
	TypeScatter = "scatter"
)

// DefaultPalette is used when the dashboard config does not set one.
var DefaultPalette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Figure defines how to render a chart.
type Figure struct {
	ChartType  string   `json:"chartType"`
	Title      string   `json:"title"`
	XAxis      string   `json:"xAxis,omitempty"`
	YAxis      string   `json:"yAxis,omitempty"`
	Series     []Series `json:"series"`
	Colors     []string `json:"colors,omitempty"`
	ShowLegend bool     `json:"showLegend"`
	ShowGrid   bool     `json:"showGrid"`
}

// Series is a named group of points drawn in one colour.
type Series struct {
	Name  string  `json:"name"`
	Data  []Point `json:"data"`
	Color string  `json:"color,omitempty"`
}

// Point is a single data point. Pie points use Label and Value; scatter
// points use X, Y and Label as hover text.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Builder produces figures with a fixed colour palette.
type Builder struct {
	palette []string
}

// NewBuilder creates a figure builder. An empty palette selects DefaultPalette.
func NewBuilder(palette []string) *Builder {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Builder{palette: palette}
}

// Pie builds a single-series pie figure with one colour per slice.
func (b *Builder) Pie(p models.PieChart) *Figure {
	points := make([]Point, 0, len(p.Slices))
	for _, s := range p.Slices {
		points = append(points, Point{Label: s.Label, Value: float64(s.Value)})
	}

	return &Figure{
		ChartType:  TypePie,
		Title:      p.Title,
		Series:     []Series{{Name: p.Title, Data: points}},
		Colors:     b.colors(len(points)),
		ShowLegend: true,
		ShowGrid:   false,
	}
}

// Scatter builds one series per booster version category, ordered by first
// appearance, so each category gets its own colour and legend entry.
func (b *Builder) Scatter(s models.ScatterChart) *Figure {
	categories := s.Categories()
	index := make(map[string]int, len(categories))
	series := make([]Series, len(categories))
	for i, c := range categories {
		index[c] = i
		series[i] = Series{Name: c, Data: []Point{}, Color: b.palette[i%len(b.palette)]}
	}

	for _, p := range s.Points {
		i := index[p.BoosterVersionCategory]
		series[i].Data = append(series[i].Data, Point{
			Label: hoverLabel(p),
			X:     p.PayloadMassKg,
			Y:     float64(p.Outcome),
		})
	}

	return &Figure{
		ChartType:  TypeScatter,
		Title:      s.Title,
		XAxis:      s.XAxis,
		YAxis:      s.YAxis,
		Series:     series,
		Colors:     b.colors(len(series)),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

func (b *Builder) colors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = b.palette[i%len(b.palette)]
	}
	return colors
}

func hoverLabel(p models.ScatterPoint) string {
	label := p.Site
	if p.BoosterVersion != "" {
		label += " · " + p.BoosterVersion
	}
	if p.FlightNumber > 0 {
		label = fmt.Sprintf("Flight %d · %s", p.FlightNumber, label)
	}
	return label
}
