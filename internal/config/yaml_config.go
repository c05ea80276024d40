package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DashboardConfig represents the structure of the dashboard.yaml file.
// Presentation settings that are easier to manage in YAML than env vars.
type DashboardConfig struct {
	Slider     SliderConfig      `yaml:"slider"`
	SiteLabels map[string]string `yaml:"site_labels,omitempty"` // Launch site -> dropdown label
	Palette    []string          `yaml:"palette,omitempty"`     // Chart colours, assigned round-robin
}

// SliderConfig defines the payload range slider.
type SliderConfig struct {
	Min   float64            `yaml:"min"`
	Max   float64            `yaml:"max"`
	Step  float64            `yaml:"step"`
	Marks map[float64]string `yaml:"marks,omitempty"`
}

// Mark is a single labelled slider position.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// DefaultDashboardConfig returns the settings used when no config file exists.
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		Slider: SliderConfig{
			Min:  0,
			Max:  10000,
			Step: 1000,
			Marks: map[float64]string{
				0:     "0",
				2500:  "2.5k",
				5000:  "5k",
				7500:  "7.5k",
				10000: "10k",
			},
		},
	}
}

// LoadDashboardConfig loads the YAML dashboard configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "dashboard.yaml".
// Returns the defaults without error if the config file doesn't exist.
func LoadDashboardConfig() (*DashboardConfig, error) {
	return LoadDashboardConfigFile(getEnv("CONFIG_FILE", "dashboard.yaml"))
}

// LoadDashboardConfigFile loads the dashboard configuration from path.
func LoadDashboardConfigFile(path string) (*DashboardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return DefaultDashboardConfig(), nil
		}
		return nil, err
	}

	var cfg DashboardConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Set defaults
	if cfg.Slider.Min == 0 && cfg.Slider.Max == 0 {
		cfg.Slider = DefaultDashboardConfig().Slider
	}
	if cfg.Slider.Max < cfg.Slider.Min {
		return nil, fmt.Errorf("slider max %v is below min %v", cfg.Slider.Max, cfg.Slider.Min)
	}
	if cfg.Slider.Step <= 0 {
		cfg.Slider.Step = 1000
	}

	return &cfg, nil
}

// SiteLabel returns the dropdown label for a launch site.
func (c *DashboardConfig) SiteLabel(site string) string {
	if c != nil {
		if label, ok := c.SiteLabels[site]; ok && label != "" {
			return label
		}
	}
	return site
}

// SortedMarks returns the slider marks ordered by position.
func (s SliderConfig) SortedMarks() []Mark {
	marks := make([]Mark, 0, len(s.Marks))
	for v, label := range s.Marks {
		marks = append(marks, Mark{Value: v, Label: label})
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].Value < marks[j].Value })
	return marks
}
