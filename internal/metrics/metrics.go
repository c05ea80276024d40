package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

var (
	launchesDesc = prometheus.NewDesc(
		"launchdash_dataset_launches",
		"Launch records loaded per site and outcome",
		[]string{"site", "outcome"},
		nil,
	)

	chartQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchdash_chart_queries_total",
			Help: "Chart queries computed by chart and site selection",
		},
		[]string{"chart", "site"},
	)

	sourceUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "launchdash_source_up",
		Help: "Whether the dataset's backing database answered the last check (1) or not (0)",
	})
)

// DatasetCollector is a custom Prometheus collector that reports the loaded
// dataset on each scrape.
type DatasetCollector struct {
	ds *dataset.Dataset
}

// NewDatasetCollector creates a collector for ds.
func NewDatasetCollector(ds *dataset.Dataset) *DatasetCollector {
	return &DatasetCollector{ds: ds}
}

// Describe sends the metric descriptor to the channel.
func (c *DatasetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- launchesDesc
}

// Collect counts launches per site and outcome and emits them as gauges.
func (c *DatasetCollector) Collect(ch chan<- prometheus.Metric) {
	type key struct {
		site    string
		outcome int
	}
	counts := make(map[key]int)
	c.ds.Each(func(r models.LaunchRecord) {
		counts[key{r.Site, r.Outcome}]++
	})

	for _, site := range c.ds.Sites() {
		for _, outcome := range []int{models.OutcomeFailure, models.OutcomeSuccess} {
			ch <- prometheus.MustNewConstMetric(
				launchesDesc,
				prometheus.GaugeValue,
				float64(counts[key{site, outcome}]),
				site,
				models.OutcomeLabel(outcome),
			)
		}
	}
}

// Recorder counts chart queries, folding unknown sites into a single label.
type Recorder struct {
	ds *dataset.Dataset
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(ds *dataset.Dataset) {
	recorderOnce.Do(func() {
		recorder = &Recorder{ds: ds}
		prometheus.MustRegister(NewDatasetCollector(ds), chartQueries, sourceUp)
	})
}

// RecordChartQuery counts a chart query for the given site selection.
func RecordChartQuery(chart, site string) {
	if recorder == nil {
		return
	}
	chartQueries.WithLabelValues(chart, recorder.siteLabel(site)).Inc()
}

func (r *Recorder) siteLabel(site string) string {
	if site == models.AllSites || r.ds.HasSite(site) {
		return site
	}
	return "unknown"
}

// SetSourceUp records the outcome of a backing store check.
func SetSourceUp(up bool) {
	if up {
		sourceUp.Set(1)
		return
	}
	sourceUp.Set(0)
}
