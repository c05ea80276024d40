// Package dataset holds the launch table loaded once at startup.
//
// A Dataset is immutable after construction and safe for concurrent readers.
package dataset

import (
	"fmt"
	"math"

	"launchdash/internal/models"
)

// Dataset is the read-only table of launch records.
type Dataset struct {
	records    []models.LaunchRecord
	sites      []string
	siteIndex  map[string]struct{}
	categories []string
	minPayload float64
	maxPayload float64
}

// New validates records and builds a Dataset. The slice is copied.
func New(records []models.LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	ds := &Dataset{
		records:    make([]models.LaunchRecord, len(records)),
		siteIndex:  make(map[string]struct{}),
		minPayload: math.Inf(1),
		maxPayload: math.Inf(-1),
	}
	copy(ds.records, records)

	seenCategory := make(map[string]struct{})
	for i, r := range ds.records {
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, ok := ds.siteIndex[r.Site]; !ok {
			ds.siteIndex[r.Site] = struct{}{}
			ds.sites = append(ds.sites, r.Site)
		}
		if _, ok := seenCategory[r.BoosterVersionCategory]; !ok {
			seenCategory[r.BoosterVersionCategory] = struct{}{}
			ds.categories = append(ds.categories, r.BoosterVersionCategory)
		}
		ds.minPayload = math.Min(ds.minPayload, r.PayloadMassKg)
		ds.maxPayload = math.Max(ds.maxPayload, r.PayloadMassKg)
	}

	return ds, nil
}

func validateRecord(r models.LaunchRecord) error {
	if r.Outcome != models.OutcomeFailure && r.Outcome != models.OutcomeSuccess {
		return fmt.Errorf("%w: got %d", ErrInvalidOutcome, r.Outcome)
	}
	if r.PayloadMassKg < 0 || math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidPayload, r.PayloadMassKg)
	}
	return nil
}

// Len returns the number of launch records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of all launch records in file order.
func (d *Dataset) Records() []models.LaunchRecord {
	out := make([]models.LaunchRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Each calls fn for every record in file order without copying the table.
func (d *Dataset) Each(fn func(models.LaunchRecord)) {
	for _, r := range d.records {
		fn(r)
	}
}

// Sites returns the distinct launch sites in order of first appearance.
func (d *Dataset) Sites() []string {
	out := make([]string, len(d.sites))
	copy(out, d.sites)
	return out
}

// HasSite reports whether any record was launched from site.
func (d *Dataset) HasSite(site string) bool {
	_, ok := d.siteIndex[site]
	return ok
}

// BoosterCategories returns the distinct booster version categories in order of first appearance.
func (d *Dataset) BoosterCategories() []string {
	out := make([]string, len(d.categories))
	copy(out, d.categories)
	return out
}

// PayloadBounds returns the smallest and largest payload mass in the table.
func (d *Dataset) PayloadBounds() (float64, float64) {
	return d.minPayload, d.maxPayload
}

// FullRange returns the payload range spanning every record.
func (d *Dataset) FullRange() models.PayloadRange {
	return models.PayloadRange{Low: d.minPayload, High: d.maxPayload}
}
