package models

import (
	"errors"
	"math"
)

// AllSites is the site selector value that disables site filtering.
const AllSites = "ALL"

// Launch outcome values as stored in the class column.
const (
	OutcomeFailure = 0
	OutcomeSuccess = 1
)

// Outcome labels used as pie slice names.
const (
	LabelFailure = "Failure"
	LabelSuccess = "Success"
)

// ErrInvalidRange is returned for payload ranges that are negative, NaN or inverted.
var ErrInvalidRange = errors.New("invalid payload range")

// LaunchRecord is one launch attempt from the dataset.
type LaunchRecord struct {
	FlightNumber           int     `json:"flight_number,omitempty"`
	Site                   string  `json:"launch_site"`
	Outcome                int     `json:"class"`
	PayloadMassKg          float64 `json:"payload_mass_kg"`
	BoosterVersion         string  `json:"booster_version,omitempty"`
	BoosterVersionCategory string  `json:"booster_version_category"`
}

// IsSuccess reports whether the launch succeeded.
func (r LaunchRecord) IsSuccess() bool {
	return r.Outcome == OutcomeSuccess
}

// OutcomeLabel maps an outcome value to its display label.
func OutcomeLabel(outcome int) string {
	if outcome == OutcomeSuccess {
		return LabelSuccess
	}
	return LabelFailure
}

// PayloadRange is an inclusive payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// NewPayloadRange validates and returns a payload range.
func NewPayloadRange(low, high float64) (PayloadRange, error) {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) {
		return PayloadRange{}, ErrInvalidRange
	}
	if low < 0 || high < 0 || low > high {
		return PayloadRange{}, ErrInvalidRange
	}
	return PayloadRange{Low: low, High: high}, nil
}

// Contains reports whether mass lies within the range, bounds included.
func (p PayloadRange) Contains(mass float64) bool {
	return p.Low <= mass && mass <= p.High
}
