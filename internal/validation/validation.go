package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"launchdash/internal/models"
)

// MaxSiteLength is the longest accepted site selector, in characters.
const MaxSiteLength = 100

// ValidateSite checks if a site selector value is well formed: non-empty,
// at most MaxSiteLength characters, valid UTF-8 and printable.
// It does not check that the site exists; unknown sites produce empty charts.
func ValidateSite(site string) bool {
	if site == "" || !utf8.ValidString(site) || utf8.RuneCountInString(site) > MaxSiteLength {
		return false
	}
	for _, r := range site {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// NormalizeSite trims surrounding whitespace and maps an empty value to models.AllSites.
// Only the exact sentinel selects all sites, so a site named "All" stays selectable.
func NormalizeSite(site string) string {
	site = strings.TrimSpace(site)
	if site == "" {
		return models.AllSites
	}
	return site
}

// ParsePayloadRange parses the low and high query values of the payload slider.
// An empty value takes the matching bound of fallback.
func ParsePayloadRange(lowStr, highStr string, fallback models.PayloadRange) (models.PayloadRange, error) {
	low, err := parseBound(lowStr, fallback.Low)
	if err != nil {
		return models.PayloadRange{}, fmt.Errorf("low: %w", err)
	}
	high, err := parseBound(highStr, fallback.High)
	if err != nil {
		return models.PayloadRange{}, fmt.Errorf("high: %w", err)
	}
	return models.NewPayloadRange(low, high)
}

func parseBound(s string, fallback float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, models.ErrInvalidRange
	}
	return v, nil
}
