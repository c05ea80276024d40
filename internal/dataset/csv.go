package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"launchdash/internal/models"
)

// CSV column headers.
const (
	ColumnFlightNumber    = "Flight Number"
	ColumnLaunchSite      = "Launch Site"
	ColumnClass           = "class"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnBoosterVersion  = "Booster Version"
	ColumnBoosterCategory = "Booster Version Category"
)

var requiredColumns = []string{ColumnLaunchSite, ColumnClass, ColumnPayloadMass, ColumnBoosterCategory}

// Load reads the launch table from a CSV file.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return ds, nil
}

// Parse reads a CSV with a header row into a Dataset.
// Unknown columns, such as an unnamed index column, are ignored.
func Parse(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRecords
		}
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	var records []models.LaunchRecord
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", line, ErrMalformedRow, err)
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return New(records)
}

func parseRow(row []string, cols map[string]int) (models.LaunchRecord, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rec models.LaunchRecord
	rec.Site = field(ColumnLaunchSite)
	rec.BoosterVersion = field(ColumnBoosterVersion)
	rec.BoosterVersionCategory = field(ColumnBoosterCategory)

	outcome, err := strconv.ParseFloat(field(ColumnClass), 64)
	if err != nil || (outcome != 0 && outcome != 1) {
		return rec, fmt.Errorf("%w: %q", ErrInvalidOutcome, field(ColumnClass))
	}
	rec.Outcome = int(outcome)

	payload, err := strconv.ParseFloat(field(ColumnPayloadMass), 64)
	if err != nil {
		return rec, fmt.Errorf("%w: %q", ErrInvalidPayload, field(ColumnPayloadMass))
	}
	rec.PayloadMassKg = payload

	if raw := field(ColumnFlightNumber); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return rec, fmt.Errorf("%w: flight number %q", ErrMalformedRow, raw)
		}
		rec.FlightNumber = n
	}

	if rec.Site == "" {
		return rec, fmt.Errorf("%w: empty launch site", ErrMalformedRow)
	}

	return rec, nil
}
