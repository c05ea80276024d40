package models

import (
	"errors"
	"math"
	"testing"
)

func TestNewPayloadRange(t *testing.T) {
	tests := []struct {
		name    string
		low     float64
		high    float64
		wantErr bool
	}{
		{"valid range", 0, 10000, false},
		{"single point", 2500, 2500, false},
		{"inverted", 5000, 1000, true},
		{"negative low", -1, 1000, true},
		{"negative high", 0, -5, true},
		{"nan", math.NaN(), 1000, true},
		{"infinite", 0, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewPayloadRange(tt.low, tt.high)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRange) {
					t.Errorf("NewPayloadRange() error = %v, want ErrInvalidRange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPayloadRange() unexpected error: %v", err)
			}
			if r.Low != tt.low || r.High != tt.high {
				t.Errorf("NewPayloadRange() = %+v, want {%v %v}", r, tt.low, tt.high)
			}
		})
	}
}

func TestPayloadRange_Contains(t *testing.T) {
	r := PayloadRange{Low: 1000, High: 5000}

	tests := []struct {
		mass     float64
		expected bool
	}{
		{999.9, false},
		{1000, true},
		{3000, true},
		{5000, true},
		{5000.1, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.mass); got != tt.expected {
			t.Errorf("Contains(%v) = %v, want %v", tt.mass, got, tt.expected)
		}
	}
}

func TestOutcomeLabel(t *testing.T) {
	if got := OutcomeLabel(OutcomeSuccess); got != LabelSuccess {
		t.Errorf("OutcomeLabel(1) = %q, want %q", got, LabelSuccess)
	}
	if got := OutcomeLabel(OutcomeFailure); got != LabelFailure {
		t.Errorf("OutcomeLabel(0) = %q, want %q", got, LabelFailure)
	}
}

func TestScatterChart_Categories(t *testing.T) {
	chart := ScatterChart{Points: []ScatterPoint{
		{BoosterVersionCategory: "v1.1"},
		{BoosterVersionCategory: "FT"},
		{BoosterVersionCategory: "v1.1"},
		{BoosterVersionCategory: "B4"},
	}}

	got := chart.Categories()
	want := []string{"v1.1", "FT", "B4"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPieChart_Total(t *testing.T) {
	chart := PieChart{Slices: []PieSlice{{Label: LabelSuccess, Value: 7}, {Label: LabelFailure, Value: 3}}}
	if got := chart.Total(); got != 10 {
		t.Errorf("Total() = %d, want 10", got)
	}
}

func TestLaunchRecord_IsSuccess(t *testing.T) {
	tests := []struct {
		outcome  int
		expected bool
	}{
		{OutcomeSuccess, true},
		{OutcomeFailure, false},
	}

	for _, tt := range tests {
		if got := (LaunchRecord{Outcome: tt.outcome}).IsSuccess(); got != tt.expected {
			t.Errorf("IsSuccess() with outcome %d = %v, want %v", tt.outcome, got, tt.expected)
		}
	}
}
