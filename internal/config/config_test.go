package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "DATA_SOURCE", "DATA_FILE", "CACHE_TTL", "RATE_LIMIT_MAX", "OIDC_ISSUER", "SOURCE_CHECK_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerAddr != ":8051" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, ":8051")
	}
	if cfg.DataSource != SourceCSV {
		t.Errorf("DataSource = %q, want %q", cfg.DataSource, SourceCSV)
	}
	if cfg.DataFile != "spacex_launch_dash.csv" {
		t.Errorf("DataFile = %q, want %q", cfg.DataFile, "spacex_launch_dash.csv")
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("CacheTTL = %v, want %v", cfg.CacheTTL, time.Minute)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want 100", cfg.RateLimitMax)
	}
	if cfg.SourceCheckInterval != 15*time.Second {
		t.Errorf("SourceCheckInterval = %v, want 15s", cfg.SourceCheckInterval)
	}
	if !cfg.IsDev() {
		t.Error("IsDev() should be true by default")
	}
	if cfg.IsAuthEnabled() {
		t.Error("IsAuthEnabled() should be false without OIDC_ISSUER")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("DATA_SOURCE", "postgres")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_MAX", "25")
	t.Setenv("OIDC_ISSUER", "https://id.example.com")

	cfg := Load()

	if cfg.IsDev() {
		t.Error("IsDev() should be false in production")
	}
	if !cfg.UsesPostgres() {
		t.Error("UsesPostgres() should be true")
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want 30s", cfg.CacheTTL)
	}
	if cfg.RateLimitMax != 25 {
		t.Errorf("RateLimitMax = %d, want 25", cfg.RateLimitMax)
	}
	if !cfg.IsAuthEnabled() {
		t.Error("IsAuthEnabled() should be true with OIDC_ISSUER")
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("RATE_LIMIT_MAX", "-3")

	cfg := Load()

	if cfg.CacheTTL != time.Minute {
		t.Errorf("CacheTTL = %v, want fallback %v", cfg.CacheTTL, time.Minute)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want fallback 100", cfg.RateLimitMax)
	}
}

func TestIsMTLSEnabled(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected bool
	}{
		{"tls disabled", Config{}, false},
		{"tls without ca", Config{TLSEnabled: true}, false},
		{"tls with ca", Config{TLSEnabled: true, TLSCAFile: "ca.pem"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.IsMTLSEnabled(); got != tt.expected {
				t.Errorf("IsMTLSEnabled() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLoadDashboardConfigFile_Missing(t *testing.T) {
	cfg, err := LoadDashboardConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadDashboardConfigFile() error = %v", err)
	}
	if diff := cmp.Diff(DefaultDashboardConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDashboardConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	content := `
slider:
  min: 0
  max: 16000
  step: 500
  marks:
    0: "0"
    8000: "8k"
    16000: "16k"
site_labels:
  CCAFS LC-40: Cape Canaveral LC-40
palette: ["#111111", "#222222"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDashboardConfigFile(path)
	if err != nil {
		t.Fatalf("LoadDashboardConfigFile() error = %v", err)
	}

	if cfg.Slider.Max != 16000 || cfg.Slider.Step != 500 {
		t.Errorf("Slider = %+v, want max 16000 step 500", cfg.Slider)
	}
	wantMarks := []Mark{{0, "0"}, {8000, "8k"}, {16000, "16k"}}
	if diff := cmp.Diff(wantMarks, cfg.Slider.SortedMarks()); diff != "" {
		t.Errorf("SortedMarks() mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.SiteLabel("CCAFS LC-40"); got != "Cape Canaveral LC-40" {
		t.Errorf("SiteLabel() = %q, want %q", got, "Cape Canaveral LC-40")
	}
	if got := cfg.SiteLabel("KSC LC-39A"); got != "KSC LC-39A" {
		t.Errorf("SiteLabel() = %q, want site name", got)
	}
	if len(cfg.Palette) != 2 {
		t.Errorf("Palette length = %d, want 2", len(cfg.Palette))
	}
}

func TestLoadDashboardConfigFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "slider: [1, 2"},
		{"max below min", "slider:\n  min: 5000\n  max: 100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dashboard.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadDashboardConfigFile(path); err == nil {
				t.Error("LoadDashboardConfigFile() expected error, got nil")
			}
		})
	}
}
