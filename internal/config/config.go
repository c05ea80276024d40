package config

import (
	"os"
	"strconv"
	"time"
)

// Data source identifiers for DATA_SOURCE.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Dataset
	DataSource  string // "csv" or "postgres"
	DataFile    string // CSV path when DataSource is "csv"
	DatabaseURL string // Postgres URL when DataSource is "postgres"

	// Background jobs
	SourceCheckInterval time.Duration // How often the database is pinged for readiness

	// Caching and rate limiting
	RedisURL     string        // Shared storage for the response cache and limiter; in-memory when empty
	CacheTTL     time.Duration // How long chart responses are cached
	RateLimitMax int           // Requests per minute per IP

	// Logging
	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "text" or "json"

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// OIDC, optional. When OIDCIssuer is empty the dashboard is public.
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle  string // env: SITE_TITLE, default: "SpaceX Launch Records Dashboard"
	SiteFooter string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                 getEnv("ENV", "development"),
		ServerAddr:          getEnv("SERVER_ADDR", ":8051"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:8051"),
		DataSource:          getEnv("DATA_SOURCE", SourceCSV),
		DataFile:            getEnv("DATA_FILE", "spacex_launch_dash.csv"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		SourceCheckInterval: getEnvDuration("SOURCE_CHECK_INTERVAL", 15*time.Second),
		RedisURL:            getEnv("REDIS_URL", ""),
		CacheTTL:            getEnvDuration("CACHE_TTL", time.Minute),
		RateLimitMax:        getEnvInt("RATE_LIMIT_MAX", 100),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		TLSEnabled:          getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:         getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:          getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:           getEnv("TLS_CA_FILE", ""),
		OIDCIssuer:          getEnv("OIDC_ISSUER", ""),
		OIDCClientID:        getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret:    getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:     getEnv("OIDC_REDIRECT_URL", "http://localhost:8051/auth/callback"),
		SessionSecret:       getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:         getEnv("CORS_ORIGINS", ""),

		SiteTitle:  getEnv("SITE_TITLE", "SpaceX Launch Records Dashboard"),
		SiteFooter: getEnv("SITE_FOOTER", "Launch records dashboard"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// IsAuthEnabled returns true if viewers must sign in through OIDC.
func (c *Config) IsAuthEnabled() bool {
	return c.OIDCIssuer != ""
}

// UsesPostgres returns true if the dataset is read from Postgres instead of a CSV file.
func (c *Config) UsesPostgres() bool {
	return c.DataSource == SourcePostgres
}
