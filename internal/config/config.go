package config

import (
	"fmt"
	"os"
)

const (
	defaultBaseURL      = "https://api.hubapi.com"
	defaultDatabasePath = "./property-sync.db"
	defaultLogLevel     = "info"
)

// Config carries everything the process needs, resolved once at startup and
// passed explicitly into constructors. There is no ambient global state.
type Config struct {
	// AccessToken is the HubSpot private-app bearer token. Required by every
	// command that talks to the API.
	AccessToken string

	// BaseURL is the API root. Overridable for testing against a local stub.
	BaseURL string

	// DatabasePath is where the local run-history database lives.
	DatabasePath string

	LogLevel string
}

// Load resolves configuration from the environment, falling back to
// defaults. Command-line flag overrides are applied by the cmd layer after
// this returns.
func Load() *Config {
	cfg := &Config{
		AccessToken:  os.Getenv("HUBSPOT_ACCESS_TOKEN"),
		BaseURL:      defaultBaseURL,
		DatabasePath: defaultDatabasePath,
		LogLevel:     defaultLogLevel,
	}

	if v := os.Getenv("HUBSPOT_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("HSPROPS_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("HSPROPS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}

// RequireCredentials returns the fatal configuration error for a missing
// bearer token. Commands that never touch the API do not call this.
func (c *Config) RequireCredentials() error {
	if c.AccessToken == "" {
		return fmt.Errorf("HUBSPOT_ACCESS_TOKEN is not set (a HubSpot private app token is required)")
	}
	return nil
}
