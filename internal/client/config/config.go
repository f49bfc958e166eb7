// Package config assembles runtime settings for the RELEVÉ terminal client.
// Sources are layered, later ones winning: defaults, then .env/environment
// variables, then a JSON file (-c/-config), then command-line flags.
package config

import "time"

// Config holds the client's runtime settings.
type Config struct {
	// BaseURL is the root of the remote API, e.g. "http://localhost:3000".
	BaseURL string
	// RequestTimeout bounds every remote call.
	RequestTimeout time.Duration
	// CredentialDB is the path of the local credential store database.
	CredentialDB string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.CredentialDB = "releve.db"
}

// LoadConfig builds a Config from all sources.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
