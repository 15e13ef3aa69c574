// Package config holds runtime settings for the pulse CLI.
package config

// Config holds runtime settings for the pulse CLI.
//
// Fields:
//   - BaseURL: origin and prefix of the Pulse API (e.g. "http://localhost:8000/api").
//   - CredentialDB: path of the SQLite file the bearer credential lives in.
//   - Verbose: emit per-request telemetry to stderr.
type Config struct {
	BaseURL      string
	CredentialDB string
	Verbose      bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api"
	c.CredentialDB = "pulse.db"
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a JSON file (if one is named with -c) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
