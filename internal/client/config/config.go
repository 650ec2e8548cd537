package config

import "time"

// Config holds runtime settings for the Yuyu terminal client.
//
// Fields:
//   - APIBaseURL: root of the platform HTTP API, including the /api prefix.
//   - RequestTimeout: timeout for ordinary API calls.
//   - UploadTimeout: extended timeout for the video upload call.
//   - PollInterval: cadence of the notification poll loop.
//   - CredentialsDB: path of the local sqlite file holding the session token.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
	PollInterval   time.Duration
	CredentialsDB  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 5 * time.Second
	c.UploadTimeout = 5 * time.Minute
	c.PollInterval = 30 * time.Second
	c.CredentialsDB = "yuyu.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
