package config

import (
	"encoding/json"
	"os"

	"github.com/yuyuwang/yuyu-cli/internal/flagx"
	"github.com/yuyuwang/yuyu-cli/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds. After parsing, non-zero values are copied into
// the runtime Config.
type JSONConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	UploadTimeout  timex.Duration `json:"upload_timeout"`
	PollInterval   timex.Duration `json:"poll_interval"`
	CredentialsDB  string         `json:"credentials_db"`
}

// parseJSON overlays Config with values loaded from a JSON file named via
// the -c or -config flags. With neither flag present it is a no-op. Read or
// unmarshal errors panic; the caller may recover if desired. Zero-valued
// JSON fields leave the corresponding Config field untouched, so a partial
// file overrides only what it names.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.UploadTimeout.Duration != 0 {
		cfg.UploadTimeout = jc.UploadTimeout.Duration
	}
	if jc.PollInterval.Duration != 0 {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.CredentialsDB != "" {
		cfg.CredentialsDB = jc.CredentialsDB
	}
}
