package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseJSON_OverlaysNamedFields(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"api_base_url": "https://yuyu.example/api",
		"poll_interval": "45s"
	}`), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"yuyu", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	require.Equal(t, "https://yuyu.example/api", cfg.APIBaseURL)
	require.Equal(t, 45*time.Second, cfg.PollInterval)
	// fields absent from the file keep their defaults
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, "yuyu.db", cfg.CredentialsDB)
}

func TestParseJSON_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"yuyu"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	require.Equal(t, "http://127.0.0.1:8080/api", cfg.APIBaseURL)
}
