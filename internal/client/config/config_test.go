package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.BaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "fdatrack.db", c.DatabaseDSN)
	assert.Equal(t, 10*time.Second, c.ChallengeTimeout)
	assert.Equal(t, "us-east-1", c.S3Region)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_OverlaysValues(t *testing.T) {
	t.Setenv("FDATRACK_BASE_URL", "https://api.fdatrack.example")
	t.Setenv("FDATRACK_REQUEST_TIMEOUT", "5s")
	t.Setenv("FDATRACK_CAPTCHA_SECRET", "bypass")
	t.Setenv("FDATRACK_S3_BUCKET", "fdatrack-docs")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://api.fdatrack.example", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "bypass", cfg.CaptchaSecret)
	assert.Equal(t, "fdatrack-docs", cfg.S3Bucket)
	// untouched fields keep their defaults
	assert.Equal(t, "fdatrack.db", cfg.DatabaseDSN)
}

func TestParseEnv_BadDurationKeepsDefault(t *testing.T) {
	t.Setenv("FDATRACK_REQUEST_TIMEOUT", "soon")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseJson_OverlaysOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_url": "https://api.fdatrack.example",
		"request_timeout": "15s",
		"s3_endpoint": "http://127.0.0.1:9000"
	}`), 0o600))

	origArgs := os.Args
	os.Args = []string{"fdatrack", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "https://api.fdatrack.example", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.S3Endpoint)
	assert.Equal(t, "fdatrack.db", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Second, cfg.ChallengeTimeout)
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"fdatrack", "-a", "https://flags.example", "-t", "7"}
	t.Cleanup(func() { os.Args = origArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "https://flags.example", cfg.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "fdatrack.db", cfg.DatabaseDSN)
}
