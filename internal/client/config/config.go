// Package config assembles runtime settings for the fdatrack CLI from
// layered sources: built-in defaults, an optional JSON file, environment
// variables (with .env support), and command-line flags. Later sources
// take precedence.
package config

import "time"

// Config holds runtime settings for the fdatrack CLI.
type Config struct {
	// BaseURL is the backend root, e.g. https://api.fdatrack.example.
	BaseURL        string
	RequestTimeout time.Duration

	// DatabaseDSN is the path of the local sqlite file holding the
	// session and watchlist.
	DatabaseDSN string

	// CaptchaSecret, when set, is a pre-issued anti-automation bypass
	// token. When empty the CLI prompts for a challenge proof instead.
	CaptchaSecret    string
	ChallengeTimeout time.Duration

	// Archive bucket coordinates. Endpoint overrides the AWS endpoint
	// for MinIO-style deployments.
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 30 * time.Second
	c.DatabaseDSN = "fdatrack.db"
	c.ChallengeTimeout = 10 * time.Second
	c.S3Region = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
