package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with FDATRACK_* environment variables. A .env file
// in the working directory is loaded first, without overriding variables
// already set in the process environment.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("FDATRACK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FDATRACK_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("FDATRACK_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("FDATRACK_CAPTCHA_SECRET"); v != "" {
		cfg.CaptchaSecret = v
	}
	if v := os.Getenv("FDATRACK_CHALLENGE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ChallengeTimeout = d
		}
	}
	if v := os.Getenv("FDATRACK_S3_BUCKET"); v != "" {
		cfg.S3Bucket = v
	}
	if v := os.Getenv("FDATRACK_S3_REGION"); v != "" {
		cfg.S3Region = v
	}
	if v := os.Getenv("FDATRACK_S3_ENDPOINT"); v != "" {
		cfg.S3Endpoint = v
	}
	if v := os.Getenv("FDATRACK_S3_ACCESS_KEY"); v != "" {
		cfg.S3AccessKey = v
	}
	if v := os.Getenv("FDATRACK_S3_SECRET_KEY"); v != "" {
		cfg.S3SecretKey = v
	}
}
