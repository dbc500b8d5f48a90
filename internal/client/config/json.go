package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fdatrack/fdatrack/internal/flagx"
	"github.com/fdatrack/fdatrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// rely on timex.Duration so JSON can carry either strings like "30s" or
// integer nanoseconds.
type JsonConfig struct {
	BaseURL          string         `json:"base_url"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	DatabaseDSN      string         `json:"database_dsn"`
	CaptchaSecret    string         `json:"captcha_secret"`
	ChallengeTimeout timex.Duration `json:"challenge_timeout"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	S3Endpoint       string         `json:"s3_endpoint"`
	S3AccessKey      string         `json:"s3_access_key"`
	S3SecretKey      string         `json:"s3_secret_key"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. Absent file path means no JSON layer. Only fields the
// file actually sets are copied over.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.CaptchaSecret != "" {
		cfg.CaptchaSecret = jc.CaptchaSecret
	}
	if jc.ChallengeTimeout.Duration != 0 {
		cfg.ChallengeTimeout = time.Duration(jc.ChallengeTimeout.Duration)
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Endpoint != "" {
		cfg.S3Endpoint = jc.S3Endpoint
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
}
