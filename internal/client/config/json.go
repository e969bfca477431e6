package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/olilab/internal/flagx"
	"github.com/dmitrijs2005/olilab/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only the
// fields present in the file are copied into Config.
type JsonConfig struct {
	APIBaseURL      string         `json:"api_base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	RefreshInterval timex.Duration `json:"refresh_interval"`
	DatabaseDSN     string         `json:"database_dsn"`
	RedisURL        string         `json:"redis_url"`
	SessionID       string         `json:"session_id"`
	SessionMaxAge   timex.Duration `json:"session_max_age"`
	S3Bucket        string         `json:"s3_bucket"`
	S3Prefix        string         `json:"s3_prefix"`
	S3Region        string         `json:"s3_region"`
	S3Endpoint      string         `json:"s3_endpoint"`
	S3AccessKey     string         `json:"s3_access_key"`
	S3SecretKey     string         `json:"s3_secret_key"`
	LogLevel        string         `json:"log_level"`
	LogFormat       string         `json:"log_format"`
	MetricsAddr     string         `json:"metrics_addr"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
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

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setDuration(&cfg.RequestTimeout, jc.RequestTimeout.Duration)
	setDuration(&cfg.RefreshInterval, jc.RefreshInterval.Duration)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.RedisURL, jc.RedisURL)
	setString(&cfg.SessionID, jc.SessionID)
	setDuration(&cfg.SessionMaxAge, jc.SessionMaxAge.Duration)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Prefix, jc.S3Prefix)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.MetricsAddr, jc.MetricsAddr)
}
