package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// EnvConfig mirrors Config for the environment overlay. Unset variables leave
// the zero value, which is not copied.
type EnvConfig struct {
	APIBaseURL      string        `env:"OLILAB_API_BASE_URL"`
	RequestTimeout  time.Duration `env:"OLILAB_REQUEST_TIMEOUT"`
	RefreshInterval time.Duration `env:"OLILAB_REFRESH_INTERVAL"`
	DatabaseDSN     string        `env:"OLILAB_DATABASE_DSN"`
	RedisURL        string        `env:"OLILAB_REDIS_URL"`
	SessionID       string        `env:"OLILAB_SESSION_ID"`
	SessionMaxAge   time.Duration `env:"OLILAB_SESSION_MAX_AGE"`
	S3Bucket        string        `env:"OLILAB_S3_BUCKET"`
	S3Prefix        string        `env:"OLILAB_S3_PREFIX"`
	S3Region        string        `env:"OLILAB_S3_REGION"`
	S3Endpoint      string        `env:"OLILAB_S3_ENDPOINT"`
	S3AccessKey     string        `env:"OLILAB_S3_ACCESS_KEY"`
	S3SecretKey     string        `env:"OLILAB_S3_SECRET_KEY"`
	LogLevel        string        `env:"OLILAB_LOG_LEVEL"`
	LogFormat       string        `env:"OLILAB_LOG_FORMAT"`
	MetricsAddr     string        `env:"OLILAB_METRICS_ADDR"`
}

// envSource is swapped in tests.
var envSource env.Source = env.OS

// dotenvFile is loaded into the process environment when it exists.
var dotenvFile = ".env"

// parseEnv overlays Config with OLILAB_* variables. Malformed values panic,
// like the other stages.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	var ec EnvConfig
	if err := env.Load(&ec, &env.Options{Source: envSource}); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, ec.APIBaseURL)
	setDuration(&cfg.RequestTimeout, ec.RequestTimeout)
	setDuration(&cfg.RefreshInterval, ec.RefreshInterval)
	setString(&cfg.DatabaseDSN, ec.DatabaseDSN)
	setString(&cfg.RedisURL, ec.RedisURL)
	setString(&cfg.SessionID, ec.SessionID)
	setDuration(&cfg.SessionMaxAge, ec.SessionMaxAge)
	setString(&cfg.S3Bucket, ec.S3Bucket)
	setString(&cfg.S3Prefix, ec.S3Prefix)
	setString(&cfg.S3Region, ec.S3Region)
	setString(&cfg.S3Endpoint, ec.S3Endpoint)
	setString(&cfg.S3AccessKey, ec.S3AccessKey)
	setString(&cfg.S3SecretKey, ec.S3SecretKey)
	setString(&cfg.LogLevel, ec.LogLevel)
	setString(&cfg.LogFormat, ec.LogFormat)
	setString(&cfg.MetricsAddr, ec.MetricsAddr)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
