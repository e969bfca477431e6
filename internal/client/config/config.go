package config

import "time"

// Config holds runtime settings for the OliLab client.
//
// Optional backends are enabled by their address: an empty RedisURL keeps
// the session store in memory, an empty S3Bucket keeps settings in SQLite,
// and an empty MetricsAddr disables the /metrics endpoint.
type Config struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration

	DatabaseDSN string

	RedisURL      string
	SessionID     string
	SessionMaxAge time.Duration

	S3Bucket    string
	S3Prefix    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	LogLevel    string
	LogFormat   string
	MetricsAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000"
	c.RequestTimeout = 10 * time.Second
	c.RefreshInterval = 30 * time.Second
	c.DatabaseDSN = "olilab.db"
	c.SessionMaxAge = 8 * time.Hour
	c.S3Prefix = "olilab/"
	c.S3Region = "us-east-1"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
