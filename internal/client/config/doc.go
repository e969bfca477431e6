// Package config loads runtime configuration for the OliLab client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with OLILAB_ (see parseEnv). A .env file
//     in the working directory is loaded first when present.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     base URL of the OliLab API
//	-t duration   per-request timeout
//	-i int        inventory refresh interval (seconds)
//	-d string     SQLite database file
//	-r string     Redis URL for the session store
//	-s string     session id (Redis key namespace)
//	-l string     log level (debug, info, warn, error)
//	-m string     listen address of the /metrics endpoint
//
// # JSON schema
//
// Durations accept strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:3000",
//	  "request_timeout": "10s",
//	  "refresh_interval": "30s",
//	  "database_dsn": "olilab.db",
//	  "redis_url": "redis://localhost:6379/0",
//	  "session_max_age": "8h",
//	  "s3_bucket": "lab-settings",
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "metrics_addr": ":9100"
//	}
package config
