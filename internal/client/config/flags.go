package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/olilab/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters os.Args to the flags it knows about, using
// flagx.FilterArgs, so -c/-config handled by parseJson does not trip it.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-i", "-d", "-r", "-s", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the OliLab API")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	refreshInterval := fs.Int("i", int(cfg.RefreshInterval.Seconds()), "inventory refresh interval (in seconds)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite database file")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "Redis URL for the session store")
	fs.StringVar(&cfg.SessionID, "s", cfg.SessionID, "session id")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RefreshInterval = time.Duration(*refreshInterval) * time.Second
}
