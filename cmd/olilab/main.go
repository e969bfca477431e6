package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/olilab/internal/buildinfo"
	"github.com/dmitrijs2005/olilab/internal/client/bootstrap"
	"github.com/dmitrijs2005/olilab/internal/client/cli"
	"github.com/dmitrijs2005/olilab/internal/client/config"
	"github.com/dmitrijs2005/olilab/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	rt, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := rt.Close(); err != nil {
			logger.Error(context.Background(), "shutdown failed", "error", err)
		}
	}()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := bootstrap.ServeMetrics(ctx, cfg.MetricsAddr, logger); err != nil {
				logger.Error(ctx, "metrics endpoint failed", "error", err)
			}
		}()
	}

	app := cli.NewApp(rt.Scope.Session(), rt.Scope.Settings(), rt.Inventory, cfg.RefreshInterval, logger)
	app.Run(ctx)

}
