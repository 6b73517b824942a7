package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"appliance-site/config"
	"appliance-site/internal/app"
	"appliance-site/internal/platform/logging"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadEnv()

	logger, err := logging.New(cfg.LOG_LEVEL, cfg.GIN_MODE == "debug")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	site, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to start site", zap.Error(err))
	}
	defer func() { _ = site.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := site.Serve(ctx); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
