// Package main is the entry point for the greeting service HTTP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/sebasr/cloud-compute-demo/internal/config"
	"github.com/sebasr/cloud-compute-demo/internal/logging"
	"github.com/sebasr/cloud-compute-demo/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create logger")
	}
	logger = logging.Component(logger, "greeting_service")

	if cfg.Auth.AuthEnabled() {
		logger.Info().Msg("service token authentication enabled for /api/hello")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := server.New(&server.Dependencies{
		Config: cfg,
		Logger: logger,
	})

	if err := server.Run(ctx, cfg.Server.Addr(), cfg.Server.ShutdownTimeout, router, logger); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}
