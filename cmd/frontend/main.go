// Package main is the entry point for the greeting web frontend.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/sebasr/cloud-compute-demo/internal/auth"
	"github.com/sebasr/cloud-compute-demo/internal/client"
	"github.com/sebasr/cloud-compute-demo/internal/config"
	"github.com/sebasr/cloud-compute-demo/internal/frontend"
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
	logger = logging.Component(logger, "greeting_frontend")

	var clientOpts []client.Option
	if cfg.Auth.AuthEnabled() {
		tokens := auth.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
		clientOpts = append(clientOpts, client.WithServiceToken(tokens, "greeting-frontend"))
	}
	greeter := client.WithLoggingClient(logger, client.NewHTTPClient(cfg.Client, clientOpts...))

	logger.Info().Str("backend_url", cfg.Client.BackendURL).Msg("using greeting service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := frontend.New(greeter, logger)
	if err := server.Run(ctx, cfg.Frontend.Addr(), cfg.Server.ShutdownTimeout, router, logger); err != nil {
		logger.Error().Err(err).Msg("frontend stopped with error")
		stop()
		os.Exit(1)
	}
	logger.Info().Msg("frontend stopped")
}
