// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// readHeaderTimeout bounds slow header delivery independently of ReadTimeout.
const readHeaderTimeout = 10 * time.Second

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("addr", cfg.Server.Addr()).
		Bool("metadata_provider", cfg.HasMetadataProvider()).
		Msg("Starting Reelmatch with supervisor tree")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("CORS allows any origin in production, set CORS_ORIGINS to restrict it")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting disabled (DISABLE_RATE_LIMIT=true)")
	}

	rec, err := initRecommend(cfg, logging.WithComponent("main"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation service")
	}
	defer func() {
		if err := rec.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing metadata cache")
		}
	}()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(rec.Loader)
	logging.Info().Msg("Dataset service added to supervisor tree")

	handler := api.NewHandler(rec.Service, logging.WithComponent("api"))
	requestTimeout := api.RequestTimeoutFor(cfg.Metadata.Timeout)
	handler.SetRequestTimeout(requestTimeout)
	if cfg.Server.WriteTimeout < requestTimeout {
		logging.Warn().
			Dur("write_timeout", cfg.Server.WriteTimeout).
			Dur("request_timeout", requestTimeout).
			Msg("HTTP write timeout is shorter than the enrichment budget, slow lookups may be cut off")
	}
	router := api.NewRouter(handler, api.NewChiMiddlewareFromSecurity(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree.AddAPIService(services.NewHTTPServerService(
		server,
		server.Addr,
		cfg.Server.ShutdownTimeout,
		logging.WithComponent("supervisor"),
	))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server added to supervisor tree")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor tree to stop...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
		cancel()
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree shutdown error")
		}
	}

	unstopped, reportErr := tree.UnstoppedServiceReport()
	if reportErr != nil {
		logging.Warn().Err(reportErr).Msg("Could not collect unstopped service report")
	} else if len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
		}
	}

	status := rec.Service.Status()
	logging.Info().
		Bool("dataset_ready", status.Ready).
		Int("entries", status.Entries).
		Msg("Application stopped gracefully")
}
