// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// DatasetLoader produces a validated dataset. Satisfied by a closure over
// artifact.Fetcher.Load.
type DatasetLoader interface {
	Load(ctx context.Context) (*catalog.Dataset, error)
}

// LoaderFunc adapts a function to DatasetLoader.
type LoaderFunc func(ctx context.Context) (*catalog.Dataset, error)

// Load calls f(ctx).
func (f LoaderFunc) Load(ctx context.Context) (*catalog.Dataset, error) {
	return f(ctx)
}

// DatasetInstaller receives the loaded dataset or the load failure.
// Satisfied by *recommend.Service.
type DatasetInstaller interface {
	Install(ds *catalog.Dataset) error
	RecordLoadFailure(err error)
}

// DatasetServiceConfig holds configuration for the dataset service.
type DatasetServiceConfig struct {
	// RetryInterval is the wait between failed load attempts.
	// Zero disables retries: one failure leaves the service degraded.
	RetryInterval time.Duration

	// LoadTimeout bounds one load attempt including downloads.
	// Default: 5m
	LoadTimeout time.Duration
}

// DatasetService loads the dataset once under supervision.
//
// It never returns an error for a failed load, so suture does not count it
// against the failure threshold; failures go to the installer instead. Once
// a dataset is installed, or retries are disabled, it returns
// suture.ErrDoNotRestart and leaves the tree.
type DatasetService struct {
	loader    DatasetLoader
	installer DatasetInstaller
	config    DatasetServiceConfig
	logger    zerolog.Logger
	name      string
}

// NewDatasetService creates a new dataset service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewDatasetService(loader DatasetLoader, installer DatasetInstaller, cfg DatasetServiceConfig, logger zerolog.Logger) *DatasetService {
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 5 * time.Minute
	}
	return &DatasetService{
		loader:    loader,
		installer: installer,
		config:    cfg,
		logger:    logger.With().Str("service", "dataset").Logger(),
		name:      "dataset-service",
	}
}

// Serve implements the suture.Service interface.
func (s *DatasetService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("retry_interval", s.config.RetryInterval).
		Msg("dataset service starting")

	for attempt := 1; ; attempt++ {
		err := s.loadOnce(ctx)
		switch {
		case err == nil:
			return suture.ErrDoNotRestart
		case errors.Is(err, recommend.ErrAlreadyLoaded):
			s.logger.Debug().Msg("dataset already installed")
			return suture.ErrDoNotRestart
		case ctx.Err() != nil:
			return ctx.Err()
		}

		s.installer.RecordLoadFailure(err)

		if s.config.RetryInterval <= 0 {
			s.logger.Warn().Msg("dataset retries disabled, staying degraded")
			return suture.ErrDoNotRestart
		}

		s.logger.Info().
			Int("attempt", attempt).
			Dur("retry_in", s.config.RetryInterval).
			Msg("dataset load will be retried")

		timer := time.NewTimer(s.config.RetryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info().Msg("dataset service shutting down")
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (s *DatasetService) loadOnce(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
	defer cancel()

	start := time.Now()
	ds, err := s.loader.Load(loadCtx)
	if err != nil {
		return err
	}
	if err := s.installer.Install(ds); err != nil {
		return err
	}

	s.logger.Info().
		Int("entries", ds.Size()).
		Dur("duration", time.Since(start)).
		Msg("dataset installed")
	return nil
}

// String returns the service name for logging.
func (s *DatasetService) String() string {
	return s.name
}
