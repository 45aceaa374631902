// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/artifact"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metadata"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// RecommendComponents holds the recommendation service and the supervised
// service that fills it.
type RecommendComponents struct {
	Service *recommend.Service
	Loader  *services.DatasetService

	// closeMetadata releases the persistent metadata cache. Never nil.
	closeMetadata func() error
}

// Close releases resources held by the enrichment chain.
func (c *RecommendComponents) Close() error {
	return c.closeMetadata()
}

// initRecommend builds the enricher, the recommendation service and the
// dataset loader. The service starts empty; the loader installs the dataset
// once it runs under the supervisor tree.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*RecommendComponents, error) {
	enricher, closeMetadata, err := metadata.Build(buildMetadataConfig(cfg), logging.WithComponent("metadata"))
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}

	svc, err := recommend.NewService(&recommend.Config{TopK: cfg.Recommend.TopK}, enricher, logging.WithComponent("recommend"))
	if err != nil {
		_ = closeMetadata()
		return nil, fmt.Errorf("recommend: %w", err)
	}

	fetcher := artifact.NewFetcher(artifact.FetcherConfig{
		Timeout:   cfg.Artifacts.DownloadTimeout,
		UserAgent: cfg.Artifacts.UserAgent,
	}, logging.WithComponent("artifact"))

	sources := artifact.Sources{
		CatalogURL:  cfg.Artifacts.CatalogURL,
		CatalogPath: cfg.Artifacts.CatalogPath,
		MatrixURL:   cfg.Artifacts.MatrixURL,
		MatrixPath:  cfg.Artifacts.MatrixPath,
	}
	loader := services.LoaderFunc(func(ctx context.Context) (*catalog.Dataset, error) {
		return fetcher.Load(ctx, sources)
	})

	logger.Info().
		Str("catalog_path", sources.CatalogPath).
		Str("matrix_path", sources.MatrixPath).
		Bool("catalog_download", sources.CatalogURL != "").
		Bool("matrix_download", sources.MatrixURL != "").
		Dur("retry_interval", cfg.Artifacts.RetryInterval).
		Int("top_k", cfg.Recommend.TopK).
		Msg("Initializing recommendation service")

	return &RecommendComponents{
		Service: svc,
		Loader: services.NewDatasetService(loader, svc, services.DatasetServiceConfig{
			RetryInterval: cfg.Artifacts.RetryInterval,
		}, logging.WithComponent("supervisor")),
		closeMetadata: closeMetadata,
	}, nil
}

// buildMetadataConfig maps the flat provider settings onto per-client
// configurations. Both providers share timeout, rate limit and breaker tuning.
func buildMetadataConfig(cfg *config.Config) metadata.Config {
	m := cfg.Metadata
	breaker := metadata.BreakerSettings{
		MaxRequests:  m.Breaker.MaxRequests,
		Interval:     m.Breaker.Interval,
		Timeout:      m.Breaker.Timeout,
		MinRequests:  m.Breaker.MinRequests,
		FailureRatio: m.Breaker.FailureRatio,
	}
	return metadata.Config{
		Enabled: m.Enabled,
		TMDB: metadata.ClientConfig{
			BaseURL:   m.TMDB.BaseURL,
			APIKey:    m.TMDB.APIKey,
			Timeout:   m.Timeout,
			RateLimit: m.RateLimit,
			Breaker:   breaker,
		},
		TMDBImageBaseURL: m.TMDB.ImageBaseURL,
		OMDb: metadata.ClientConfig{
			BaseURL:   m.OMDb.BaseURL,
			APIKey:    m.OMDb.APIKey,
			Timeout:   m.Timeout,
			RateLimit: m.RateLimit,
			Breaker:   breaker,
		},
		Placeholder: m.PlaceholderPoster,
		Cache: metadata.CacheConfig{
			Enabled:     m.Cache.Enabled,
			TTL:         m.Cache.TTL,
			Capacity:    m.Cache.Capacity,
			PersistPath: m.Cache.PersistPath,
		},
	}
}
