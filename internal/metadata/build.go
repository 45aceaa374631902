// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// CacheConfig configures the CachingEnricher decorator.
type CacheConfig struct {
	Enabled  bool
	TTL      time.Duration
	Capacity int

	// PersistPath enables the BadgerDB tier when non-empty.
	PersistPath string
}

// Config selects and configures the enricher chain.
type Config struct {
	// Enabled=false yields a StaticEnricher.
	Enabled bool

	// TMDB is used only when its APIKey is set.
	TMDB             ClientConfig
	TMDBImageBaseURL string

	// OMDb is used only when its APIKey is set.
	OMDb ClientConfig

	Placeholder string
	Cache       CacheConfig
}

// Build assembles the enricher described by cfg. The returned close function
// releases the persistent store, if any, and is never nil.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Build(cfg Config, logger zerolog.Logger) (Enricher, func() error, error) {
	noop := func() error { return nil }

	if !cfg.Enabled {
		logger.Info().Msg("Metadata enrichment disabled, serving placeholders")
		return StaticEnricher{Placeholder: cfg.Placeholder}, noop, nil
	}

	var byID PosterSource
	if cfg.TMDB.APIKey != "" {
		byID = NewTMDBClient(cfg.TMDB, cfg.TMDBImageBaseURL, logger)
	}
	var byTitle TitleSource
	if cfg.OMDb.APIKey != "" {
		byTitle = NewOMDbClient(cfg.OMDb, logger)
	}
	if byID == nil && byTitle == nil {
		logger.Warn().Msg("No metadata provider API keys configured, serving placeholders")
		return StaticEnricher{Placeholder: cfg.Placeholder}, noop, nil
	}

	var enricher Enricher = NewProviderEnricher(byID, byTitle, cfg.Placeholder, logger)
	if !cfg.Cache.Enabled {
		return enricher, noop, nil
	}

	var store Store
	closeFn := noop
	if cfg.Cache.PersistPath != "" {
		bs, err := OpenBadgerStore(cfg.Cache.PersistPath, cfg.Cache.TTL)
		if err != nil {
			return nil, noop, fmt.Errorf("metadata cache: %w", err)
		}
		store = bs
		closeFn = bs.Close
	}

	enricher = NewCachingEnricher(enricher, cfg.Cache.Capacity, cfg.Cache.TTL, store, cfg.Placeholder, logger)
	logger.Info().
		Bool("tmdb", byID != nil).
		Bool("omdb", byTitle != nil).
		Bool("persistent_cache", store != nil).
		Msg("Metadata enrichment configured")
	return enricher, closeFn, nil
}
