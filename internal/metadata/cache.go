// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// CachingEnricher memoizes another Enricher in memory and, optionally, in a
// persistent Store. Only results known to be complete are cached, so a
// provider outage is not remembered past its end. A StatusEnricher reports
// completeness itself; for any other Enricher a result with a default field
// counts as incomplete.
type CachingEnricher struct {
	next     Enricher
	mem      *cache.LRU[Metadata]
	store    Store
	defaults Metadata
	logger   zerolog.Logger
}

// NewCachingEnricher wraps next. store may be nil.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCachingEnricher(next Enricher, capacity int, ttl time.Duration, store Store, placeholder string, logger zerolog.Logger) *CachingEnricher {
	return &CachingEnricher{
		next:     next,
		mem:      cache.NewLRU[Metadata](capacity, ttl),
		store:    store,
		defaults: Defaults(placeholder),
		logger:   logger.With().Str("component", "metadata_cache").Logger(),
	}
}

// Enrich implements Enricher.
func (c *CachingEnricher) Enrich(ctx context.Context, title string, id int) Metadata {
	key := cacheKey(title, id)

	if md, ok := c.mem.Get(key); ok {
		metrics.EnrichmentCacheHits.WithLabelValues("memory").Inc()
		return md
	}

	if c.store != nil {
		md, ok, err := c.store.Get(key)
		if err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("Persistent cache read failed")
		}
		if ok {
			metrics.EnrichmentCacheHits.WithLabelValues("disk").Inc()
			c.mem.Add(key, md)
			return md
		}
	}

	metrics.EnrichmentCacheMisses.Inc()
	md, complete := c.lookup(ctx, title, id)
	if !complete || md == c.defaults {
		return md
	}

	c.mem.Add(key, md)
	if c.store != nil {
		if err := c.store.Set(key, md); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("Persistent cache write failed")
		}
	}
	return md
}

func (c *CachingEnricher) lookup(ctx context.Context, title string, id int) (Metadata, bool) {
	if se, ok := c.next.(StatusEnricher); ok {
		return se.EnrichStatus(ctx, title, id)
	}
	md := c.next.Enrich(ctx, title, id)
	complete := md.Poster != c.defaults.Poster && md.Rating != c.defaults.Rating && md.Genre != c.defaults.Genre
	return md, complete
}

// Stats returns in-memory cache counters.
func (c *CachingEnricher) Stats() cache.Stats {
	return c.mem.Stats()
}

func cacheKey(title string, id int) string {
	return strconv.Itoa(id) + "|" + title
}
