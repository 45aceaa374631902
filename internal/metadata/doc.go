// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metadata enriches recommendations with a poster, rating and genre.

Enrichment is best effort. The Enricher interface has no error return: every
network, status or decode failure degrades the affected field to its
default (placeholder poster, "N/A", "Unknown") and is logged at debug level.

# Providers

  - TMDB, keyed by movie id: GET {base}/movie/{id}?api_key=..&language=en-US
    returns poster_path, composed as {image_base}/w500{poster_path}.
  - OMDb, keyed by title: GET {base}/?t={title}&apikey=.. returns Poster,
    imdbRating and Genre. The literal "N/A" means absent.

When both answer, the OMDb poster replaces the TMDB one.

Each provider client carries its own per-call timeout (10s default), an
outbound token bucket (golang.org/x/time/rate) and a gobreaker circuit
breaker. An open circuit fails fast and therefore degrades to defaults
immediately instead of stalling a page on a dead provider. A "no such movie"
answer counts as a successful call for the breaker.

# Caching

CachingEnricher keeps recent results in an in-memory TTL LRU and, when a
persist path is configured, in BadgerDB so restarts do not re-query every
poster. Only non-default results are cached.

# Concurrency

EnrichAll fans out one goroutine per item and returns results in input
order once all have finished.
*/
package metadata
