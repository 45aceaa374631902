// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package cache provides a thread-safe, generic LRU cache with per-entry TTL.

The metadata package uses it as the in-memory tier in front of the TMDB and
OMDb clients, so repeated lookups for the same movie within the TTL never
leave the process.

# Usage

	c := cache.NewLRU[metadata.Metadata](10000, 24*time.Hour)
	c.Add("movie:19995", md)
	if v, ok := c.Get("movie:19995"); ok {
		// use v
	}

Expired entries are dropped lazily on Get and in bulk by CleanupExpired.
Stats reports hits, misses and evictions for logging.

# Thread Safety

All methods are safe for concurrent use. Get takes the write lock because
it reorders the recency list.
*/
package cache
