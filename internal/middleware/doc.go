// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware shared by the API and the page.

Every middleware has the http.HandlerFunc-in, http.HandlerFunc-out shape and
is adapted to chi in the router:

  - RequestID: accepts a sane upstream X-Request-ID or assigns a UUID, and
    seeds the logging context with request and correlation IDs
  - PrometheusMetrics: request count, duration and in-flight gauge, labelled
    by chi route pattern
  - Compression: pooled gzip writers for clients sending Accept-Encoding: gzip

Ordering used by the router:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

RequestID runs first so metrics and handlers log with the same ID.
*/
package middleware
