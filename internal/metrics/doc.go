// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are exposed by the API router at /metrics:

	curl http://localhost:8501/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Recommendation Metrics:
  - recommendations_total: Lookups by outcome (counter)
    Labels: outcome (ok, not_found, unavailable, error)
  - recommendation_duration_seconds: Row ranking time (histogram)

Dataset Metrics:
  - dataset_loaded: 1 when serving, 0 in degraded mode (gauge)
  - dataset_catalog_entries: Loaded catalog size (gauge)
  - artifact_downloads_total: Fetch attempts (counter)
    Labels: artifact, result (downloaded, skipped, failed)
  - artifact_load_failures_total: Failed dataset loads (counter)

Enrichment Metrics:
  - enrichment_provider_requests_total: Provider calls (counter)
    Labels: provider (tmdb, omdb), result
  - enrichment_provider_duration_seconds: Provider latency (histogram)
  - enrichment_cache_hits_total: Cache hits (counter)
    Labels: tier (memory, disk)
  - enrichment_cache_misses_total: Cache misses (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Calls by result (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: Transitions (counter)
    Labels: name, from_state, to_state

# Thread Safety

All functions are safe for concurrent use.
*/
package metrics
