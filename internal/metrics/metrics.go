// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Engine Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation lookups",
		},
		[]string{"outcome"}, // "ok", "not_found", "unavailable", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent ranking one matrix row",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// Dataset / Artifact Metrics
	DatasetLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_loaded",
			Help: "1 when the catalog and similarity matrix are loaded, 0 in degraded mode",
		},
	)

	DatasetEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_catalog_entries",
			Help: "Number of catalog entries in the loaded dataset",
		},
	)

	ArtifactDownloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artifact_downloads_total",
			Help: "Artifact fetch attempts by result",
		},
		[]string{"artifact", "result"}, // result: "downloaded", "skipped", "failed"
	)

	ArtifactLoadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "artifact_load_failures_total",
			Help: "Total number of failed dataset loads",
		},
	)

	// Metadata Enrichment Metrics
	EnrichmentRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrichment_provider_requests_total",
			Help: "Outbound metadata provider calls by result",
		},
		[]string{"provider", "result"}, // result: "success", "failure"
	)

	EnrichmentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enrichment_provider_duration_seconds",
			Help:    "Outbound metadata provider call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	EnrichmentCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrichment_cache_hits_total",
			Help: "Metadata cache hits by tier",
		},
		[]string{"tier"}, // "memory", "disk"
	)

	EnrichmentCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrichment_cache_misses_total",
			Help: "Metadata cache misses",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one engine lookup.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	if duration > 0 {
		RecommendationDuration.Observe(duration.Seconds())
	}
}

// RecordDatasetState updates the loaded gauge and entry count.
// entries is ignored when loaded is false.
func RecordDatasetState(loaded bool, entries int) {
	if !loaded {
		DatasetLoaded.Set(0)
		return
	}
	DatasetLoaded.Set(1)
	DatasetEntries.Set(float64(entries))
}

// RecordArtifactDownload records the outcome of one artifact fetch.
func RecordArtifactDownload(artifact, result string) {
	ArtifactDownloads.WithLabelValues(artifact, result).Inc()
}

// RecordEnrichmentRequest records one outbound provider call.
func RecordEnrichmentRequest(provider string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	EnrichmentRequests.WithLabelValues(provider, result).Inc()
	EnrichmentDuration.WithLabelValues(provider).Observe(duration.Seconds())
}
