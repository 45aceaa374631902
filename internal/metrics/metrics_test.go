// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies", "200"))

	RecordAPIRequest("GET", "/api/v1/movies", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("api_active_requests = %v, want %v", got, base)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		outcome  string
		duration time.Duration
	}{
		{"ok", time.Millisecond},
		{"not_found", 0},
		{"unavailable", 0},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(tt.outcome))
			RecordRecommendation(tt.outcome, tt.duration)
			after := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(tt.outcome))
			if after != before+1 {
				t.Errorf("recommendations_total{outcome=%q} = %v, want %v", tt.outcome, after, before+1)
			}
		})
	}
}

func TestRecordDatasetState(t *testing.T) {
	RecordDatasetState(true, 4803)
	if got := testutil.ToFloat64(DatasetLoaded); got != 1 {
		t.Errorf("dataset_loaded = %v, want 1", got)
	}
	if got := testutil.ToFloat64(DatasetEntries); got != 4803 {
		t.Errorf("dataset_catalog_entries = %v, want 4803", got)
	}

	RecordDatasetState(false, 0)
	if got := testutil.ToFloat64(DatasetLoaded); got != 0 {
		t.Errorf("dataset_loaded = %v, want 0", got)
	}
	// Entry count is left as last known.
	if got := testutil.ToFloat64(DatasetEntries); got != 4803 {
		t.Errorf("dataset_catalog_entries = %v, want 4803", got)
	}
}

func TestRecordEnrichmentRequest(t *testing.T) {
	okBefore := testutil.ToFloat64(EnrichmentRequests.WithLabelValues("tmdb", "success"))
	failBefore := testutil.ToFloat64(EnrichmentRequests.WithLabelValues("tmdb", "failure"))

	RecordEnrichmentRequest("tmdb", 20*time.Millisecond, nil)
	RecordEnrichmentRequest("tmdb", 20*time.Millisecond, errors.New("timeout"))

	if got := testutil.ToFloat64(EnrichmentRequests.WithLabelValues("tmdb", "success")); got != okBefore+1 {
		t.Errorf("success count = %v, want %v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(EnrichmentRequests.WithLabelValues("tmdb", "failure")); got != failBefore+1 {
		t.Errorf("failure count = %v, want %v", got, failBefore+1)
	}

	m := &dto.Metric{}
	h, ok := EnrichmentDuration.WithLabelValues("tmdb").(interface{ Write(*dto.Metric) error })
	if !ok {
		t.Fatal("histogram does not implement Write")
	}
	if err := h.Write(m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if m.GetHistogram().GetSampleCount() < 2 {
		t.Errorf("sample count = %d, want >= 2", m.GetHistogram().GetSampleCount())
	}
}

func TestRecordArtifactDownload(t *testing.T) {
	before := testutil.ToFloat64(ArtifactDownloads.WithLabelValues("catalog", "skipped"))
	RecordArtifactDownload("catalog", "skipped")
	if got := testutil.ToFloat64(ArtifactDownloads.WithLabelValues("catalog", "skipped")); got != before+1 {
		t.Errorf("artifact_downloads_total = %v, want %v", got, before+1)
	}
}
