// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestRouter(t, newTestService(t)), "/api/v1/does-not-exist")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestService(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations?title=Avatar", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != ErrCodeMethodNotAllowed {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestRouter_RequestID(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestService(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	req.Header.Set("X-Request-ID", "trace-abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "trace-abc-123" {
		t.Errorf("X-Request-ID = %q, want trace-abc-123", got)
	}
	if env := decodeEnvelope(t, rec); env.Meta == nil || env.Meta.RequestID != "trace-abc-123" {
		t.Errorf("meta.request_id mismatch: %s", rec.Body)
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestService(t))
	doGet(t, router, "/api/v1/recommendations?title=Avatar")

	rec := doGet(t, router, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"api_requests_total", "recommendations_total", "dataset_loaded"} {
		if !strings.Contains(body, name) {
			t.Errorf("/metrics missing %s", name)
		}
	}
	if !strings.Contains(body, `endpoint="/api/v1/recommendations"`) {
		t.Error("/metrics should label requests by route pattern")
	}
}

func TestRouter_Compression(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	newTestRouter(t, newTestService(t)).ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Error("API response was not gzipped")
	}
}
