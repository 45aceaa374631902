// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

type recommendationJSON struct {
	Rank   int     `json:"rank"`
	ID     int     `json:"movie_id"`
	Title  string  `json:"title"`
	Score  float64 `json:"score"`
	Poster string  `json:"poster"`
	Rating string  `json:"rating"`
	Genre  string  `json:"genre"`
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestService(t))
	rec := doGet(t, router, "/api/v1/recommendations?title=Avatar")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatal("success = false")
	}
	if env.Meta == nil || env.Meta.Count == nil || *env.Meta.Count != 5 {
		t.Fatalf("meta = %+v, want count 5", env.Meta)
	}
	if env.Meta.RequestID == "" {
		t.Error("meta.request_id is empty")
	}

	var payload struct {
		Title           string               `json:"title"`
		Recommendations []recommendationJSON `json:"recommendations"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if payload.Title != "Avatar" {
		t.Errorf("title = %q, want Avatar", payload.Title)
	}

	want := []string{"Aliens", "Titanic", "The Abyss", "Terminator 2", "True Lies"}
	if len(payload.Recommendations) != len(want) {
		t.Fatalf("got %d recommendations, want %d", len(payload.Recommendations), len(want))
	}
	for i, r := range payload.Recommendations {
		if r.Title != want[i] || r.Rank != i+1 {
			t.Errorf("recommendations[%d] = %d %q, want %d %q", i, r.Rank, r.Title, i+1, want[i])
		}
		if r.ID != 101+i {
			t.Errorf("recommendations[%d].movie_id = %d, want %d", i, r.ID, 101+i)
		}
		if !strings.HasPrefix(r.Poster, "https://img.example/") || r.Genre != "Science Fiction" || r.Rating == "" {
			t.Errorf("recommendations[%d] metadata = %+v", i, r)
		}
	}
}

func TestRecommendations_Errors(t *testing.T) {
	t.Parallel()

	loaded := newTestRouter(t, newTestService(t))
	degraded := newTestRouter(t, newDegradedService(t, errors.New("similarity.csv: 100 rows, want 99")))

	tests := []struct {
		name     string
		router   http.Handler
		target   string
		wantCode int
		wantErr  string
	}{
		{"unknown title", loaded, "/api/v1/recommendations?title=" + url.QueryEscape("Nonexistent Movie 123"), http.StatusNotFound, ErrCodeNotFound},
		{"case sensitive", loaded, "/api/v1/recommendations?title=avatar", http.StatusNotFound, ErrCodeNotFound},
		{"missing title", loaded, "/api/v1/recommendations", http.StatusBadRequest, ErrCodeValidationFailed},
		{"blank title", loaded, "/api/v1/recommendations?title=%20%20", http.StatusBadRequest, ErrCodeValidationFailed},
		{"title too long", loaded, "/api/v1/recommendations?title=" + strings.Repeat("x", 501), http.StatusBadRequest, ErrCodeValidationFailed},
		{"degraded", degraded, "/api/v1/recommendations?title=Avatar", http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"backend failure", newTestRouter(t, failingRecommender{}), "/api/v1/recommendations?title=Avatar", http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := doGet(t, tt.router, tt.target)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body %s", rec.Code, tt.wantCode, rec.Body)
			}
			env := decodeEnvelope(t, rec)
			if env.Success || env.Error == nil {
				t.Fatalf("envelope = %+v, want error", env)
			}
			if env.Error.Code != tt.wantErr {
				t.Errorf("error.code = %q, want %q", env.Error.Code, tt.wantErr)
			}
			if env.Error.RequestID == "" {
				t.Error("error.request_id is empty")
			}
			if strings.Contains(rec.Body.String(), "100 rows") || strings.Contains(rec.Body.String(), errBackend.Error()) {
				t.Error("internal error text leaked into response")
			}
		})
	}
}

func TestRecommendations_ValidationDetails(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestRouter(t, newTestService(t)), "/api/v1/recommendations?title=")
	env := decodeEnvelope(t, rec)

	details, ok := env.Error.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("error.details = %T, want object", env.Error.Details)
	}
	if details["field"] != "title" {
		t.Errorf("details.field = %v, want title", details["field"])
	}
}

func TestMovies(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestRouter(t, newTestService(t)), "/api/v1/movies")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	var movies []struct {
		ID    int    `json:"movie_id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &movies); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if len(movies) != len(testTitles) {
		t.Fatalf("got %d movies, want %d", len(movies), len(testTitles))
	}
	for i, m := range movies {
		if m.Title != testTitles[i] || m.ID != 100+i {
			t.Errorf("movies[%d] = %+v, want {%d %q}", i, m, 100+i, testTitles[i])
		}
	}
	if env.Meta.Count == nil || *env.Meta.Count != len(testTitles) {
		t.Errorf("meta.count = %v, want %d", env.Meta.Count, len(testTitles))
	}
}

func TestMovies_Degraded(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestRouter(t, newDegradedService(t, nil)), "/api/v1/movies")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	type readyBody struct {
		Status  string `json:"status"`
		Dataset struct {
			Ready     bool   `json:"ready"`
			Entries   int    `json:"entries"`
			LastError string `json:"last_error"`
		} `json:"dataset"`
	}

	t.Run("live while degraded", func(t *testing.T) {
		t.Parallel()
		rec := doGet(t, newTestRouter(t, newDegradedService(t, nil)), "/api/v1/health/live")
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		rec := doGet(t, newTestRouter(t, newTestService(t)), "/api/v1/health/ready")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body readyBody
		if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &body); err != nil {
			t.Fatal(err)
		}
		if body.Status != "ready" || !body.Dataset.Ready || body.Dataset.Entries != len(testTitles) {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()
		rec := doGet(t, newTestRouter(t, newDegradedService(t, errors.New("download catalog: 404"))), "/api/v1/health/ready")
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rec.Code)
		}
		env := decodeEnvelope(t, rec)
		if env.Success {
			t.Error("success = true for 503")
		}
		var body readyBody
		if err := json.Unmarshal(env.Data, &body); err != nil {
			t.Fatal(err)
		}
		if body.Status != "degraded" || body.Dataset.Ready {
			t.Errorf("body = %+v", body)
		}
		if !strings.Contains(body.Dataset.LastError, "download catalog: 404") {
			t.Errorf("last_error = %q", body.Dataset.LastError)
		}
	})
}

func TestRequestTimeoutFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		metadata time.Duration
		want     time.Duration
	}{
		{10 * time.Second, DefaultRequestTimeout},
		{20 * time.Second, 45 * time.Second},
		{time.Second, 7 * time.Second},
		{0, DefaultRequestTimeout},
		{-time.Second, DefaultRequestTimeout},
	}
	for _, tt := range tests {
		if got := RequestTimeoutFor(tt.metadata); got != tt.want {
			t.Errorf("RequestTimeoutFor(%v) = %v, want %v", tt.metadata, got, tt.want)
		}
	}
}

// deadlineRecommender records the deadline of the context it is called with.
type deadlineRecommender struct {
	failingRecommender
	deadline chan time.Duration
}

func (d deadlineRecommender) RecommendEnriched(ctx context.Context, _ string) ([]recommend.Recommendation, error) {
	dl, ok := ctx.Deadline()
	if !ok {
		d.deadline <- 0
		return nil, nil
	}
	d.deadline <- time.Until(dl)
	return nil, nil
}

func TestHandler_SetRequestTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{name: "default", timeout: 0, want: DefaultRequestTimeout},
		{name: "from metadata timeout", timeout: RequestTimeoutFor(20 * time.Second), want: 45 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := deadlineRecommender{deadline: make(chan time.Duration, 1)}
			h := NewHandler(svc, logging.NewTestLogger(io.Discard))
			h.SetRequestTimeout(tt.timeout)

			rec := httptest.NewRecorder()
			h.Recommendations(rec, httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?title=Avatar", nil))

			got := <-svc.deadline
			if got <= tt.want-time.Second || got > tt.want {
				t.Errorf("request deadline = %v, want about %v", got, tt.want)
			}
		})
	}
}
