// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metadata"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

var testTitles = []string{"Avatar", "Aliens", "Titanic", "The Abyss", "Terminator 2", "True Lies"}

var testRows = [][]float64{
	{1, .9, .8, .7, .6, .5},
	{.9, 1, .4, .3, .2, .1},
	{.8, .4, 1, .35, .25, .15},
	{.7, .3, .35, 1, .45, .05},
	{.6, .2, .25, .45, 1, .55},
	{.5, .1, .15, .05, .55, 1},
}

// idEnricher returns metadata derived from the movie id.
type idEnricher struct{}

func (idEnricher) Enrich(_ context.Context, _ string, id int) metadata.Metadata {
	return metadata.Metadata{
		Poster: fmt.Sprintf("https://img.example/%d.jpg", id),
		Rating: fmt.Sprintf("%d/10", id%10),
		Genre:  "Science Fiction",
	}
}

func newTestDataset(t *testing.T, titles []string, rows [][]float64) *catalog.Dataset {
	t.Helper()

	entries := make([]catalog.Entry, len(titles))
	for i, title := range titles {
		entries[i] = catalog.Entry{ID: 100 + i, Title: title}
	}
	c, err := catalog.NewCatalog(entries)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	m, err := catalog.NewMatrix(rows)
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	ds, err := catalog.NewDataset(c, m)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	return ds
}

// newTestService returns a service with the six-movie dataset installed.
func newTestService(t *testing.T) *recommend.Service {
	t.Helper()

	svc := newDegradedService(t, nil)
	if err := svc.Install(newTestDataset(t, testTitles, testRows)); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	return svc
}

// newDegradedService returns a service with no dataset. A non-nil loadErr
// is recorded as the last load failure.
func newDegradedService(t *testing.T, loadErr error) *recommend.Service {
	t.Helper()

	svc, err := recommend.NewService(recommend.DefaultConfig(), idEnricher{}, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if loadErr != nil {
		svc.RecordLoadFailure(loadErr)
	}
	return svc
}

func newTestRouter(t *testing.T, svc Recommender) http.Handler {
	t.Helper()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(NewHandler(svc, logging.NewTestLogger(io.Discard)), NewChiMiddleware(cfg)).SetupChi()
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// testEnvelope mirrors APIResponse with a raw payload.
type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return env
}

// failingRecommender reports an unexpected error from every call.
type failingRecommender struct{}

var errBackend = errors.New("backend exploded")

func (failingRecommender) Ready() bool { return true }
func (failingRecommender) Status() recommend.Status { return recommend.Status{Ready: true} }
func (failingRecommender) Titles() ([]string, error) { return nil, errBackend }
func (failingRecommender) Movies() ([]catalog.Entry, error) { return nil, errBackend }
func (failingRecommender) RecommendEnriched(context.Context, string) ([]recommend.Recommendation, error) {
	return nil, errBackend
}
