// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package artifact

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestFetcher(timeout time.Duration) *Fetcher {
	return NewFetcher(FetcherConfig{Timeout: timeout, UserAgent: "reelmatch-test"}, zerolog.New(io.Discard))
}

func TestFetcher_Ensure_SkipsExisting(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("remote"))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte("local"), 0o600); err != nil {
		t.Fatal(err)
	}

	downloaded, err := newTestFetcher(0).Ensure(context.Background(), "catalog", srv.URL, path)
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if downloaded {
		t.Error("Ensure() downloaded although file exists")
	}
	if calls.Load() != 0 {
		t.Errorf("server called %d times, want 0", calls.Load())
	}

	got, _ := os.ReadFile(path)
	if string(got) != "local" {
		t.Errorf("file content = %q, want local (untouched)", got)
	}
}

func TestFetcher_Ensure_DownloadsAndFollowsRedirects(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusFound)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "reelmatch-test" {
			t.Errorf("User-Agent = %q, want reelmatch-test", ua)
		}
		_, _ = w.Write([]byte("movie_id,title\n1,Alien\n"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "nested", "movies.csv")
	downloaded, err := newTestFetcher(0).Ensure(context.Background(), "catalog", srv.URL+"/old", path)
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if !downloaded {
		t.Error("Ensure() downloaded = false, want true")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "movie_id,title\n1,Alien\n" {
		t.Errorf("file content = %q, body not written verbatim", got)
	}
}

func TestFetcher_Ensure_BadStatusLeavesNoFile(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "similarity.json")
	_, err := newTestFetcher(0).Ensure(context.Background(), "matrix", srv.URL, path)
	if !errors.Is(err, ErrBadStatus) {
		t.Fatalf("Ensure() error = %v, want ErrBadStatus", err)
	}

	assertEmptyDir(t, dir)
}

func TestFetcher_Ensure_TimeoutLeavesNoPartialFile(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[[1.0,"))
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		<-release
	}))
	defer srv.Close()
	defer close(release)

	dir := t.TempDir()
	path := filepath.Join(dir, "similarity.json")
	_, err := newTestFetcher(100*time.Millisecond).Ensure(context.Background(), "matrix", srv.URL, path)
	if err == nil {
		t.Fatal("Ensure() error = nil, want timeout")
	}

	assertEmptyDir(t, dir)
}

func TestFetcher_Ensure_NoSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "movies.csv")
	_, err := newTestFetcher(0).Ensure(context.Background(), "catalog", "", path)
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("Ensure() error = %v, want ErrNoSource", err)
	}
}

func TestFetcher_Ensure_CanceledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFetcher(0).Ensure(ctx, "catalog", srv.URL, filepath.Join(t.TempDir(), "movies.csv"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Ensure() error = %v, want context.Canceled", err)
	}
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, e := range entries {
		t.Errorf("unexpected file left behind: %s", e.Name())
	}
}
