// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

var (
	// ErrBadStatus is returned when the remote server answers with a non-2xx status.
	ErrBadStatus = errors.New("unexpected HTTP status")

	// ErrNoSource is returned when an artifact is missing locally and no URL is configured.
	ErrNoSource = errors.New("artifact missing and no source URL configured")
)

// DefaultDownloadTimeout bounds a single artifact download.
const DefaultDownloadTimeout = 30 * time.Second

// FetcherConfig configures a Fetcher.
type FetcherConfig struct {
	// Timeout bounds the whole request including the body transfer.
	Timeout time.Duration

	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// Fetcher downloads artifacts that are not yet on local disk.
type Fetcher struct {
	client    *http.Client
	userAgent string
	logger    zerolog.Logger
}

// NewFetcher creates a Fetcher. The underlying client follows redirects.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewFetcher(cfg FetcherConfig, logger zerolog.Logger) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultDownloadTimeout
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: cfg.UserAgent,
		logger:    logger.With().Str("component", "artifact").Logger(),
	}
}

// Ensure makes sure path exists, downloading it from rawURL when absent.
// It reports whether a download happened. name labels logs and metrics.
func (f *Fetcher) Ensure(ctx context.Context, name, rawURL, path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		f.logger.Debug().Str("artifact", name).Str("path", path).Msg("Artifact present, skipping download")
		metrics.RecordArtifactDownload(name, "skipped")
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		metrics.RecordArtifactDownload(name, "failed")
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if rawURL == "" {
		metrics.RecordArtifactDownload(name, "failed")
		return false, fmt.Errorf("%s at %s: %w", name, path, ErrNoSource)
	}

	start := time.Now()
	n, err := f.download(ctx, rawURL, path)
	if err != nil {
		metrics.RecordArtifactDownload(name, "failed")
		return false, fmt.Errorf("download %s: %w", name, err)
	}

	metrics.RecordArtifactDownload(name, "downloaded")
	f.logger.Info().
		Str("artifact", name).
		Str("url", logging.RedactURL(rawURL)).
		Str("path", path).
		Int64("bytes", n).
		Dur("duration", time.Since(start)).
		Msg("Artifact downloaded")
	return true, nil
}

// download streams rawURL into a temp file beside path and renames it into
// place once the body has been fully written.
func (f *Fetcher) download(ctx context.Context, rawURL, path string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			f.logger.Warn().Err(closeErr).Msg("Failed to close response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.part")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		_ = tmp.Close()
		return n, fmt.Errorf("write body: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return n, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return n, fmt.Errorf("rename into place: %w", err)
	}
	committed = true
	return n, nil
}
