// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// DefaultTimeout bounds one provider call.
const DefaultTimeout = 10 * time.Second

// errCallerCanceled marks a call abandoned because the caller went away.
var errCallerCanceled = errors.New("caller canceled")

// ClientConfig holds the settings shared by every provider client.
type ClientConfig struct {
	BaseURL string
	APIKey  string

	// Timeout bounds each call. Defaults to DefaultTimeout.
	Timeout time.Duration

	// RateLimit caps outbound calls per second; 0 disables limiting.
	RateLimit float64

	Breaker BreakerSettings

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// httpClient is the transport shared by the TMDB and OMDb clients.
type httpClient struct {
	provider string
	client   *http.Client
	limiter  *rate.Limiter
	timeout  time.Duration
}

func newHTTPClient(provider string, cfg ClientConfig) httpClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return httpClient{
		provider: provider,
		client:   client,
		limiter:  limiter,
		timeout:  timeout,
	}
}

// getJSON performs a GET against rawURL and decodes the body into out.
// Errors never contain the API key.
func (c httpClient) getJSON(ctx context.Context, rawURL string, out interface{}) (err error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if !errors.Is(err, errCallerCanceled) {
			metrics.RecordEnrichmentRequest(c.provider, time.Since(start), err)
		}
	}()

	if c.limiter != nil {
		if waitErr := c.limiter.Wait(callCtx); waitErr != nil {
			return c.classify(ctx, fmt.Errorf("rate limiter: %w", waitErr))
		}
	}

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", redactURLError(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.classify(ctx, fmt.Errorf("request failed: %w", redactURLError(err)))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: HTTP 404", ErrNoData)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", c.provider, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.classify(ctx, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// classify tags err when the parent context, not our own timeout, ended the call.
func (c httpClient) classify(parent context.Context, err error) error {
	if parent.Err() != nil {
		return fmt.Errorf("%w: %w", errCallerCanceled, err)
	}
	return err
}

// redactURLError strips credentials from the URL that *url.Error embeds.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		redacted := *urlErr
		redacted.URL = logging.RedactURL(urlErr.URL)
		return &redacted
	}
	return err
}
