// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// DefaultOMDbBaseURL is the OMDb API root.
const DefaultOMDbBaseURL = "https://www.omdbapi.com"

// omdbResponse is the subset of GET /?t= we use. Missing fields come back
// as the literal "N/A".
type omdbResponse struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	Poster     string `json:"Poster"`
	IMDBRating string `json:"imdbRating"`
	Genre      string `json:"Genre"`
}

// OMDbResult holds the fields found for a title. Empty means absent.
type OMDbResult struct {
	Poster string
	Rating string
	Genre  string
}

// OMDbClient looks movies up by title.
type OMDbClient struct {
	http    httpClient
	baseURL string
	apiKey  string
	breaker *gobreaker.CircuitBreaker[OMDbResult]
}

// NewOMDbClient creates an OMDb client.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewOMDbClient(cfg ClientConfig, logger zerolog.Logger) *OMDbClient {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultOMDbBaseURL
	}
	return &OMDbClient{
		http:    newHTTPClient("omdb", cfg),
		baseURL: strings.TrimRight(base, "/"),
		apiKey:  cfg.APIKey,
		breaker: newBreaker[OMDbResult]("omdb-api", cfg.Breaker, logger),
	}
}

// Lookup fetches poster, rating and genre for title. "N/A" fields are
// returned empty. A title OMDb does not know yields ErrNoData.
func (c *OMDbClient) Lookup(ctx context.Context, title string) (OMDbResult, error) {
	if strings.TrimSpace(title) == "" {
		return OMDbResult{}, fmt.Errorf("%w: empty title", ErrNoData)
	}

	return execute(c.breaker, func() (OMDbResult, error) {
		q := url.Values{}
		q.Set("t", title)
		q.Set("apikey", c.apiKey)
		endpoint := c.baseURL + "/?" + q.Encode()

		var resp omdbResponse
		if err := c.http.getJSON(ctx, endpoint, &resp); err != nil {
			return OMDbResult{}, fmt.Errorf("omdb %q: %w", title, err)
		}
		if strings.EqualFold(resp.Response, "False") {
			return OMDbResult{}, fmt.Errorf("%w: omdb %q: %s", ErrNoData, title, resp.Error)
		}

		var r OMDbResult
		if present(resp.Poster) {
			r.Poster = resp.Poster
		}
		if present(resp.IMDBRating) {
			r.Rating = resp.IMDBRating
		}
		if present(resp.Genre) {
			r.Genre = resp.Genre
		}
		return r, nil
	})
}
