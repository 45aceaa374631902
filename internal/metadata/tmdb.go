// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

const (
	// DefaultTMDBBaseURL is the TMDB v3 API root.
	DefaultTMDBBaseURL = "https://api.themoviedb.org/3"

	// DefaultTMDBImageBaseURL is the TMDB image CDN root.
	DefaultTMDBImageBaseURL = "https://image.tmdb.org/t/p"

	tmdbPosterSize = "w500"
)

// tmdbMovie is the subset of GET /movie/{id} we use.
type tmdbMovie struct {
	PosterPath string `json:"poster_path"`
}

// TMDBClient resolves posters by TMDB movie id.
type TMDBClient struct {
	http         httpClient
	baseURL      string
	imageBaseURL string
	apiKey       string
	breaker      *gobreaker.CircuitBreaker[string]
}

// NewTMDBClient creates a TMDB client. imageBaseURL defaults to the TMDB CDN.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewTMDBClient(cfg ClientConfig, imageBaseURL string, logger zerolog.Logger) *TMDBClient {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultTMDBBaseURL
	}
	if imageBaseURL == "" {
		imageBaseURL = DefaultTMDBImageBaseURL
	}
	return &TMDBClient{
		http:         newHTTPClient("tmdb", cfg),
		baseURL:      strings.TrimRight(base, "/"),
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		apiKey:       cfg.APIKey,
		breaker:      newBreaker[string]("tmdb-api", cfg.Breaker, logger),
	}
}

// PosterURL returns the full w500 poster URL for the movie, or ErrNoData when
// TMDB has no poster for it.
func (c *TMDBClient) PosterURL(ctx context.Context, id int) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("%w: invalid movie id %d", ErrNoData, id)
	}

	return execute(c.breaker, func() (string, error) {
		q := url.Values{}
		q.Set("api_key", c.apiKey)
		q.Set("language", "en-US")
		endpoint := c.baseURL + "/movie/" + strconv.Itoa(id) + "?" + q.Encode()

		var movie tmdbMovie
		if err := c.http.getJSON(ctx, endpoint, &movie); err != nil {
			return "", fmt.Errorf("tmdb movie %d: %w", id, err)
		}
		if movie.PosterPath == "" {
			return "", fmt.Errorf("%w: tmdb movie %d has no poster", ErrNoData, id)
		}

		path := movie.PosterPath
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return c.imageBaseURL + "/" + tmdbPosterSize + path, nil
	})
}
