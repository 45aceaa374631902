// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Item identifies a movie to enrich.
type Item struct {
	Title string
	ID    int
}

// EnrichAll enriches every item concurrently and returns the metadata in
// input order. It returns once every call has finished; each call is bounded
// by the enricher's own timeout.
func EnrichAll(ctx context.Context, e Enricher, items []Item) []Metadata {
	out := make([]Metadata, len(items))
	if len(items) == 0 {
		return out
	}

	var g errgroup.Group
	for i, item := range items {
		g.Go(func() error {
			out[i] = e.Enrich(ctx, item.Title, item.ID)
			return nil
		})
	}
	_ = g.Wait() // Enrich never fails
	return out
}
