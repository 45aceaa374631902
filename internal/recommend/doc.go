// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements the "more like this" lookup over a
// precomputed similarity matrix.
//
// # Algorithm
//
// Given a title, the Engine:
//
//  1. resolves the title to the first catalog index carrying it
//  2. reads that index's matrix row
//  3. ranks every other index by score descending; equal scores keep
//     catalog order, so the lower index ranks first
//  4. returns the first K (default 5) with their title and id
//
// The query index is excluded by identity, not by position. A tie between
// the self-score and another entry therefore can never push the query into
// the results or drop a legitimate neighbour.
//
// The ranking is equivalent to a stable sort by score descending over the
// index-ordered row, but is computed as a single pass top-K selection so a
// lookup costs O(N·K) rather than O(N log N).
//
// # Degraded Mode
//
// Service owns the process-wide Engine. Until the artifact loader installs a
// dataset, or after it reports a load failure, every lookup returns
// ErrUnavailable and the HTTP layer tells the user recommendations are
// disabled. The process keeps serving.
//
// # Enrichment
//
// Service.RecommendEnriched runs the lookup and then fetches display metadata
// for each result concurrently through a metadata.Enricher. Output order is
// rank order regardless of which provider call finishes first.
//
// # Thread Safety
//
// An Engine never mutates its dataset and is safe for concurrent use. The
// Service swaps engines atomically.
package recommend
