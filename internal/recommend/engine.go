// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Engine ranks catalog entries by similarity to a queried title.
// It is safe for concurrent use.
type Engine struct {
	dataset *catalog.Dataset
	topK    int
	logger  zerolog.Logger

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates an engine over a validated dataset.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(ds *catalog.Dataset, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrCorruptDataset)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		dataset: ds,
		topK:    cfg.TopK,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Dataset returns the dataset the engine ranks over.
func (e *Engine) Dataset() *catalog.Dataset {
	return e.dataset
}

// TopK returns the configured result limit.
func (e *Engine) TopK() int {
	return e.topK
}

// Recommend returns up to TopK neighbours of title in rank order.
// An unknown or empty title yields an empty slice and ErrNotFound.
func (e *Engine) Recommend(title string) ([]Result, error) {
	e.requestCount.Add(1)

	index, ok := e.dataset.Catalog().IndexOf(title)
	if !ok {
		return []Result{}, fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	results, err := e.recommendIndex(index)
	if err != nil {
		e.errorCount.Add(1)
		e.logger.Error().Err(err).Int("index", index).Str("title", title).Msg("Dataset invariant violated")
		return []Result{}, err
	}
	return results, nil
}

func (e *Engine) recommendIndex(index int) ([]Result, error) {
	row, err := e.dataset.Matrix().Row(index)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptDataset, err)
	}

	top := selectTopK(row, index, e.topK)

	c := e.dataset.Catalog()
	results := make([]Result, len(top))
	for rank, j := range top {
		entry, err := c.At(j)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptDataset, err)
		}
		results[rank] = Result{
			Rank:  rank + 1,
			Index: j,
			ID:    entry.ID,
			Title: entry.Title,
			Score: row[j],
		}
	}
	return results, nil
}

// selectTopK returns the indices of the k highest scores in row, skipping
// exclude. Ties keep ascending index order.
//
// Candidates are visited in index order and a new candidate is placed after
// every kept entry whose score is greater or equal, which is exactly the
// order a stable descending sort would produce.
func selectTopK(row []float64, exclude, k int) []int {
	limit := k
	if n := len(row) - 1; n < limit {
		limit = n
	}
	if limit <= 0 {
		return []int{}
	}

	top := make([]int, 0, limit)
	for j, score := range row {
		if j == exclude {
			continue
		}
		if len(top) == limit && score <= row[top[limit-1]] {
			continue
		}

		pos := len(top)
		for pos > 0 && row[top[pos-1]] < score {
			pos--
		}

		if len(top) < limit {
			top = append(top, 0)
		}
		copy(top[pos+1:], top[pos:len(top)-1])
		top[pos] = j
	}
	return top
}

// Stats returns the number of lookups served and failed with a corrupt dataset.
func (e *Engine) Stats() (requests, errors int64) {
	return e.requestCount.Load(), e.errorCount.Load()
}
