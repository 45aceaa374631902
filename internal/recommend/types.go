// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"time"

	"github.com/tomtom215/reelmatch/internal/metadata"
)

var (
	// ErrNotFound is returned when the queried title is not in the catalog.
	ErrNotFound = errors.New("title not found in catalog")

	// ErrUnavailable is returned while no dataset is loaded.
	ErrUnavailable = errors.New("recommendations unavailable: dataset not loaded")

	// ErrCorruptDataset is returned when loaded state violates its own
	// invariants. It indicates a bug or a mismatched load, never bad input.
	ErrCorruptDataset = errors.New("dataset is corrupt")

	// ErrAlreadyLoaded is returned by Service.Install after a dataset is in place.
	ErrAlreadyLoaded = errors.New("dataset already loaded")
)

// Result is one ranked neighbour of the queried title.
type Result struct {
	// Rank is 1-based.
	Rank int `json:"rank"`

	// Index is the catalog position of the neighbour.
	Index int `json:"index"`

	ID    int     `json:"movie_id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Recommendation is a Result with display metadata attached.
type Recommendation struct {
	Result
	metadata.Metadata
}

// Status describes the dataset state for health checks and the UI banner.
type Status struct {
	Ready     bool      `json:"ready"`
	Entries   int       `json:"entries,omitempty"`
	LoadedAt  time.Time `json:"loaded_at,omitempty"`
	LastError string    `json:"last_error,omitempty"`
	FailedAt  time.Time `json:"failed_at,omitempty"`
	Failures  int64     `json:"failures,omitempty"`
}
