// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCatalog is returned when a catalog has no entries.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrDimensionMismatch is returned when the matrix shape does not match the catalog.
	ErrDimensionMismatch = errors.New("similarity matrix dimensions do not match catalog")

	// ErrIndexOutOfRange is returned when an index does not address a catalog entry.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNonFiniteScore is returned when a matrix holds NaN or an infinity.
	ErrNonFiniteScore = errors.New("similarity score is not a finite number")
)

// Entry is a single movie in the catalog.
type Entry struct {
	// ID is the external identifier (TMDB movie id). Stable across runs.
	ID int `json:"movie_id"`

	// Title is the human-facing lookup key. May repeat within a catalog.
	Title string `json:"title"`
}

// Catalog is the fixed, ordered collection of known movies.
type Catalog struct {
	entries []Entry

	// firstIndex maps a title to its first occurrence in catalog order.
	firstIndex map[string]int
}

// NewCatalog builds a catalog from entries in the given order.
// The slice is copied so later changes by the caller are not observed.
func NewCatalog(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	owned := make([]Entry, len(entries))
	copy(owned, entries)

	firstIndex := make(map[string]int, len(owned))
	for i, e := range owned {
		if _, seen := firstIndex[e.Title]; !seen {
			firstIndex[e.Title] = i
		}
	}

	return &Catalog{
		entries:    owned,
		firstIndex: firstIndex,
	}, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at index i.
func (c *Catalog) At(i int) (Entry, error) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, fmt.Errorf("%w: %d (catalog size %d)", ErrIndexOutOfRange, i, len(c.entries))
	}
	return c.entries[i], nil
}

// IndexOf resolves a title by exact match. When several entries share the
// title the lowest index wins.
func (c *Catalog) IndexOf(title string) (int, bool) {
	i, ok := c.firstIndex[title]
	return i, ok
}

// Titles returns every title in catalog order, duplicates included.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.entries))
	for i, e := range c.entries {
		titles[i] = e.Title
	}
	return titles
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// DuplicateTitles returns the number of entries whose title already
// appeared earlier in the catalog.
func (c *Catalog) DuplicateTitles() int {
	return len(c.entries) - len(c.firstIndex)
}
