// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"fmt"
	"time"
)

// Dataset is the validated, read-only pairing of a catalog and its matrix.
type Dataset struct {
	catalog  *Catalog
	matrix   *Matrix
	loadedAt time.Time
}

// NewDataset validates that matrix is N×N for a catalog of N entries.
// On mismatch it returns ErrDimensionMismatch and no dataset.
func NewDataset(c *Catalog, m *Matrix) (*Dataset, error) {
	if c == nil || c.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if m == nil {
		return nil, fmt.Errorf("%w: matrix is nil", ErrDimensionMismatch)
	}
	if m.Size() != c.Len() {
		return nil, fmt.Errorf("%w: catalog has %d entries, matrix is %dx%d",
			ErrDimensionMismatch, c.Len(), m.Size(), m.Size())
	}

	return &Dataset{
		catalog:  c,
		matrix:   m,
		loadedAt: time.Now(),
	}, nil
}

// Catalog returns the catalog.
func (d *Dataset) Catalog() *Catalog {
	return d.catalog
}

// Matrix returns the similarity matrix.
func (d *Dataset) Matrix() *Matrix {
	return d.matrix
}

// Size returns the number of catalog entries.
func (d *Dataset) Size() int {
	return d.catalog.Len()
}

// LoadedAt returns when the dataset was assembled.
func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}
