// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"fmt"
	"math"
)

// Matrix is a square table of pairwise similarity scores stored row-major.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix flattens rows into a square matrix.
// Every row must have exactly len(rows) columns and every score must be finite.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: matrix has no rows", ErrDimensionMismatch)
	}

	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: (%d, %d) = %v", ErrNonFiniteScore, i, j, v)
			}
		}
		data = append(data, row...)
	}

	return &Matrix{n: n, data: data}, nil
}

// Size returns N for an N×N matrix.
func (m *Matrix) Size() int {
	return m.n
}

// Row returns the scores of row i. The returned slice aliases the matrix
// storage and must not be modified.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("%w: row %d (matrix size %d)", ErrIndexOutOfRange, i, m.n)
	}
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n], nil
}

// At returns the score at row i, column j.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%w: (%d, %d) (matrix size %d)", ErrIndexOutOfRange, i, j, m.n)
	}
	return m.data[i*m.n+j], nil
}
