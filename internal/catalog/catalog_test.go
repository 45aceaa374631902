// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"errors"
	"math"
	"testing"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("empty catalog is rejected", func(t *testing.T) {
		t.Parallel()
		if _, err := NewCatalog(nil); !errors.Is(err, ErrEmptyCatalog) {
			t.Errorf("NewCatalog(nil) error = %v, want ErrEmptyCatalog", err)
		}
	})

	t.Run("entries are copied", func(t *testing.T) {
		t.Parallel()
		entries := []Entry{{ID: 1, Title: "Alien"}, {ID: 2, Title: "Aliens"}}
		c, err := NewCatalog(entries)
		if err != nil {
			t.Fatalf("NewCatalog() error = %v", err)
		}
		entries[0].Title = "changed"

		e, err := c.At(0)
		if err != nil {
			t.Fatalf("At(0) error = %v", err)
		}
		if e.Title != "Alien" {
			t.Errorf("At(0).Title = %q, want Alien", e.Title)
		}
	})
}

func TestCatalog_IndexOf(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog([]Entry{
		{ID: 10, Title: "Heat"},
		{ID: 11, Title: "Ronin"},
		{ID: 12, Title: "Heat"},
		{ID: 13, Title: "Thief"},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	tests := []struct {
		title     string
		wantIndex int
		wantOK    bool
	}{
		{"Ronin", 1, true},
		{"Thief", 3, true},
		{"Heat", 0, true}, // first occurrence wins
		{"heat", 0, false},
		{"", 0, false},
		{"Collateral", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			idx, ok := c.IndexOf(tt.title)
			if ok != tt.wantOK {
				t.Fatalf("IndexOf(%q) ok = %v, want %v", tt.title, ok, tt.wantOK)
			}
			if ok && idx != tt.wantIndex {
				t.Errorf("IndexOf(%q) = %d, want %d", tt.title, idx, tt.wantIndex)
			}
		})
	}

	if got := c.DuplicateTitles(); got != 1 {
		t.Errorf("DuplicateTitles() = %d, want 1", got)
	}
}

func TestCatalog_At(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog([]Entry{{ID: 1, Title: "A"}})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	for _, i := range []int{-1, 1, 100} {
		if _, err := c.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestCatalog_Titles(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog([]Entry{{ID: 1, Title: "B"}, {ID: 2, Title: "A"}, {ID: 3, Title: "B"}})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	got := c.Titles()
	want := []string{"B", "A", "B"}
	if len(got) != len(want) {
		t.Fatalf("Titles() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Titles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		wantErr bool
	}{
		{"square", [][]float64{{1, 0.5}, {0.5, 1}}, false},
		{"single", [][]float64{{1}}, false},
		{"no rows", nil, true},
		{"short row", [][]float64{{1, 0.5}, {0.5}}, true},
		{"rectangular", [][]float64{{1, 0.5, 0.1}, {0.5, 1, 0.2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewMatrix(tt.rows)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewMatrix() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("NewMatrix() error = %v, want ErrDimensionMismatch", err)
			}
		})
	}
}

func TestNewMatrix_NonFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewMatrix([][]float64{{1, v}, {0, 1}})
		if !errors.Is(err, ErrNonFiniteScore) {
			t.Errorf("NewMatrix() with %v error = %v, want ErrNonFiniteScore", v, err)
		}
	}
}

func TestMatrix_Row(t *testing.T) {
	t.Parallel()

	m, err := NewMatrix([][]float64{
		{1.0, 0.2, 0.3},
		{0.2, 1.0, 0.4},
		{0.3, 0.4, 1.0},
	})
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}

	row, err := m.Row(1)
	if err != nil {
		t.Fatalf("Row(1) error = %v", err)
	}
	if len(row) != 3 || row[0] != 0.2 || row[2] != 0.4 {
		t.Errorf("Row(1) = %v, want [0.2 1 0.4]", row)
	}

	if _, err := m.Row(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Row(3) error = %v, want ErrIndexOutOfRange", err)
	}

	v, err := m.At(2, 0)
	if err != nil || v != 0.3 {
		t.Errorf("At(2, 0) = %v, %v; want 0.3, nil", v, err)
	}
}

func TestNewDataset_DimensionMismatch(t *testing.T) {
	t.Parallel()

	entries := make([]Entry, 100)
	for i := range entries {
		entries[i] = Entry{ID: i, Title: "movie"}
	}
	c, err := NewCatalog(entries)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	// 99x99 is a valid square matrix but does not fit a 100-entry catalog.
	rows := make([][]float64, 99)
	for i := range rows {
		rows[i] = make([]float64, 99)
	}
	m, err := NewMatrix(rows)
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}

	ds, err := NewDataset(c, m)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("NewDataset() error = %v, want ErrDimensionMismatch", err)
	}
	if ds != nil {
		t.Error("NewDataset() returned a partial dataset on mismatch")
	}
}

func TestNewDataset(t *testing.T) {
	t.Parallel()

	c, _ := NewCatalog([]Entry{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}})
	m, _ := NewMatrix([][]float64{{1, 0}, {0, 1}})

	ds, err := NewDataset(c, m)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	if ds.Size() != 2 {
		t.Errorf("Size() = %d, want 2", ds.Size())
	}
	if ds.LoadedAt().IsZero() {
		t.Error("LoadedAt() is zero")
	}

	if _, err := NewDataset(c, nil); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("NewDataset(c, nil) error = %v, want ErrDimensionMismatch", err)
	}
	if _, err := NewDataset(nil, m); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("NewDataset(nil, m) error = %v, want ErrEmptyCatalog", err)
	}
}
