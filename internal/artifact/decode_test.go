// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package artifact

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"data/movies.csv", FormatCSV, false},
		{"data/MOVIES.CSV", FormatCSV, false},
		{"similarity.json", FormatJSON, false},
		{"similarity.pkl", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("error = %v, want ErrUnsupportedFormat", err)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeCatalog_CSV(t *testing.T) {
	t.Parallel()

	in := "\ufefftitle,genres,movie_id\n" +
		"Avatar,Action,19995\n" +
		"\"Pirates of the Caribbean: At World's End\",Adventure,285\n" +
		"Spectre,Action,206647.0\n"

	entries, err := DecodeCatalog(strings.NewReader(in), FormatCSV)
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}

	want := []catalog.Entry{
		{ID: 19995, Title: "Avatar"},
		{ID: 285, Title: "Pirates of the Caribbean: At World's End"},
		{ID: 206647, Title: "Spectre"},
	}
	if len(entries) != len(want) {
		t.Fatalf("len = %d, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestDecodeCatalog_CSVErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"missing title column", "movie_id,name\n1,A\n"},
		{"missing id column", "id,title\n1,A\n"},
		{"bad id", "movie_id,title\nabc,A\n"},
		{"fractional id", "movie_id,title\n1.5,A\n"},
		{"short row", "movie_id,title\n1\n"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := DecodeCatalog(strings.NewReader(tt.in), FormatCSV); err == nil {
				t.Error("DecodeCatalog() error = nil, want error")
			}
		})
	}
}

func TestDecodeCatalog_JSON(t *testing.T) {
	t.Parallel()

	in := `[{"movie_id": 19995, "title": "Avatar", "tags": "ignored"}, {"movie_id": 285, "title": "Heat"}]`
	entries, err := DecodeCatalog(strings.NewReader(in), FormatJSON)
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
	if len(entries) != 2 || entries[1].ID != 285 || entries[1].Title != "Heat" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestDecodeMatrix(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		rows, err := DecodeMatrix(strings.NewReader(`[[1, 0.5], [0.5, 1]]`), FormatJSON)
		if err != nil {
			t.Fatalf("DecodeMatrix() error = %v", err)
		}
		if len(rows) != 2 || rows[0][1] != 0.5 {
			t.Errorf("rows = %v", rows)
		}
	})

	t.Run("csv", func(t *testing.T) {
		t.Parallel()
		rows, err := DecodeMatrix(strings.NewReader("1.0, 0.25\n0.25,1.0\n"), FormatCSV)
		if err != nil {
			t.Fatalf("DecodeMatrix() error = %v", err)
		}
		if len(rows) != 2 || rows[1][0] != 0.25 {
			t.Errorf("rows = %v", rows)
		}
	})

	t.Run("csv non-numeric", func(t *testing.T) {
		t.Parallel()
		if _, err := DecodeMatrix(strings.NewReader("1.0,x\n"), FormatCSV); err == nil {
			t.Error("DecodeMatrix() error = nil, want parse error")
		}
	})

	t.Run("json malformed", func(t *testing.T) {
		t.Parallel()
		if _, err := DecodeMatrix(strings.NewReader(`[[1.0,`), FormatJSON); err == nil {
			t.Error("DecodeMatrix() error = nil, want decode error")
		}
	})
}

// writeSquare writes an n-entry catalog and an rows×cols matrix as CSV.
func writeSquare(t *testing.T, dir string, n, rows, cols int) (string, string) {
	t.Helper()

	var cb strings.Builder
	cb.WriteString("movie_id,title\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&cb, "%d,Movie %d\n", 1000+i, i)
	}

	var mb strings.Builder
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				mb.WriteByte(',')
			}
			if i == j {
				mb.WriteString("1")
			} else {
				mb.WriteString("0.1")
			}
		}
		mb.WriteByte('\n')
	}

	catalogPath := filepath.Join(dir, "movies.csv")
	matrixPath := filepath.Join(dir, "similarity.csv")
	if err := os.WriteFile(catalogPath, []byte(cb.String()), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(matrixPath, []byte(mb.String()), 0o600); err != nil {
		t.Fatal(err)
	}
	return catalogPath, matrixPath
}

func TestLoadDataset(t *testing.T) {
	t.Parallel()

	catalogPath, matrixPath := writeSquare(t, t.TempDir(), 6, 6, 6)
	ds, err := LoadDataset(catalogPath, matrixPath)
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if ds.Size() != 6 {
		t.Errorf("Size() = %d, want 6", ds.Size())
	}
	e, _ := ds.Catalog().At(5)
	if e.ID != 1005 || e.Title != "Movie 5" {
		t.Errorf("At(5) = %+v", e)
	}
}

func TestLoadDataset_DimensionMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		n, rows, columns int
	}{
		{"100 entries, 100x99 matrix", 100, 100, 99},
		{"100 entries, 99x99 matrix", 100, 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			catalogPath, matrixPath := writeSquare(t, t.TempDir(), tt.n, tt.rows, tt.columns)
			ds, err := LoadDataset(catalogPath, matrixPath)
			if !errors.Is(err, catalog.ErrDimensionMismatch) {
				t.Fatalf("LoadDataset() error = %v, want ErrDimensionMismatch", err)
			}
			if ds != nil {
				t.Error("LoadDataset() returned a dataset on mismatch")
			}
		})
	}
}

func TestLoadDataset_MissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := LoadDataset(filepath.Join(dir, "movies.csv"), filepath.Join(dir, "similarity.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadDataset() error = %v, want os.ErrNotExist", err)
	}
}

func TestFetcher_Load(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	catalogPath, matrixPath := writeSquare(t, src, 3, 3, 3)
	catalogBody, _ := os.ReadFile(catalogPath)
	matrixBody, _ := os.ReadFile(matrixPath)

	mux := http.NewServeMux()
	mux.HandleFunc("/movies.csv", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write(catalogBody) })
	mux.HandleFunc("/similarity.csv", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write(matrixBody) })
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dst := t.TempDir()
	ds, err := newTestFetcher(0).Load(context.Background(), Sources{
		CatalogURL:  srv.URL + "/movies.csv",
		CatalogPath: filepath.Join(dst, "movies.csv"),
		MatrixURL:   srv.URL + "/similarity.csv",
		MatrixPath:  filepath.Join(dst, "similarity.csv"),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.Size() != 3 {
		t.Errorf("Size() = %d, want 3", ds.Size())
	}
}
