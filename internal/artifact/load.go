// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package artifact

import (
	"context"
	"fmt"
	"os"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Sources locates both artifacts remotely and on local disk.
type Sources struct {
	CatalogURL  string
	CatalogPath string
	MatrixURL   string
	MatrixPath  string
}

// LoadDataset decodes the catalog and matrix files and validates that they
// fit together. Nothing is returned unless every step succeeds.
func LoadDataset(catalogPath, matrixPath string) (*catalog.Dataset, error) {
	entries, err := readCatalog(catalogPath)
	if err != nil {
		return nil, err
	}
	rows, err := readMatrix(matrixPath)
	if err != nil {
		return nil, err
	}

	c, err := catalog.NewCatalog(entries)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	m, err := catalog.NewMatrix(rows)
	if err != nil {
		return nil, fmt.Errorf("build matrix: %w", err)
	}
	return catalog.NewDataset(c, m)
}

// Load ensures both artifacts are on disk, then decodes them.
func (f *Fetcher) Load(ctx context.Context, src Sources) (*catalog.Dataset, error) {
	if _, err := f.Ensure(ctx, "catalog", src.CatalogURL, src.CatalogPath); err != nil {
		return nil, err
	}
	if _, err := f.Ensure(ctx, "matrix", src.MatrixURL, src.MatrixPath); err != nil {
		return nil, err
	}

	ds, err := LoadDataset(src.CatalogPath, src.MatrixPath)
	if err != nil {
		return nil, err
	}

	f.logger.Info().
		Int("entries", ds.Size()).
		Int("duplicate_titles", ds.Catalog().DuplicateTitles()).
		Msg("Dataset loaded")
	return ds, nil
}

func readCatalog(path string) ([]catalog.Entry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	//nolint:gosec // path comes from operator configuration
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	entries, err := DecodeCatalog(file, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return entries, nil
}

func readMatrix(path string) ([][]float64, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("matrix %s: %w", path, err)
	}
	//nolint:gosec // path comes from operator configuration
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matrix: %w", err)
	}
	defer file.Close()

	rows, err := DecodeMatrix(file, format)
	if err != nil {
		return nil, fmt.Errorf("matrix %s: %w", path, err)
	}
	return rows, nil
}
