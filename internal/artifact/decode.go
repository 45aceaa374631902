// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package artifact

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Format identifies an artifact encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for an unrecognized file extension.
var ErrUnsupportedFormat = errors.New("unsupported artifact format")

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// DecodeCatalog reads catalog entries in the given format.
func DecodeCatalog(r io.Reader, format Format) ([]catalog.Entry, error) {
	switch format {
	case FormatJSON:
		var entries []catalog.Entry
		if err := json.NewDecoder(r).Decode(&entries); err != nil {
			return nil, fmt.Errorf("decode catalog JSON: %w", err)
		}
		return entries, nil
	case FormatCSV:
		return decodeCatalogCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func decodeCatalogCSV(r io.Reader) ([]catalog.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	idCol, titleCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "movie_id":
			idCol = i
		case "title":
			titleCol = i
		}
	}
	if idCol < 0 || titleCol < 0 {
		return nil, fmt.Errorf("catalog header %v: missing movie_id or title column", header)
	}

	var entries []catalog.Entry
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog line %d: %w", line, err)
		}
		if idCol >= len(rec) || titleCol >= len(rec) {
			return nil, fmt.Errorf("catalog line %d: expected at least %d fields, got %d",
				line, max(idCol, titleCol)+1, len(rec))
		}

		id, err := parseID(rec[idCol])
		if err != nil {
			return nil, fmt.Errorf("catalog line %d: %w", line, err)
		}
		entries = append(entries, catalog.Entry{ID: id, Title: rec[titleCol]})
	}
	return entries, nil
}

// parseID accepts integral values written as floats ("19995.0"), which is
// how some dataframe exporters emit integer columns.
func parseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.Atoi(s); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid movie_id %q", s)
	}
	return int(f), nil
}

// DecodeMatrix reads a square similarity matrix in the given format.
// Row lengths are checked by catalog.NewMatrix, not here.
func DecodeMatrix(r io.Reader, format Format) ([][]float64, error) {
	switch format {
	case FormatJSON:
		var rows [][]float64
		if err := json.NewDecoder(r).Decode(&rows); err != nil {
			return nil, fmt.Errorf("decode matrix JSON: %w", err)
		}
		return rows, nil
	case FormatCSV:
		return decodeMatrixCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func decodeMatrixCSV(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var rows [][]float64
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read matrix line %d: %w", line, err)
		}

		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("matrix line %d column %d: %w", line, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
