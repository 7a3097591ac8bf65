// Package results loads benchmark result matrices from CSV or JSON,
// locally or over HTTP. Rows are algorithms, columns are datasets, higher
// score is better.
package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// Set is a results matrix with optional per-row algorithm names.
type Set struct {
	Scores [][]float64 `json:"results"`
	Names  []string    `json:"algorithm_names,omitempty"`
}

// LoadFile reads a results file, dispatching on the extension (.csv or
// .json).
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(strings.NewReader(string(data)))
	case ".json":
		return LoadJSON(data)
	default:
		return nil, fmt.Errorf("unsupported results format %q, want .csv or .json", filepath.Ext(path))
	}
}

// LoadCSV parses one algorithm per row. If the first column is not
// numeric, it is taken as the algorithm name column.
func LoadCSV(r io.Reader) (*Set, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse results csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("results csv is empty")
	}

	// First column is a name column when any of its cells is non-numeric.
	named := false
	for _, rec := range records {
		if len(rec) == 0 {
			return nil, fmt.Errorf("results csv contains an empty row")
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64); err != nil {
			named = true
			break
		}
	}

	set := &Set{Scores: make([][]float64, len(records))}
	if named {
		set.Names = make([]string, len(records))
	}
	for i, rec := range records {
		fields := rec
		if named {
			set.Names[i] = strings.TrimSpace(rec[0])
			fields = rec[1:]
		}
		row := make([]float64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("results csv row %d column %d: %w", i+1, j+1, err)
			}
			row[j] = v
		}
		set.Scores[i] = row
	}
	return set, nil
}

// LoadJSON accepts either a {"results": ..., "algorithm_names": ...}
// document or a bare 2-D array.
func LoadJSON(data []byte) (*Set, error) {
	var set Set
	if err := sonic.Unmarshal(data, &set); err == nil && set.Scores != nil {
		return &set, nil
	}

	var bare [][]float64
	if err := sonic.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parse results json: %w", err)
	}
	return &Set{Scores: bare}, nil
}

// Fetch downloads a JSON results document. The fetch is a single
// deterministic GET; failures surface immediately rather than being
// retried.
func Fetch(url string, timeout time.Duration) (*Set, error) {
	client := resty.New().SetTimeout(timeout)

	resp, err := client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch results: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch results: status %d: %s", resp.StatusCode(), resp.String())
	}

	log.Debug().Str("url", url).Int("bytes", len(resp.Body())).Msg("fetched results document")
	return LoadJSON(resp.Body())
}
