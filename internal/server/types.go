package server

import "github.com/ranklab/critdiff/internal/layout"

// LayoutRequest asks for a full critical-difference diagram layout.
// Results rows are algorithms, columns are datasets, higher score is
// better. Alpha defaults to 0.05 when omitted.
type LayoutRequest struct {
	Results        [][]float64 `json:"results"`
	Alpha          float64     `json:"alpha,omitempty"`
	AlgorithmNames []string    `json:"algorithm_names,omitempty"`
	TieTolerance   float64     `json:"tie_tolerance,omitempty"`
}

// LayoutResponse carries the layout plus the critical difference and
// sorted average ranks standalone, so callers producing text reports need
// not walk the layout.
type LayoutResponse struct {
	Layout             *layout.DiagramLayout `json:"layout"`
	CriticalDifference float64               `json:"critical_difference"`
	AverageRanks       []float64             `json:"average_ranks"`
}

// RanksRequest asks only for the rank matrix of a results table.
type RanksRequest struct {
	Results      [][]float64 `json:"results"`
	TieTolerance float64     `json:"tie_tolerance,omitempty"`
}

// RanksResponse mirrors the shape of the input: ranks[i][j] is the rank of
// algorithm i on dataset j.
type RanksResponse struct {
	Ranks        [][]float64 `json:"ranks"`
	AverageRanks []float64   `json:"average_ranks"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
