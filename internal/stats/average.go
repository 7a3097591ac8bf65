package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// AverageRanks returns the per-algorithm mean rank across all datasets,
// one entry per row of the rank matrix, in row order.
func AverageRanks(ranks *mat.Dense) []float64 {
	rows, cols := ranks.Dims()

	avg := make([]float64, rows)
	for rowIdx := 0; rowIdx < rows; rowIdx++ {
		row := mat.Row(nil, rowIdx, ranks)
		avg[rowIdx] = floats.Sum(row) / float64(cols)
	}

	return avg
}
