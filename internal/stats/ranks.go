// Package stats implements the Friedman/Nemenyi average-rank comparison
// engine: per-dataset fractional ranking, the Nemenyi critical difference,
// and the grouping of algorithms that are not significantly different.
package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Ranks computes per-dataset ranks for a results matrix whose rows are
// algorithms and whose columns are datasets. A higher raw score is better
// and receives a lower rank number; rank 1 is the best. Algorithms with
// equal scores in a column share the mean of the positions they occupy
// (the mid-rank). Ties are detected by exact equality; use
// RanksWithTolerance when scores carry floating-point noise.
func Ranks(data *mat.Dense) (*mat.Dense, error) {
	return RanksWithTolerance(data, 0)
}

// RanksWithTolerance is Ranks with an explicit tie tolerance: column values
// within tol of each other are treated as tied.
func RanksWithTolerance(data *mat.Dense, tol float64) (*mat.Dense, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: results matrix is nil", ErrInvalidArgument)
	}
	rows, cols := data.Dims()
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: results matrix must be non-empty, got %dx%d", ErrInvalidArgument, rows, cols)
	}
	if tol < 0 || math.IsNaN(tol) {
		return nil, fmt.Errorf("%w: tie tolerance must be >= 0, got %v", ErrInvalidArgument, tol)
	}

	ranks := mat.NewDense(rows, cols, nil)
	order := make([]int, rows)

	for col := 0; col < cols; col++ {
		scores := mat.Col(nil, col, data)

		// Stable order, best score first.
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return scores[order[a]] > scores[order[b]]
		})

		// Walk tie groups and assign each group the mean of the
		// positions it occupies.
		for lo := 0; lo < rows; {
			hi := lo
			for hi+1 < rows && scores[order[lo]]-scores[order[hi+1]] <= tol {
				hi++
			}
			midRank := 1 + float64(lo+hi)/2
			for t := lo; t <= hi; t++ {
				ranks.Set(order[t], col, midRank)
			}
			lo = hi + 1
		}
	}

	return ranks, nil
}
