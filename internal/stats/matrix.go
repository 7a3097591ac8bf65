package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatrixFromRows converts a raw 2-D slice into a dense matrix. The slice
// must be non-empty and rectangular.
func MatrixFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: results must be a non-empty 2-D table", ErrInvalidArgument)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: results row %d has %d columns, expected %d", ErrInvalidArgument, i, len(row), cols)
		}
	}

	m := mat.NewDense(len(rows), cols, nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return m, nil
}
