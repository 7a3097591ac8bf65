// Package tukey provides upper critical values of the Studentized range
// distribution, the q statistic used by Tukey's HSD and the Nemenyi
// post-hoc test. Values come from the classical printed tables; degrees of
// freedom between tabulated rows are linearly interpolated.
package tukey

import (
	"errors"
	"fmt"
)

// ErrTableRange is returned when no critical value is tabulated for the
// requested (k, df, alpha) combination.
var ErrTableRange = errors.New("studentized range table lookup failed")

const (
	minGroups = 2
	maxGroups = 10
)

// CriticalValue returns q(alpha; k, df), the upper critical value of the
// Studentized range distribution for k groups and df degrees of freedom.
//
// Supported inputs: alpha in {0.05, 0.01}, k in [2, 10], df >= 1. For df
// beyond the last tabulated row the value is interpolated in 1/df towards
// the asymptotic row, so large-df lookups approach the df=inf quantile.
func CriticalValue(k, df int, alpha float64) (float64, error) {
	var table [][]float64
	switch alpha {
	case 0.05:
		table = q005
	case 0.01:
		table = q001
	default:
		return 0, fmt.Errorf("%w: alpha must be 0.01 or 0.05, got %v", ErrTableRange, alpha)
	}
	if k < minGroups || k > maxGroups {
		return 0, fmt.Errorf("%w: k must be in [%d, %d], got %d", ErrTableRange, minGroups, maxGroups, k)
	}
	if df < 1 {
		return 0, fmt.Errorf("%w: df must be >= 1, got %d", ErrTableRange, df)
	}

	col := k - minGroups
	d := float64(df)

	lastDF := tableDF[len(tableDF)-1]
	if d > lastDF {
		// Interpolate in 1/df between the last finite row and the
		// asymptotic row: q -> qInf as df -> inf.
		qLast := table[len(tableDF)-1][col]
		qInf := table[len(table)-1][col]
		return qInf + (qLast-qInf)*(lastDF/d), nil
	}

	// Find the bracketing tabulated rows.
	hi := 0
	for hi < len(tableDF) && tableDF[hi] < d {
		hi++
	}
	if tableDF[hi] == d {
		return table[hi][col], nil
	}
	lo := hi - 1
	frac := (d - tableDF[lo]) / (tableDF[hi] - tableDF[lo])
	return table[lo][col] + frac*(table[hi][col]-table[lo][col]), nil
}
