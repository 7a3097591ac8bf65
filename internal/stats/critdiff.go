package stats

import (
	"fmt"
	"math"

	"github.com/ranklab/critdiff/pkg/tukey"
)

// CriticalDifference computes the Nemenyi critical difference
//
//	CD = q_alpha * sqrt(k*(k+1) / (6*n))
//
// where q_alpha is the Studentized range critical value for k groups and
// k*(n-1) degrees of freedom, divided by sqrt(2). Two average ranks further
// apart than CD differ significantly at level alpha.
//
// alpha must be 0.01 or 0.05. Table lookup failures from the Studentized
// range tables propagate unchanged; retrying cannot help since the lookup
// is deterministic.
func CriticalDifference(alpha float64, numAlgorithms, numDatasets int) (float64, error) {
	if alpha != 0.01 && alpha != 0.05 {
		return 0, fmt.Errorf("%w: alpha must be 0.01 or 0.05, got %v", ErrInvalidArgument, alpha)
	}
	if numAlgorithms < 2 {
		return 0, fmt.Errorf("%w: need at least 2 algorithms to compare, got %d", ErrInvalidArgument, numAlgorithms)
	}
	if numDatasets < 1 {
		return 0, fmt.Errorf("%w: need at least 1 dataset, got %d", ErrInvalidArgument, numDatasets)
	}

	q, err := tukey.CriticalValue(numAlgorithms, numAlgorithms*(numDatasets-1), alpha)
	if err != nil {
		return 0, err
	}
	qAlpha := q / math.Sqrt2

	k := float64(numAlgorithms)
	return qAlpha * math.Sqrt(k*(k+1)/(6*float64(numDatasets))), nil
}
