package stats

import "errors"

var (
	// ErrInvalidArgument reports malformed input: an unsupported
	// significance level, a degenerate matrix shape, or too few
	// algorithms/datasets to compare.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateRange reports that every algorithm has the same
	// average rank, so the rank axis has zero visible spread.
	ErrDegenerateRange = errors.New("degenerate rank range")
)
