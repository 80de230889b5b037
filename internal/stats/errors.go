package stats

import "errors"

var (
	// ErrEmptyInput is returned when statistics are requested over zero
	// values. Callers should treat it as "insufficient data" and skip
	// presentation for the query rather than defaulting to zeros.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrInvalidQuantile is returned when the probability argument is
	// outside [0, 1].
	ErrInvalidQuantile = errors.New("stats: quantile out of range")

	// ErrDegenerateRange is returned when a histogram is requested over
	// a constant-valued sequence, which would produce zero-width bins.
	ErrDegenerateRange = errors.New("stats: degenerate value range")
)
