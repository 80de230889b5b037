package stats

import (
	"fmt"
	"math"
	"sort"
)

// Quantile estimates the q-th quantile of values using linear
// interpolation between order statistics (the R type-7 method, matching
// numpy's default). q must be in [0, 1].
func Quantile(values []float64, q float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	if q < 0 || q > 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidQuantile, q)
	}

	s := append([]float64(nil), values...)
	sort.Float64s(s)

	return quantileSorted(s, q), nil
}

// quantileSorted assumes s is non-empty and sorted ascending, with q
// already validated.
func quantileSorted(s []float64, q float64) float64 {
	n := len(s)
	index := float64(n-1) * q
	lower := int(math.Floor(index))
	delta := index - float64(lower)

	if lower+1 < n {
		return s[lower]*(1-delta) + s[lower+1]*delta
	}
	return s[lower]
}
