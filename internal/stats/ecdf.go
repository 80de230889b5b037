package stats

import "sort"

// ECDF is the empirical cumulative distribution of a value sequence:
// X holds the sorted values, Y[i] = (i+1)/n. Each X[i] is a hard step
// up to Y[i]; no interpolation between points.
type ECDF struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// EmpiricalCDF builds the step-function distribution points for values.
// Returns ErrEmptyInput on an empty sequence.
func EmpiricalCDF(values []float64) (ECDF, error) {
	n := len(values)
	if n == 0 {
		return ECDF{}, ErrEmptyInput
	}

	x := append([]float64(nil), values...)
	sort.Float64s(x)

	y := make([]float64, n)
	for i := range y {
		y[i] = float64(i+1) / float64(n)
	}

	return ECDF{X: x, Y: y}, nil
}
