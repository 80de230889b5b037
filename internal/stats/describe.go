package stats

import (
	"math"
	"sort"
)

// Summary is a snapshot of descriptive statistics over a fixed value
// sequence. All fields are full-precision; truncation to whole ruble
// amounts is a presentation concern.
type Summary struct {
	Count    int     `json:"count"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Range    float64 `json:"range"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stdev"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	IQR      float64 `json:"iqr"`
}

// Describe computes descriptive statistics over values. Variance is the
// population variance (divisor n, not n-1). Returns ErrEmptyInput on an
// empty sequence; it never returns a partially populated summary.
func Describe(values []float64) (Summary, error) {
	n := len(values)
	if n == 0 {
		return Summary{}, ErrEmptyInput
	}

	s := append([]float64(nil), values...)
	sort.Float64s(s)

	var sum float64
	for _, v := range s {
		sum += v
	}
	mean := sum / float64(n)

	var sumsq float64
	for _, v := range s {
		d := v - mean
		sumsq += d * d
	}
	variance := sumsq / float64(n)

	q1 := quantileSorted(s, 0.25)
	median := quantileSorted(s, 0.5)
	q3 := quantileSorted(s, 0.75)

	return Summary{
		Count:    n,
		Min:      s[0],
		Max:      s[n-1],
		Range:    s[n-1] - s[0],
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Q1:       q1,
		Median:   median,
		Q3:       q3,
		IQR:      q3 - q1,
	}, nil
}

// Flat returns the summary as a flat key-to-number mapping, the shape
// the persistence collaborator serializes.
func (s Summary) Flat() map[string]float64 {
	return map[string]float64{
		"count":    float64(s.Count),
		"min":      s.Min,
		"max":      s.Max,
		"range":    s.Range,
		"mean":     s.Mean,
		"variance": s.Variance,
		"stdev":    s.StdDev,
		"q1":       s.Q1,
		"median":   s.Median,
		"q3":       s.Q3,
		"iqr":      s.IQR,
	}
}
