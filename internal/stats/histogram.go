package stats

import "fmt"

// Histogram partitions a value range into equal-width bins. Edges has
// one more element than Frequencies/Probabilities and is strictly
// increasing.
type Histogram struct {
	Edges         []float64 `json:"edges"`
	Frequencies   []int     `json:"frequencies"`
	Probabilities []float64 `json:"probabilities"`
}

// Bins returns the number of bins.
func (h Histogram) Bins() int {
	return len(h.Frequencies)
}

// Bin builds an equal-width histogram over values. The minimum edge is
// clamped to zero since negative salaries are never expected. Every bin
// is half-open [lo, hi) except the last, which is closed on both ends
// so the maximum value is counted instead of silently dropped.
//
// Returns ErrEmptyInput for an empty sequence and ErrDegenerateRange
// when all values are equal (zero-width bins); callers must special-case
// single-valued distributions themselves.
func Bin(values []float64, nbins int) (Histogram, error) {
	if len(values) == 0 {
		return Histogram{}, ErrEmptyInput
	}
	if nbins < 1 {
		return Histogram{}, fmt.Errorf("stats: bin count must be positive, got %d", nbins)
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if minV < 0 {
		minV = 0
	}
	if maxV <= minV {
		return Histogram{}, fmt.Errorf("%w: all values equal %v", ErrDegenerateRange, minV)
	}

	width := (maxV - minV) / float64(nbins)
	edges := make([]float64, nbins+1)
	for i := range edges {
		edges[i] = minV + float64(i)*width
	}
	// Guard against float drift on the top edge.
	edges[nbins] = maxV

	freqs := make([]int, nbins)
	for _, v := range values {
		for i := 0; i < nbins; i++ {
			last := i == nbins-1
			if v >= edges[i] && (v < edges[i+1] || (last && v == edges[i+1])) {
				freqs[i]++
				break
			}
		}
	}

	probs := make([]float64, nbins)
	for i, f := range freqs {
		probs[i] = float64(f) / float64(len(values))
	}

	return Histogram{Edges: edges, Frequencies: freqs, Probabilities: probs}, nil
}
