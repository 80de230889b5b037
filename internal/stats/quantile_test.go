package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantileLinearInterpolation(t *testing.T) {
	values := []float64{10, 20, 30, 40}

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{0.25, 17.5},
		{0.5, 25},
		{0.75, 32.5},
		{1, 40},
	}
	for _, tt := range tests {
		got, err := Quantile(values, tt.q)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "q=%v", tt.q)
	}
}

func TestQuantileUnsortedInput(t *testing.T) {
	got, err := Quantile([]float64{40, 10, 30, 20}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 25.0, got)
}

func TestQuantileMedianMatchesOddLength(t *testing.T) {
	// q=0.5 on an odd-length sequence is the middle order statistic.
	got, err := Quantile([]float64{5, 1, 3}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestQuantileSingleValue(t *testing.T) {
	for _, q := range []float64{0, 0.5, 1} {
		got, err := Quantile([]float64{42}, q)
		require.NoError(t, err)
		assert.Equal(t, 42.0, got)
	}
}

func TestQuantileEmptyInput(t *testing.T) {
	_, err := Quantile(nil, 0.5)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestQuantileOutOfRange(t *testing.T) {
	for _, q := range []float64{-0.1, 1.1, 2} {
		_, err := Quantile([]float64{1, 2, 3}, q)
		assert.ErrorIs(t, err, ErrInvalidQuantile, "q=%v", q)
	}
}

func TestQuantileDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := Quantile(values, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}
