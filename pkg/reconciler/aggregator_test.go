package reconciler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{4}, 4},
		{"odd unsorted", []float64{9, 1, 5}, 5},
		{"even rounds half up", []float64{1, 2, 3, 4}, 3},
		{"even exact", []float64{1, 3}, 2},
		{"even pair", []float64{100, 200}, 150},
		{"even half up", []float64{100, 101}, 101},
		{"non-finite ignored", []float64{math.NaN(), 7, math.Inf(1)}, 7},
		{"only non-finite", []float64{math.NaN()}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.values))
		})
	}
}

func TestMedianDoesNotMutate(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMedianOrderIndependent(t *testing.T) {
	a := []float64{10, 40, 20, 30}
	b := []float64{30, 20, 40, 10}
	assert.Equal(t, Median(a), Median(b))
}

func TestMedianAggregator(t *testing.T) {
	var agg Aggregator = MedianAggregator{}
	assert.Equal(t, "median", agg.Name())
	assert.Equal(t, float64(2), agg.Aggregate([]float64{1, 2, 3}))
}

func TestFractionalMedian(t *testing.T) {
	assert.True(t, fractionalMedian([]float64{100, 101}))
	assert.False(t, fractionalMedian([]float64{100, 200}))
	assert.False(t, fractionalMedian([]float64{1, 2, 3}))
	assert.False(t, fractionalMedian(nil))
}
