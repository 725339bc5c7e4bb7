package reconciler

import (
	"math"
	"slices"

	"github.com/agentstation/petvalues/pkg/constants"
)

// Aggregator reduces the positive values reported for one pet to a single
// value. Its name is recorded as the dataset method.
type Aggregator interface {
	// Name returns the method name written to the dataset
	Name() string

	// Aggregate reduces values to one; an empty input yields 0
	Aggregate(values []float64) float64
}

// MedianAggregator is the default aggregator.
type MedianAggregator struct{}

// Name returns "median".
func (MedianAggregator) Name() string {
	return constants.MethodMedian
}

// Aggregate returns the median of values.
func (MedianAggregator) Aggregate(values []float64) float64 {
	return Median(values)
}

// Median returns the middle of the sorted values. An even count averages
// the two middle values and rounds half up to an integer. Non-finite
// values are ignored and an empty input yields 0. The input is not
// modified.
func Median(values []float64) float64 {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sorted = append(sorted, v)
	}
	if len(sorted) == 0 {
		return 0
	}
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return math.Floor((sorted[mid-1]+sorted[mid])/2 + 0.5)
}

// fractionalMedian reports whether the unrounded even-length median of
// values has a fractional part that Median rounds away.
func fractionalMedian(values []float64) bool {
	if len(values) == 0 || len(values)%2 == 1 {
		return false
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	avg := (sorted[mid-1] + sorted[mid]) / 2
	return avg != math.Trunc(avg)
}
