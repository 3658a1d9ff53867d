package statistic

import (
	"NetSyncDiff/internal/model"
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// epsilon is the spacing of float64 values around 1.
const epsilon = 2.220446049250313e-16

// ErrEmptySeries is returned by Describe when there is nothing to describe.
var ErrEmptySeries = errors.New("cannot describe an empty series")

// Describe computes the descriptive statistics of xs.
//
// Variance uses the n-1 denominator. Skewness and kurtosis are the biased
// standardized third and fourth central moments, kurtosis reported as excess
// over the normal distribution. A single sample gives NaN for all three, and a
// series with no spread gives NaN skewness and kurtosis. Spread below the
// rounding error of the mean counts as none.
func Describe(xs []float64) (model.Summary, error) {
	if len(xs) == 0 {
		return model.Summary{}, ErrEmptySeries
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	mean := stat.Mean(xs, nil)
	m2 := stat.Moment(2, xs, nil)
	s := model.Summary{
		Count:    len(xs),
		Min:      floats.Min(xs),
		Max:      floats.Max(xs),
		Mean:     mean,
		Variance: stat.Variance(xs, nil),
		Skewness: stat.Moment(3, xs, nil) / math.Pow(m2, 1.5),
		Kurtosis: stat.Moment(4, xs, nil)/(m2*m2) - 3,
		P01:      stat.Quantile(0.01, stat.Empirical, sorted, nil),
		Median:   median(sorted),
		P99:      stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
	if spread := epsilon * math.Abs(mean); m2 <= spread*spread {
		s.Variance = 0
		s.Skewness = math.NaN()
		s.Kurtosis = math.NaN()
	}
	if len(xs) == 1 {
		s.Variance = math.NaN()
	}
	s.Overall = s.Mean

	return s, nil
}

// median returns the middle of sorted, averaging the two middle values when
// the length is even.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
