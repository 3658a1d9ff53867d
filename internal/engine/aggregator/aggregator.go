package aggregator

import (
	"NetSyncDiff/internal/model"
	"errors"
	"fmt"
)

// ErrEmptyGroup is returned when a mean is requested over no values.
var ErrEmptyGroup = errors.New("mean of empty group")

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyGroup
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), nil
}

// Average reduces each timestep of ds to its mean distance. It fails on the
// first timestep that has no paired points.
func Average(ds model.DistanceSeries) (model.AverageSeries, error) {
	avg := make(model.AverageSeries, len(ds))
	for i, dists := range ds {
		m, err := Mean(dists)
		if err != nil {
			return nil, fmt.Errorf("timestep %d has no aligned points: %w", i, err)
		}
		avg[i] = m
	}
	return avg, nil
}

// Overall returns the mean of the per-timestep averages.
func Overall(avg model.AverageSeries) (float64, error) {
	m, err := Mean(avg)
	if err != nil {
		return 0, fmt.Errorf("no aligned timesteps: %w", err)
	}
	return m, nil
}
