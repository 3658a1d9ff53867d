// Package differ pairs host and client traces and computes pointwise distances.
//
// Alignment truncates both axes to the shorter side: only the first
// min(len(host), len(client)) blocks are compared, and within each block only
// the first min(len(hostBlock), len(clientBlock)) points. Whatever trails past
// that is left out of every result, so mismatched trace lengths can hide
// trailing divergence. Align reports how much was dropped.
package differ

import (
	"NetSyncDiff/internal/model"
	"math"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b model.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Diff returns the per-timestep pointwise distances between host and client.
// A timestep where either side has no points yields an empty entry.
func Diff(host, client model.Trace) model.DistanceSeries {
	steps := min(len(host), len(client))
	series := make(model.DistanceSeries, steps)
	for i := 0; i < steps; i++ {
		hb, cb := host[i], client[i]
		n := min(len(hb), len(cb))
		dists := make([]float64, n)
		for j := 0; j < n; j++ {
			dists[j] = Distance(hb[j], cb[j])
		}
		series[i] = dists
	}
	return series
}

// Alignment describes what the truncation in Diff keeps and drops.
type Alignment struct {
	Timesteps           int
	DroppedHostBlocks   int
	DroppedClientBlocks int
	DroppedHostPoints   int
	DroppedClientPoints int
}

// Truncated reports whether any host or client data was left out.
func (a Alignment) Truncated() bool {
	return a.DroppedHostBlocks+a.DroppedClientBlocks+a.DroppedHostPoints+a.DroppedClientPoints > 0
}

// Align computes the Alignment Diff would use for host and client. Points in
// dropped blocks are counted in the Dropped*Points fields as well.
func Align(host, client model.Trace) Alignment {
	steps := min(len(host), len(client))
	a := Alignment{
		Timesteps:           steps,
		DroppedHostBlocks:   len(host) - steps,
		DroppedClientBlocks: len(client) - steps,
	}
	for i := 0; i < steps; i++ {
		n := min(len(host[i]), len(client[i]))
		a.DroppedHostPoints += len(host[i]) - n
		a.DroppedClientPoints += len(client[i]) - n
	}
	a.DroppedHostPoints += host[steps:].Points()
	a.DroppedClientPoints += client[steps:].Points()
	return a
}
