package model

// Point is a single 2D position sample.
type Point struct {
	X float64
	Y float64
}

// Block holds the points logged during one sampling interval, in log order.
type Block []Point

// Trace is the ordered sequence of blocks parsed from one log source.
type Trace []Block

// Points returns the total number of points across all blocks.
func (t Trace) Points() int {
	n := 0
	for _, b := range t {
		n += len(b)
	}
	return n
}

// DistanceSeries holds, per aligned timestep, the pointwise distances between
// host and client.
type DistanceSeries [][]float64

// AverageSeries holds one mean distance per aligned timestep.
type AverageSeries []float64

// Summary is the descriptive-statistics record derived from an AverageSeries.
type Summary struct {
	Count    int     `json:"nobs"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`

	P01    float64 `json:"p01"`
	Median float64 `json:"median"`
	P99    float64 `json:"p99"`

	// Overall is the mean of the per-timestep averages.
	Overall float64 `json:"overall_average"`
}
