package viewer

import (
	"NetSyncDiff/internal/model"
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	xAxisName = "timestep"
	yAxisName = "average euclidean difference"
)

// ChartOptions controls the rendered image.
type ChartOptions struct {
	Title  string
	Width  int
	Height int
}

// Render draws avg as a PNG line plot, timestep on X and value on Y.
func Render(avg model.AverageSeries, opts ChartOptions) ([]byte, error) {
	if len(avg) == 0 {
		return nil, errors.New("nothing to plot: empty series")
	}

	xs := make([]float64, len(avg))
	lo, hi := avg[0], avg[0]
	for i, v := range avg {
		xs[i] = float64(i)
		lo = min(lo, v)
		hi = max(hi, v)
	}

	xAxis := chart.XAxis{Name: xAxisName}
	yAxis := chart.YAxis{Name: yAxisName}
	// go-chart refuses zero-width ranges, so pin them for a single timestep or a flat series.
	if len(avg) == 1 {
		xAxis.Range = &chart.ContinuousRange{Min: -1, Max: 1}
	}
	if lo == hi {
		yAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}

	ch := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: xAxis,
		YAxis: yAxis,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    yAxisName,
				XValues: xs,
				YValues: []float64(avg),
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
					DotColor:    chart.ColorBlue,
					DotWidth:    2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
