package report

import (
	"NetSyncDiff/internal/model"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

func init() {
	RegisterWriter("json", func() model.Writer { return &JSONWriter{} })
}

// jsonSummary mirrors model.Summary with undefined statistics encoded as null.
type jsonSummary struct {
	Count    int      `json:"nobs"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Mean     *float64 `json:"mean"`
	Variance *float64 `json:"variance"`
	Skewness *float64 `json:"skewness"`
	Kurtosis *float64 `json:"kurtosis"`
	P01      *float64 `json:"p01"`
	Median   *float64 `json:"median"`
	P99      *float64 `json:"p99"`
	Overall  *float64 `json:"overall_average"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// JSONWriter encodes the summary as an indented JSON object.
type JSONWriter struct{}

func (w *JSONWriter) Name() string {
	return "json"
}

func (w *JSONWriter) Write(out io.Writer, s model.Summary) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Marshalable(s)); err != nil {
		return fmt.Errorf("failed to encode summary to json: %w", err)
	}
	return nil
}

// Marshalable returns a JSON-safe view of s.
func Marshalable(s model.Summary) any {
	return jsonSummary{
		Count:    s.Count,
		Min:      finite(s.Min),
		Max:      finite(s.Max),
		Mean:     finite(s.Mean),
		Variance: finite(s.Variance),
		Skewness: finite(s.Skewness),
		Kurtosis: finite(s.Kurtosis),
		P01:      finite(s.P01),
		Median:   finite(s.Median),
		P99:      finite(s.P99),
		Overall:  finite(s.Overall),
	}
}
