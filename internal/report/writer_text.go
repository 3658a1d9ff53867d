package report

import (
	"NetSyncDiff/internal/model"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

func init() {
	RegisterWriter("text", func() model.Writer { return &TextWriter{} })
}

// TextWriter prints the summary in a describe-style table.
type TextWriter struct{}

func (w *TextWriter) Name() string {
	return "text"
}

func (w *TextWriter) Write(out io.Writer, s model.Summary) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRows([]table.Row{
		{"nobs", fmt.Sprintf("%d", s.Count)},
		{"minmax", fmt.Sprintf("(%g, %g)", s.Min, s.Max)},
		{"mean", fmt.Sprintf("%g", s.Mean)},
		{"variance", fmt.Sprintf("%g", s.Variance)},
		{"skewness", fmt.Sprintf("%g", s.Skewness)},
		{"kurtosis", fmt.Sprintf("%g", s.Kurtosis)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"p01", fmt.Sprintf("%g", s.P01)},
		{"median", fmt.Sprintf("%g", s.Median)},
		{"p99", fmt.Sprintf("%g", s.P99)},
		{"overall average", fmt.Sprintf("%g", s.Overall)},
	})

	if _, err := io.WriteString(out, t.Render()+"\n"); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
