package model

import "io"

// Writer defines a generic interface for rendering a summary report.
type Writer interface {
	// Write renders the summary to out.
	Write(out io.Writer, summary Summary) error

	// Name returns the format name the writer was registered under.
	Name() string
}
