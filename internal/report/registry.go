package report

import (
	"NetSyncDiff/internal/model"
	"fmt"
	"sort"
)

// WriterFactory creates a report writer.
type WriterFactory func() model.Writer

// registry holds the mapping of report formats to their factory functions.
var registry = make(map[string]WriterFactory)

// RegisterWriter registers a report format with its factory function.
func RegisterWriter(name string, factory WriterFactory) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report format '%s' already registered", name))
	}
	registry[name] = factory
}

// NewWriter creates the writer registered for format.
func NewWriter(format string) (model.Writer, error) {
	factory, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("unknown report format: '%s' (known: %v)", format, Formats())
	}
	return factory(), nil
}

// Formats lists the registered report formats.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
