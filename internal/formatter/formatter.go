package formatter

import (
	"fmt"

	"github.com/loglens/loglens/internal/analyzer"
	"github.com/loglens/loglens/internal/parser"
)

// DefaultMaxEntries caps the record listing of a report.
const DefaultMaxEntries = 100

// Report bundles everything the renderers consume.
type Report struct {
	Records []*parser.Record
	Stats   *analyzer.Statistics // nil unless statistics were requested
	Alerts  []string             // nil when no alerts fired
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// Options configures report rendering.
type Options struct {
	Color      bool // colored output for the terminal formatter
	MaxEntries int  // record listing cap; DefaultMaxEntries when zero
}

func (o Options) maxEntries() int {
	if o.MaxEntries <= 0 {
		return DefaultMaxEntries
	}
	return o.MaxEntries
}

// New returns the formatter for the named output format.
func New(format string, opts Options) (Formatter, error) {
	switch format {
	case "text":
		return NewText(opts), nil
	case "csv":
		return NewCSV(opts), nil
	case "json":
		return NewJSON(), nil
	case "terminal":
		return NewTerminal(opts), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
