package parser

import "fmt"

// Parser defines the interface for dialect parsers
type Parser interface {
	// Parse parses a single log line
	Parse(line string) (*Record, error)

	// CanParse checks if this parser can handle the given line
	CanParse(line string) bool

	// Name returns the dialect name
	Name() string
}

// Format identifies a recognized log dialect.
type Format int

const (
	FormatNone Format = iota
	FormatStandard
	FormatApache
	FormatSyslog
)

func (f Format) String() string {
	switch f {
	case FormatStandard:
		return "standard"
	case FormatApache:
		return "apache"
	case FormatSyslog:
		return "syslog"
	default:
		return "none"
	}
}

// NewParser creates the dialect parser for a detected format.
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatStandard:
		return NewStandardParser(), nil
	case FormatApache:
		return NewApacheParser(), nil
	case FormatSyslog:
		return NewSyslogParser(), nil
	default:
		return nil, fmt.Errorf("no parser for format %q", format)
	}
}
