package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// standardPattern: [2024-01-02 15:04:05] ERROR - api: connection refused
var standardPattern = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\] (\w+) - ([^:]+): (.+)$`)

// StandardParser parses the bracketed application log dialect. All
// four record fields map directly from capture groups; nothing is
// inferred.
type StandardParser struct{}

// NewStandardParser creates a new standard dialect parser
func NewStandardParser() *StandardParser {
	return &StandardParser{}
}

// Parse parses a single standard-format line
func (p *StandardParser) Parse(line string) (*Record, error) {
	m := standardPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, fmt.Errorf("line does not match standard format")
	}

	return &Record{
		Timestamp: NewTimestamp(m[1]),
		Severity:  ParseSeverity(m[2]),
		Source:    m[3],
		Message:   m[4],
	}, nil
}

// CanParse checks if the line matches the standard grammar
func (p *StandardParser) CanParse(line string) bool {
	return standardPattern.MatchString(strings.TrimSpace(line))
}

// Name returns the dialect name
func (p *StandardParser) Name() string {
	return "standard"
}
