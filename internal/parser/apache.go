package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// apachePattern matches combined access log lines:
// 192.168.1.1 - - [10/Oct/2023:13:55:36 +0000] "GET / HTTP/1.1" 200 1024 "-" "curl/8.0"
var apachePattern = regexp.MustCompile(`^(\S+) \S+ \S+ \[([^]]+)\] "([^"]+)" (\d+) (\d+) "([^"]*)" "([^"]*)"$`)

const apacheTimeLayout = "02/Jan/2006:15:04:05"

// WebServerSource is the fixed source attributed to access log records.
const WebServerSource = "WebServer"

// ApacheParser parses combined access log lines. Access logs carry no
// severity field, so one is derived from the response status: 4xx maps
// to WARNING, 5xx and above to ERROR, everything else to INFO.
type ApacheParser struct{}

// NewApacheParser creates a new apache dialect parser
func NewApacheParser() *ApacheParser {
	return &ApacheParser{}
}

// Parse parses a single combined access log line
func (p *ApacheParser) Parse(line string) (*Record, error) {
	m := apachePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, fmt.Errorf("line does not match apache format")
	}
	rawTime, request, status, size := m[2], m[3], m[4], m[5]

	// The zone offset is dropped before reformatting; the raw text is
	// kept verbatim when the reformat fails. A timestamp quirk never
	// fails the whole line.
	timestamp := rawTime
	if fields := strings.Fields(rawTime); len(fields) > 0 {
		if t, err := time.Parse(apacheTimeLayout, fields[0]); err == nil {
			timestamp = t.Format("2006-01-02 15:04:05")
		}
	}

	level := LevelInfo
	if code, err := strconv.Atoi(status); err == nil {
		switch {
		case code >= 500:
			level = LevelError
		case code >= 400:
			level = LevelWarning
		}
	}

	return &Record{
		Timestamp: NewTimestamp(timestamp),
		Severity:  Severity{Level: level},
		Source:    WebServerSource,
		Message:   fmt.Sprintf("Request: %s, Status: %s, Size: %s", request, status, size),
	}, nil
}

// CanParse checks if the line matches the combined log grammar
func (p *ApacheParser) CanParse(line string) bool {
	return apachePattern.MatchString(strings.TrimSpace(line))
}

// Name returns the dialect name
func (p *ApacheParser) Name() string {
	return "apache"
}
