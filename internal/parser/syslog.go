package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// syslogPattern: Mar 15 12:34:56 web01 nginx: upstream timed out
var syslogPattern = regexp.MustCompile(`^(\w{3} \d{2} \d{2}:\d{2}:\d{2}) (\S+) ([^:]+): (.+)$`)

const syslogTimeLayout = "2006 Jan 02 15:04:05"

// SyslogParser parses BSD-style syslog lines. The source timestamp
// carries no year, so the current processing year is assumed before
// reformatting; the raw text is kept when that reparse fails. Syslog
// lines have no level field either, so severity is inferred from the
// message content: critical wins over error wins over warning.
type SyslogParser struct {
	now func() time.Time
}

// NewSyslogParser creates a new syslog dialect parser
func NewSyslogParser() *SyslogParser {
	return &SyslogParser{now: time.Now}
}

// Parse parses a single syslog-format line
func (p *SyslogParser) Parse(line string) (*Record, error) {
	m := syslogPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, fmt.Errorf("line does not match syslog format")
	}
	rawTime, service, message := m[1], m[3], m[4]

	timestamp := rawTime
	if t, err := time.Parse(syslogTimeLayout, fmt.Sprintf("%d %s", p.now().Year(), rawTime)); err == nil {
		timestamp = t.Format("2006-01-02 15:04:05")
	}

	level := LevelInfo
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "critical"):
		level = LevelCritical
	case strings.Contains(lower, "error"):
		level = LevelError
	case strings.Contains(lower, "warning"):
		level = LevelWarning
	}

	return &Record{
		Timestamp: NewTimestamp(timestamp),
		Severity:  Severity{Level: level},
		Source:    service,
		Message:   message,
	}, nil
}

// CanParse checks if the line matches the syslog grammar
func (p *SyslogParser) CanParse(line string) bool {
	return syslogPattern.MatchString(strings.TrimSpace(line))
}

// Name returns the dialect name
func (p *SyslogParser) Name() string {
	return "syslog"
}
