package parser

import (
	"fmt"
	"time"
)

// Level classifies a record severity.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	LevelCritical
	LevelUnknown
)

// String methods for Level
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Severity is a closed Level plus the original text for values outside
// the known set, so tabular and fallback input round-trips untouched.
type Severity struct {
	Level Level
	Raw   string // original text, set only for LevelUnknown
}

// ParseSeverity maps the canonical level names onto the closed set.
// Matching is exact: anything else, including case variants, is carried
// through as an unknown severity with its text preserved.
func ParseSeverity(s string) Severity {
	switch s {
	case "INFO":
		return Severity{Level: LevelInfo}
	case "WARNING":
		return Severity{Level: LevelWarning}
	case "ERROR":
		return Severity{Level: LevelError}
	case "CRITICAL":
		return Severity{Level: LevelCritical}
	default:
		return Severity{Level: LevelUnknown, Raw: s}
	}
}

func (s Severity) String() string {
	if s.Level == LevelUnknown {
		return s.Raw
	}
	return s.Level.String()
}

// IsError reports whether the severity counts toward the error rate.
func (s Severity) IsError() bool {
	return s.Level == LevelError || s.Level == LevelCritical
}

// timestampLayouts are the recognized record timestamp forms, tried in
// order. time.Parse also accepts a fractional second after the seconds
// field when the layout omits one, which covers the sub-second variant
// of the first layout.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
}

// Timestamp carries a record's original timestamp text alongside its
// parsed instant. Raw is authoritative for display and round-trips
// verbatim; Time is the zero value when no known layout matched.
type Timestamp struct {
	Time time.Time
	Raw  string
}

// NewTimestamp parses raw once, at construction. Consumers that need
// chronological comparison use Time; everything else renders Raw.
func NewTimestamp(raw string) Timestamp {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Timestamp{Time: t, Raw: raw}
		}
	}
	return Timestamp{Raw: raw}
}

// Valid reports whether the timestamp parsed under a known layout.
func (t Timestamp) Valid() bool {
	return !t.Time.IsZero()
}

func (t Timestamp) String() string {
	return t.Raw
}

// Placeholder values for fields absent from tabular input.
const (
	UnknownSource = "unknown"
	NoMessage     = "No message"
)

// Record is the canonical form of one log line. Parsers construct it;
// downstream stages treat it as read-only.
type Record struct {
	Timestamp Timestamp
	Severity  Severity
	Source    string
	Message   string
}

func (r Record) String() string {
	return fmt.Sprintf("[%s] %s - %s: %s", r.Timestamp, r.Severity, r.Source, r.Message)
}
