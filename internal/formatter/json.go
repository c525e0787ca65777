package formatter

import (
	"encoding/json"

	"github.com/loglens/loglens/internal/analyzer"
)

// jsonFormatter renders the report as indented JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// JSONOutput is the machine-readable report shape.
type JSONOutput struct {
	TotalRecords int                  `json:"total_records"`
	Alerts       []string             `json:"alerts,omitempty"`
	Statistics   *analyzer.Statistics `json:"statistics,omitempty"`
	Records      []JSONRecord         `json:"records"`
}

// JSONRecord is one record rendered for JSON output.
type JSONRecord struct {
	Timestamp string `json:"timestamp"`
	Severity  string `json:"severity"`
	Source    string `json:"source"`
	Message   string `json:"message"`
}

func (f *jsonFormatter) Format(report *Report) ([]byte, error) {
	out := &JSONOutput{
		TotalRecords: len(report.Records),
		Alerts:       report.Alerts,
		Statistics:   report.Stats,
		Records:      make([]JSONRecord, 0, len(report.Records)),
	}

	for _, rec := range report.Records {
		out.Records = append(out.Records, JSONRecord{
			Timestamp: rec.Timestamp.String(),
			Severity:  rec.Severity.String(),
			Source:    rec.Source,
			Message:   rec.Message,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
