package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/loglens/loglens/internal/analyzer"
	"github.com/loglens/loglens/internal/parser"
)

func sampleRecords(n int) []*parser.Record {
	records := make([]*parser.Record, 0, n)
	for i := 0; i < n; i++ {
		severity := "INFO"
		if i%2 == 0 {
			severity = "ERROR"
		}
		records = append(records, &parser.Record{
			Timestamp: parser.NewTimestamp("2024-01-15 10:30:45"),
			Severity:  parser.ParseSeverity(severity),
			Source:    "api",
			Message:   "request handled",
		})
	}
	return records
}

func TestNew(t *testing.T) {
	for _, format := range []string{"text", "csv", "json", "terminal"} {
		if _, err := New(format, Options{}); err != nil {
			t.Errorf("New(%q) error = %v", format, err)
		}
	}

	if _, err := New("xml", Options{}); err == nil {
		t.Error("New should reject unsupported formats")
	}
}

func TestTextFormatter(t *testing.T) {
	t.Run("basic sections", func(t *testing.T) {
		report := &Report{
			Records: sampleRecords(4),
			Stats:   analyzer.Compute(sampleRecords(4)),
		}

		out, err := NewText(Options{}).Format(report)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		text := string(out)

		for _, want := range []string{
			"LogLens Analysis Report",
			"Total log entries analyzed: 4",
			"STATISTICS:",
			"Severity Distribution:",
			"Hour Distribution:",
			"  10:00 - 10:59: 4",
			"Error Rate: 50.00%",
			"LOG ENTRIES:",
			"[2024-01-15 10:30:45] ERROR - api: request handled",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("report missing %q", want)
			}
		}
	})

	t.Run("alerts section only when alerts fired", func(t *testing.T) {
		out, err := NewText(Options{}).Format(&Report{Records: sampleRecords(2)})
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(out), "ALERTS:") {
			t.Error("ALERTS section rendered with nil alerts")
		}

		out, err = NewText(Options{}).Format(&Report{
			Records: sampleRecords(2),
			Alerts:  []string{"ALERT: Error rate of 50.00% exceeds threshold of 10.00%"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(out), "ALERTS:") {
			t.Error("ALERTS section missing")
		}
	})

	t.Run("record listing is capped", func(t *testing.T) {
		out, err := NewText(Options{MaxEntries: 3}).Format(&Report{Records: sampleRecords(5)})
		if err != nil {
			t.Fatal(err)
		}
		text := string(out)

		if got := strings.Count(text, "request handled"); got != 3 {
			t.Errorf("want 3 listed records, got %d", got)
		}
		if !strings.Contains(text, "... and 2 more entries") {
			t.Error("missing truncation trailer")
		}
	})
}

func TestCSVFormatter(t *testing.T) {
	report := &Report{
		Records: sampleRecords(2),
		Stats:   analyzer.Compute(sampleRecords(2)),
		Alerts:  []string{"ALERT: Error rate of 50.00% exceeds threshold of 10.00%"},
	}

	out, err := NewCSV(Options{}).Format(report)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	reader := csv.NewReader(bytes.NewReader(out))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	var sawEntryHeader bool
	for _, row := range rows {
		if len(row) == 4 && row[0] == "Timestamp" && row[3] == "Message" {
			sawEntryHeader = true
		}
	}
	if !sawEntryHeader {
		t.Error("missing log entry header row")
	}
}

func TestJSONFormatter(t *testing.T) {
	report := &Report{
		Records: sampleRecords(3),
		Stats:   analyzer.Compute(sampleRecords(3)),
	}

	out, err := NewJSON().Format(report)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded JSONOutput
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.TotalRecords != 3 {
		t.Errorf("want 3 total records, got %d", decoded.TotalRecords)
	}
	if len(decoded.Records) != 3 {
		t.Errorf("want 3 records, got %d", len(decoded.Records))
	}
	if decoded.Records[0].Severity != "ERROR" {
		t.Errorf("want severity ERROR, got %s", decoded.Records[0].Severity)
	}
	if decoded.Statistics == nil {
		t.Error("statistics missing from JSON output")
	}
	if decoded.Alerts != nil {
		t.Error("alerts should be omitted when none fired")
	}
}

func TestTerminalFormatter(t *testing.T) {
	report := &Report{
		Records: sampleRecords(2),
		Stats:   analyzer.Compute(sampleRecords(2)),
		Alerts:  []string{"ALERT: Error rate of 50.00% exceeds threshold of 10.00%"},
	}

	// Without color the styles are no-ops and the output is plain text.
	out, err := NewTerminal(Options{Color: false}).Format(report)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	text := string(out)

	for _, want := range []string{"LogLens Analysis Report", "Alerts", "Statistics", "Log Entries"} {
		if !strings.Contains(text, want) {
			t.Errorf("terminal report missing %q", want)
		}
	}
	if strings.Contains(text, "\x1b[") {
		t.Error("no-color output should not contain ANSI escapes")
	}
}
