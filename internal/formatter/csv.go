package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/loglens/loglens/internal/analyzer"
)

// csvFormatter renders the report as CSV
type csvFormatter struct {
	maxEntries int
}

// NewCSV creates a new CSV formatter
func NewCSV(opts Options) Formatter {
	return &csvFormatter{maxEntries: opts.maxEntries()}
}

func (f *csvFormatter) Format(report *Report) ([]byte, error) {
	rows := [][]string{
		{"LogLens Analysis Report"},
		{},
		{"Total log entries analyzed", fmt.Sprintf("%d", len(report.Records))},
		{},
	}

	if report.Alerts != nil {
		rows = append(rows, []string{"ALERTS"})
		for _, alert := range report.Alerts {
			rows = append(rows, []string{alert})
		}
		rows = append(rows, []string{})
	}

	if report.Stats != nil {
		rows = append(rows, statisticsRows(report.Stats)...)
	}

	rows = append(rows,
		[]string{"LOG ENTRIES"},
		[]string{"Timestamp", "Severity", "Source", "Message"},
	)
	for i, rec := range report.Records {
		if i == f.maxEntries {
			rows = append(rows, []string{fmt.Sprintf("... and %d more entries", len(report.Records)-f.maxEntries)})
			break
		}
		rows = append(rows, []string{
			rec.Timestamp.String(),
			rec.Severity.String(),
			rec.Source,
			rec.Message,
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	if err := writer.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV report: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

func statisticsRows(stats *analyzer.Statistics) [][]string {
	rows := [][]string{
		{"STATISTICS"},
		{},
		{"Severity Distribution"},
		{"Severity", "Count"},
	}
	for _, severity := range sortedKeys(stats.SeverityCounts) {
		rows = append(rows, []string{severity, fmt.Sprintf("%d", stats.SeverityCounts[severity])})
	}

	rows = append(rows, []string{}, []string{"Source Distribution"}, []string{"Source", "Count"})
	for _, source := range sortedKeys(stats.SourceCounts) {
		rows = append(rows, []string{source, fmt.Sprintf("%d", stats.SourceCounts[source])})
	}

	rows = append(rows, []string{}, []string{"Hour Distribution"}, []string{"Hour", "Count"})
	for _, hour := range sortedHours(stats.HourDistribution) {
		rows = append(rows, []string{
			fmt.Sprintf("%02d:00 - %02d:59", hour, hour),
			fmt.Sprintf("%d", stats.HourDistribution[hour]),
		})
	}

	rows = append(rows, []string{}, []string{"Error Rate", fmt.Sprintf("%.2f%%", stats.ErrorRate)})

	rows = append(rows, []string{}, []string{"Common Terms"}, []string{"Term", "Count"})
	for _, tc := range stats.CommonTerms {
		rows = append(rows, []string{tc.Term, fmt.Sprintf("%d", tc.Count)})
	}
	rows = append(rows, []string{})

	return rows
}
