package formatter

import (
	"fmt"
	"strings"

	"github.com/loglens/loglens/internal/analyzer"
)

// textFormatter renders the plain text report
type textFormatter struct {
	maxEntries int
}

// NewText creates a new plain text formatter
func NewText(opts Options) Formatter {
	return &textFormatter{maxEntries: opts.maxEntries()}
}

func (f *textFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	sep := strings.Repeat("-", 80)

	b.WriteString(rule + "\n")
	b.WriteString("LogLens Analysis Report\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "Total log entries analyzed: %d\n\n", len(report.Records))

	if report.Alerts != nil {
		b.WriteString("ALERTS:\n")
		b.WriteString(sep + "\n")
		for _, alert := range report.Alerts {
			fmt.Fprintf(&b, "  %s\n", alert)
		}
		b.WriteString("\n")
	}

	if report.Stats != nil {
		f.writeStatistics(&b, sep, report.Stats)
	}

	b.WriteString("LOG ENTRIES:\n")
	b.WriteString(sep + "\n")
	for i, rec := range report.Records {
		if i == f.maxEntries {
			fmt.Fprintf(&b, "... and %d more entries\n", len(report.Records)-f.maxEntries)
			break
		}
		b.WriteString(rec.String() + "\n")
	}

	return []byte(b.String()), nil
}

func (f *textFormatter) writeStatistics(b *strings.Builder, sep string, stats *analyzer.Statistics) {
	b.WriteString("STATISTICS:\n")
	b.WriteString(sep + "\n")

	b.WriteString("Severity Distribution:\n")
	for _, severity := range sortedKeys(stats.SeverityCounts) {
		fmt.Fprintf(b, "  %s: %d\n", severity, stats.SeverityCounts[severity])
	}
	b.WriteString("\n")

	b.WriteString("Source Distribution:\n")
	for _, source := range sortedKeys(stats.SourceCounts) {
		fmt.Fprintf(b, "  %s: %d\n", source, stats.SourceCounts[source])
	}
	b.WriteString("\n")

	b.WriteString("Hour Distribution:\n")
	for _, hour := range sortedHours(stats.HourDistribution) {
		fmt.Fprintf(b, "  %02d:00 - %02d:59: %d\n", hour, hour, stats.HourDistribution[hour])
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "Error Rate: %.2f%%\n\n", stats.ErrorRate)

	b.WriteString("Common Terms:\n")
	for _, tc := range stats.CommonTerms {
		fmt.Fprintf(b, "  %s: %d\n", tc.Term, tc.Count)
	}
	b.WriteString("\n")
}
