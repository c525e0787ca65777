package analyzer

import (
	"fmt"

	"github.com/loglens/loglens/internal/parser"
)

// CheckAlerts evaluates error rates against threshold, a percentage.
// A nil result means no alerts fired; callers rely on that to decide
// whether to render an ALERTS section at all.
//
// The global error rate counts ERROR and CRITICAL records over the
// total. Independently, each source with such records is checked with
// its error count divided by the total record count, not the
// source-local total. Sources are visited in order of their first
// error occurrence in the input.
func CheckAlerts(records []*parser.Record, threshold float64) []string {
	var alerts []string
	total := len(records)

	errorCount := 0
	sourceErrors := make(map[string]int)
	var sourceOrder []string
	for _, rec := range records {
		if !rec.Severity.IsError() {
			continue
		}
		errorCount++
		if sourceErrors[rec.Source] == 0 {
			sourceOrder = append(sourceOrder, rec.Source)
		}
		sourceErrors[rec.Source]++
	}

	errorRate := 0.0
	if total > 0 {
		errorRate = float64(errorCount) / float64(total) * 100
	}
	if errorRate > threshold {
		alerts = append(alerts, fmt.Sprintf(
			"ALERT: Error rate of %.2f%% exceeds threshold of %.2f%%", errorRate, threshold))
	}

	for _, source := range sourceOrder {
		rate := float64(sourceErrors[source]) / float64(total) * 100
		if rate > threshold {
			alerts = append(alerts, fmt.Sprintf(
				"ALERT: Source '%s' has error rate of %.2f%%", source, rate))
		}
	}

	return alerts
}
