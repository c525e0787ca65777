package parser

import "strings"

// parseFallback is the last-resort path: each line is split on
// whitespace, with token 0 as timestamp, token 1 as severity, token 2
// as source, and the remaining tokens rejoined as the message. Lines
// with fewer than four tokens are skipped.
func parseFallback(lines []string) []*Record {
	var records []*Record
	for _, line := range lines {
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}

		records = append(records, &Record{
			Timestamp: NewTimestamp(parts[0]),
			Severity:  ParseSeverity(parts[1]),
			Source:    parts[2],
			Message:   strings.Join(parts[3:], " "),
		})
	}
	return records
}
