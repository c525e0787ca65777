package parser

import (
	"bytes"
	"encoding/csv"
	"slices"
)

// Required and optional header names for the tabular fallback.
// Matching is case-sensitive.
const (
	columnTimestamp = "timestamp"
	columnSeverity  = "severity"
	columnSource    = "source"
	columnMessage   = "message"
)

// parseTabular reads delimited input whose header row has at least four
// columns and names both a timestamp and a severity column. A header
// that does not describe a log table yields zero records and a nil
// error; only a structural csv failure returns an error, which the
// pipeline treats as its cue to fall back to whitespace tokenization.
func parseTabular(data []byte) ([]*Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	// Ragged rows are handled by the per-row length check below, the
	// way lenient csv readers behave.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	if len(header) < 4 {
		return nil, nil
	}
	tsIdx := slices.Index(header, columnTimestamp)
	sevIdx := slices.Index(header, columnSeverity)
	if tsIdx < 0 || sevIdx < 0 {
		return nil, nil
	}
	srcIdx := slices.Index(header, columnSource)
	msgIdx := slices.Index(header, columnMessage)

	// Rows shorter than the required column span are skipped.
	span := max(tsIdx, sevIdx, srcIdx, msgIdx)

	var records []*Record
	for _, row := range rows[1:] {
		if len(row) <= span {
			continue
		}

		source := UnknownSource
		if srcIdx >= 0 {
			source = row[srcIdx]
		}
		message := NoMessage
		if msgIdx >= 0 {
			message = row[msgIdx]
		}

		records = append(records, &Record{
			Timestamp: NewTimestamp(row[tsIdx]),
			Severity:  ParseSeverity(row[sevIdx]),
			Source:    source,
			Message:   message,
		})
	}

	return records, nil
}
