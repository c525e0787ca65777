package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrSourceNotFound reports that the ingestion input does not exist.
var ErrSourceNotFound = errors.New("log source not found")

// ParseFile ingests the log file at path and returns its records in
// input order.
func ParseFile(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open log source: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader ingests a line-oriented source to completion and returns
// an ordered record sequence. The dialect is detected from the first
// line only and governs the whole source; when no dialect matches, the
// tabular path is tried, and a structural csv failure drops down to
// whitespace tokenization. Individual malformed lines contribute no
// record and raise no error.
func ParseReader(r io.Reader) ([]*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read log source: %w", err)
	}

	lines, err := splitLines(data)
	if err != nil {
		return nil, fmt.Errorf("scan log source: %w", err)
	}
	if len(lines) == 0 {
		return nil, nil
	}

	if format := DetectFormat(lines[0]); format != FormatNone {
		p, err := NewParser(format)
		if err != nil {
			return nil, err
		}

		records := make([]*Record, 0, len(lines))
		for _, line := range lines {
			rec, err := p.Parse(line)
			if err != nil {
				continue // malformed lines are dropped, not reported
			}
			records = append(records, rec)
		}
		return records, nil
	}

	records, err := parseTabular(data)
	if err != nil {
		return parseFallback(lines), nil
	}
	return records, nil
}

func splitLines(data []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024) // 1MB buffer

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
