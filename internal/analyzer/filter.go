package analyzer

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/loglens/loglens/internal/parser"
)

var (
	// ErrInvalidDateRange reports a malformed date-range bound.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidPattern reports a filter pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid filter pattern")
)

const dateLayout = "2006-01-02"

// FilterByDate keeps records whose timestamp falls within the
// inclusive [start 00:00:00, end 23:59:59] range. Records whose
// timestamps never parsed under a known layout are dropped, not
// reported. Malformed bounds fail before any filtering occurs.
func FilterByDate(records []*parser.Record, start, end string) ([]*parser.Record, error) {
	startTime, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("%w: start %q, use YYYY-MM-DD", ErrInvalidDateRange, start)
	}
	endTime, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("%w: end %q, use YYYY-MM-DD", ErrInvalidDateRange, end)
	}
	// Include the entire end day.
	endTime = endTime.Add(24*time.Hour - time.Second)

	var filtered []*parser.Record
	for _, rec := range records {
		if !rec.Timestamp.Valid() {
			continue
		}
		t := rec.Timestamp.Time
		if !t.Before(startTime) && !t.After(endTime) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// FilterBySeverity keeps records whose severity renders exactly equal
// to severity. Unknown severities compare by their original text.
func FilterBySeverity(records []*parser.Record, severity string) []*parser.Record {
	var filtered []*parser.Record
	for _, rec := range records {
		if rec.Severity.String() == severity {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// FilterByPattern keeps records whose message contains a match for the
// regular expression pattern. A pattern that does not compile fails
// the whole call; no partial filtering occurs.
func FilterByPattern(records []*parser.Record, pattern string) ([]*parser.Record, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	var filtered []*parser.Record
	for _, rec := range records {
		if re.MatchString(rec.Message) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}
