package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/loglens/loglens/internal/parser"
)

// topTermCount caps the common-term table.
const topTermCount = 10

// stopWords are removed from the common-term table.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {},
	"but": {}, "is": {}, "are": {}, "was": {}, "were": {},
}

var wordPattern = regexp.MustCompile(`\w+`)

// TermCount is one entry of the common-term table.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Statistics is an aggregate snapshot of a record sequence. Severity
// and source tables key on the rendered field values; the hour
// distribution holds only hours present in the data.
type Statistics struct {
	SeverityCounts   map[string]int `json:"severity_counts"`
	SourceCounts     map[string]int `json:"source_counts"`
	HourDistribution map[int]int    `json:"hour_distribution"`
	ErrorRate        float64        `json:"error_rate"`
	CommonTerms      []TermCount    `json:"common_terms"`
}

// Compute aggregates records into a fresh Statistics snapshot. It is a
// pure function and safe on an empty sequence: zero error rate, empty
// tables. Records with unparsable timestamps are excluded from the
// hour distribution only; they still count everywhere else.
func Compute(records []*parser.Record) *Statistics {
	stats := &Statistics{
		SeverityCounts:   make(map[string]int),
		SourceCounts:     make(map[string]int),
		HourDistribution: make(map[int]int),
		CommonTerms:      []TermCount{},
	}

	errorCount := 0
	termCounts := make(map[string]int)
	var termOrder []string

	for _, rec := range records {
		stats.SeverityCounts[rec.Severity.String()]++
		stats.SourceCounts[rec.Source]++
		if rec.Timestamp.Valid() {
			stats.HourDistribution[rec.Timestamp.Time.Hour()]++
		}
		if rec.Severity.IsError() {
			errorCount++
		}

		for _, word := range wordPattern.FindAllString(strings.ToLower(rec.Message), -1) {
			if _, skip := stopWords[word]; skip {
				continue
			}
			if termCounts[word] == 0 {
				termOrder = append(termOrder, word)
			}
			termCounts[word]++
		}
	}

	if len(records) > 0 {
		stats.ErrorRate = float64(errorCount) / float64(len(records)) * 100
	}
	stats.CommonTerms = topTerms(termCounts, termOrder)

	return stats
}

// topTerms returns the highest-frequency terms. Ties keep the order in
// which terms first appeared in the input.
func topTerms(counts map[string]int, order []string) []TermCount {
	terms := make([]TermCount, 0, len(order))
	for _, term := range order {
		terms = append(terms, TermCount{Term: term, Count: counts[term]})
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Count > terms[j].Count
	})

	if len(terms) > topTermCount {
		terms = terms[:topTermCount]
	}
	return terms
}
