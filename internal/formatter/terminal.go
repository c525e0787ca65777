package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loglens/loglens/internal/analyzer"
	"github.com/loglens/loglens/internal/parser"
)

// terminalFormatter renders the report for terminal display with
// optional lipgloss coloring. The zero lipgloss.Style renders plain
// text, so the no-color path just leaves every style unset.
type terminalFormatter struct {
	maxEntries int

	title    lipgloss.Style
	section  lipgloss.Style
	alert    lipgloss.Style
	muted    lipgloss.Style
	severity map[parser.Level]lipgloss.Style
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(opts Options) Formatter {
	f := &terminalFormatter{
		maxEntries: opts.maxEntries(),
		severity:   make(map[parser.Level]lipgloss.Style),
	}
	if opts.Color {
		f.title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})
		f.section = lipgloss.NewStyle().Bold(true)
		f.alert = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"})
		f.muted = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"})
		f.severity[parser.LevelWarning] = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})
		f.severity[parser.LevelError] = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"})
		f.severity[parser.LevelCritical] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "125", Dark: "201"})
	}
	return f
}

func (f *terminalFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString(f.title.Render("LogLens Analysis Report") + "\n\n")
	fmt.Fprintf(&b, "Total entries analyzed: %d\n\n", len(report.Records))

	if report.Alerts != nil {
		b.WriteString(f.section.Render("Alerts") + "\n")
		for i, alert := range report.Alerts {
			b.WriteString(treeBranch(i == len(report.Alerts)-1) + f.alert.Render(alert) + "\n")
		}
		b.WriteString("\n")
	}

	if report.Stats != nil {
		f.writeStatistics(&b, report.Stats)
	}

	b.WriteString(f.section.Render("Log Entries") + "\n")
	for i, rec := range report.Records {
		if i == f.maxEntries {
			b.WriteString(f.muted.Render(fmt.Sprintf("... and %d more entries", len(report.Records)-f.maxEntries)) + "\n")
			break
		}
		b.WriteString(f.renderRecord(rec) + "\n")
	}

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeStatistics(b *strings.Builder, stats *analyzer.Statistics) {
	b.WriteString(f.section.Render("Statistics") + "\n")

	for _, severity := range sortedKeys(stats.SeverityCounts) {
		style := f.severity[parser.ParseSeverity(severity).Level]
		fmt.Fprintf(b, "%s%s: %d\n", treeBranch(false), style.Render(severity), stats.SeverityCounts[severity])
	}
	fmt.Fprintf(b, "%sError Rate: %.2f%%\n\n", treeBranch(true), stats.ErrorRate)

	b.WriteString(f.section.Render("Sources") + "\n")
	sources := sortedKeys(stats.SourceCounts)
	for i, source := range sources {
		fmt.Fprintf(b, "%s%s: %d\n", treeBranch(i == len(sources)-1), source, stats.SourceCounts[source])
	}
	b.WriteString("\n")

	if len(stats.HourDistribution) > 0 {
		b.WriteString(f.section.Render("Activity by Hour") + "\n")
		hours := sortedHours(stats.HourDistribution)
		for i, hour := range hours {
			fmt.Fprintf(b, "%s%02d:00: %d\n", treeBranch(i == len(hours)-1), hour, stats.HourDistribution[hour])
		}
		b.WriteString("\n")
	}

	if len(stats.CommonTerms) > 0 {
		b.WriteString(f.section.Render("Common Terms") + "\n")
		for i, tc := range stats.CommonTerms {
			fmt.Fprintf(b, "%s%s (%d)\n", treeBranch(i == len(stats.CommonTerms)-1), tc.Term, tc.Count)
		}
		b.WriteString("\n")
	}
}

func (f *terminalFormatter) renderRecord(rec *parser.Record) string {
	severity := f.severity[rec.Severity.Level].Render(rec.Severity.String())
	return fmt.Sprintf("%s %s - %s: %s",
		f.muted.Render("["+rec.Timestamp.String()+"]"), severity, rec.Source, rec.Message)
}

func treeBranch(last bool) string {
	if last {
		return "└─ "
	}
	return "├─ "
}
