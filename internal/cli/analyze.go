package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/loglens/loglens/internal/analyzer"
	"github.com/loglens/loglens/internal/config"
	"github.com/loglens/loglens/internal/formatter"
	"github.com/loglens/loglens/internal/logger"
	"github.com/loglens/loglens/internal/parser"
)

var (
	analyzeDateRange  string
	analyzeSeverity   string
	analyzePattern    string
	analyzeStats      bool
	analyzeAlerts     bool
	analyzeThreshold  float64
	analyzeOutputFile string
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a log file",
		Long: `Analyze a log file: ingest and normalize its lines, apply the requested
filters, and render the records with optional statistics and alerts.

Filters apply in date-range, severity, pattern order. The dialect is
detected from the first line only.

Examples:
  loglens analyze app.log
  loglens analyze --date-range 2024-01-01:2024-01-31 app.log
  loglens analyze --severity ERROR --stats app.log
  loglens analyze --pattern 'timeout|refused' access.log
  loglens analyze --stats --alerts --threshold 10 app.log
  loglens analyze -o json --output-file report.json app.log`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeDateRange, "date-range", "d", "", "filter by date range (YYYY-MM-DD:YYYY-MM-DD)")
	cmd.Flags().StringVarP(&analyzeSeverity, "severity", "s", "", "filter by severity level (e.g. INFO, WARNING, ERROR, CRITICAL)")
	cmd.Flags().StringVarP(&analyzePattern, "pattern", "p", "", "filter by regex pattern over messages")
	cmd.Flags().BoolVar(&analyzeStats, "stats", false, "include aggregate statistics")
	cmd.Flags().BoolVar(&analyzeAlerts, "alerts", false, "evaluate error-rate alerts")
	cmd.Flags().Float64Var(&analyzeThreshold, "threshold", 0, "alert threshold percentage (default from config)")
	cmd.Flags().StringVar(&analyzeOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	log := logger.NewWithCallback("analyze", isVerbose)

	records, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}
	log.Debug("ingested %d records from %s", len(records), args[0])

	if analyzeDateRange != "" {
		start, end, err := splitDateRange(analyzeDateRange)
		if err != nil {
			return err
		}
		if records, err = analyzer.FilterByDate(records, start, end); err != nil {
			return err
		}
		log.Debug("date filter kept %d records", len(records))
	}
	if analyzeSeverity != "" {
		records = analyzer.FilterBySeverity(records, analyzeSeverity)
		log.Debug("severity filter kept %d records", len(records))
	}
	if analyzePattern != "" {
		if records, err = analyzer.FilterByPattern(records, analyzePattern); err != nil {
			return err
		}
		log.Debug("pattern filter kept %d records", len(records))
	}

	report := &formatter.Report{Records: records}
	if analyzeStats {
		report.Stats = analyzer.Compute(records)
	}
	if analyzeAlerts {
		threshold := analyzeThreshold
		if !cmd.Flag("threshold").Changed {
			threshold = cfg.Alerts.DefaultThreshold
		}
		report.Alerts = analyzer.CheckAlerts(records, threshold)
	}

	f, err := formatter.New(resolveOutputFormat(cfg), formatter.Options{
		Color:      useColor(cfg),
		MaxEntries: cfg.Output.MaxEntries,
	})
	if err != nil {
		return err
	}
	output, err := f.Format(report)
	if err != nil {
		return err
	}

	return writeOutput(output, analyzeOutputFile)
}

// splitDateRange splits a YYYY-MM-DD:YYYY-MM-DD range into its bounds.
func splitDateRange(s string) (start, end string, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q, use YYYY-MM-DD:YYYY-MM-DD", analyzer.ErrInvalidDateRange, s)
	}
	return parts[0], parts[1], nil
}

func resolveOutputFormat(cfg *config.Config) string {
	if outputFmt != "" {
		return outputFmt
	}
	return cfg.Output.DefaultFormat
}

func useColor(cfg *config.Config) bool {
	if noColor {
		return false
	}
	switch cfg.Output.ColorMode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		return analyzeOutputFile == "" && isatty.IsTerminal(os.Stdout.Fd())
	}
}

func writeOutput(output []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(output)
		return err
	}
	if err := os.WriteFile(path, output, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
