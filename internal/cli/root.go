package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/loglens/loglens/internal/config"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	outputFmt string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loglens",
		Short: "Log analysis and monitoring tool",
		Long: `LogLens ingests heterogeneous log files, normalizes them into structured
records, and derives filters, aggregate statistics, and threshold alerts.

Supported dialects are auto-detected from the first input line: standard
application logs, Apache combined access logs, and BSD syslog. When the
first line matches none of them, the file is read as delimited text with a
header row, or token-split as a last resort. Detection never looks past
the first line, so a malformed first line sends the whole file down the
fallback path.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadGlobalConfig()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format (text, csv, json, terminal)")

	// Add subcommands
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			fmt.Printf("LogLens %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// loadGlobalConfig loads configuration once per invocation
func loadGlobalConfig() error {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	globalConfig = cfg
	return nil
}

// GetGlobalConfig returns the loaded configuration
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

// Global helpers
func isVerbose() bool {
	if verbose {
		return true
	}
	return GetGlobalConfig().Output.Verbose
}
