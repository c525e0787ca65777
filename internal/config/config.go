package config

import "fmt"

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	Output  OutputConfig `yaml:"output" json:"output"`
	Alerts  AlertConfig  `yaml:"alerts" json:"alerts"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|csv|json|terminal
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
	MaxEntries    int    `yaml:"max_entries" json:"max_entries"`       // record listing cap per report
}

// AlertConfig configures alert evaluation
type AlertConfig struct {
	DefaultThreshold float64 `yaml:"default_threshold" json:"default_threshold"` // error-rate percentage
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
			MaxEntries:    100,
		},
		Alerts: AlertConfig{
			DefaultThreshold: 5.0,
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case "text", "csv", "json", "terminal":
	default:
		return fmt.Errorf("invalid output format: %s (use text, csv, json, or terminal)", c.Output.DefaultFormat)
	}

	switch c.Output.ColorMode {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode: %s (use auto, always, or never)", c.Output.ColorMode)
	}

	if c.Output.MaxEntries <= 0 {
		return fmt.Errorf("output.max_entries must be positive, got %d", c.Output.MaxEntries)
	}
	if c.Alerts.DefaultThreshold < 0 {
		return fmt.Errorf("alerts.default_threshold must not be negative, got %g", c.Alerts.DefaultThreshold)
	}

	return nil
}

// SampleConfig returns a commented sample configuration file
func SampleConfig() string {
	return `# LogLens configuration file
version: "1.0"

output:
  # Report format: text, csv, json, or terminal
  default_format: text
  # Colored terminal output: auto, always, or never
  color_mode: auto
  # Default verbosity for diagnostics
  verbose: false
  # Maximum records listed per report
  max_entries: 100

alerts:
  # Error-rate percentage used when --threshold is not given
  default_threshold: 5.0
`
}

// MinimalSampleConfig returns a compact sample configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"
output:
  default_format: text
alerts:
  default_threshold: 5.0
`
}
