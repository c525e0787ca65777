package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.loglens.yaml",               // Project-specific config (highest priority)
	"~/.config/loglens/config.yaml", // User config
	"/etc/loglens/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.loglens.yaml
// 4. ~/.config/loglens/config.yaml
// 5. /etc/loglens/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load standard paths lowest priority first so later files
		// override earlier ones.
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			path := expandPath(l.configPaths[i])
			if !fileExists(path) {
				continue
			}
			if err := loadFromFile(config, path); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to load config from %s: %v\n", path, err)
			}
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile merges a YAML file over config. Fields absent from the
// file keep their current values.
func loadFromFile(config *Config, path string) error {
	// #nosec G304 - path comes from the fixed search list or is validated
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// applyEnvOverrides applies LOGLENS_* environment variables over config
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("LOGLENS_OUTPUT_FORMAT"); v != "" {
		config.Output.DefaultFormat = v
	}
	if v := os.Getenv("LOGLENS_COLOR_MODE"); v != "" {
		config.Output.ColorMode = v
	}
	if v := os.Getenv("LOGLENS_VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LOGLENS_VERBOSE: %w", err)
		}
		config.Output.Verbose = verbose
	}
	if v := os.Getenv("LOGLENS_MAX_ENTRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LOGLENS_MAX_ENTRIES: %w", err)
		}
		config.Output.MaxEntries = n
	}
	if v := os.Getenv("LOGLENS_ALERT_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LOGLENS_ALERT_THRESHOLD: %w", err)
		}
		config.Alerts.DefaultThreshold = threshold
	}
	return nil
}

// validateConfigPath rejects paths that are clearly not config files
func validateConfigPath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must be .yaml or .yml, got %q", ext)
	}
	return nil
}

// expandPath expands a leading ~ to the user home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
