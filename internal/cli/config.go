package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/loglens/loglens/internal/config"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage LogLens configuration",
		Long: `Manage LogLens configuration files and settings.

The config command provides subcommands for initializing, viewing,
and validating configuration files.`,
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Example: `  # Create full config in current directory
  loglens config init

  # Create minimal config
  loglens config init --minimal

  # Create config at specific path
  loglens config init --output ~/.config/loglens/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = ".loglens.yaml"
			}

			if !force {
				if _, err := os.Stat(outputPath); err == nil {
					return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
				}
			}

			dir := filepath.Dir(outputPath)
			if dir != "." && dir != "/" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			content := config.SampleConfig()
			if minimal {
				content = config.MinimalSampleConfig()
			}

			if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Printf("Created config file at %s\n", outputPath)
			return nil
		},
	}

	initCmd.Flags().StringVar(&outputPath, "output", "", "output path for the config file")
	initCmd.Flags().BoolVar(&minimal, "minimal", false, "create a minimal config")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return initCmd
}

func newConfigShowCommand() *cobra.Command {
	var asJSON bool

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetGlobalConfig()

			var (
				data []byte
				err  error
			)
			if asJSON {
				data, err = json.MarshalIndent(cfg, "", "  ")
			} else {
				data, err = yaml.Marshal(cfg)
			}
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}

			fmt.Print(string(data))
			return nil
		},
	}

	showCmd.Flags().BoolVar(&asJSON, "json", false, "render as JSON instead of YAML")

	return showCmd
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := config.NewLoader().LoadConfig(path); err != nil {
				return err
			}

			if path == "" {
				fmt.Println("Configuration is valid")
			} else {
				fmt.Printf("Configuration at %s is valid\n", path)
			}
			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file search paths",
		Run: func(cmd *cobra.Command, args []string) {
			for _, path := range config.ConfigPaths {
				fmt.Println(path)
			}
		},
	}
}
