package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/stacklint/stacklint/internal/application/wiring"
	"github.com/stacklint/stacklint/internal/cli/configcmd"
	"github.com/stacklint/stacklint/internal/cli/shared"
	"github.com/stacklint/stacklint/internal/config"
	"github.com/stacklint/stacklint/internal/ui"
)

var (
	// CLI flags
	configFile string
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "stacklint",
	Short: "Stacklint - Deployment configuration linter",
	Long: `Stacklint validates declarative deployment configurations before they
reach the deployment engine: document shape, module definitions, and
referenced lifecycle hook scripts.

Configuration resolution:
  1. File argument or --config flag (explicit path)
  2. STACKLINT_CONFIG environment variable
  3. deployments.yaml in current directory or parents
  4. Fallback: ~/.stacklint/deployments.yaml

Examples:
  stacklint validate              Validate the resolved deployments file
  stacklint validate deploy.yaml  Validate a specific file
  stacklint hooks                 List all lifecycle hook references
  stacklint init                  Create a starter deployments.yaml`,
	Version: "1.0.0",
	// A failed validation is an expected outcome, not a usage mistake
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.SetVerbose(verbose)
		ui.SetColor(!noColor)

		// Skip initialization for help, version, and completion commands
		switch cmd.Name() {
		case "help", "version", "completion":
			return nil
		}

		// The resolver only loads the global config; commands resolve the
		// deployments file themselves when they need one
		var err error
		shared.ConfigResolver, err = config.NewConfigResolver(configFile)
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"Path to deployments file (default: auto-detect deployments.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(hooksCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(configcmd.Cmd)
}

// resolveContainer resolves the deployments file and builds the
// dependency injection container for it. An explicit file argument wins
// over the resolver chain.
func resolveContainer(fileArg string) (*wiring.Container, string, error) {
	if fileArg != "" {
		absPath, err := filepath.Abs(fileArg)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve path: %w", err)
		}
		container, err := wiring.NewContainer(absPath)
		if err != nil {
			return nil, "", err
		}
		return container, absPath, nil
	}

	if shared.ConfigResolver == nil {
		return nil, "", fmt.Errorf("config not initialized")
	}

	path, _, err := shared.ConfigResolver.ResolveConfigFile()
	if err != nil {
		return nil, "", err
	}

	ui.Debug("Using deployments file: %s", path)

	container, err := wiring.NewContainer(path)
	if err != nil {
		return nil, "", err
	}

	return container, path, nil
}
