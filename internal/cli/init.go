package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/stacklint/stacklint/internal/config"
	"github.com/stacklint/stacklint/internal/ui"
)

// starterConfig is the scaffold written by 'stacklint init'
const starterConfig = `version: "1"

deployments:
  - name: main
    modules:
      - path: modules/example
        pre_deploy:
          - path: hooks/check_env.sh
            args:
              environment: staging
        post_deploy:
          - path: hooks/notify.py
`

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter deployments.yaml",
	Long: `Create a deployments.yaml scaffold in the current directory.

The scaffold defines one deployment with one module and example
lifecycle hooks. Edit the module paths and hook scripts to match your
project, then run 'stacklint validate'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		configPath := filepath.Join(wd, config.DefaultConfigFileName)
		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("%s already exists in %s (use --force to overwrite)", config.DefaultConfigFileName, wd)
		}

		if err := os.WriteFile(configPath, []byte(starterConfig), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", config.DefaultConfigFileName, err)
		}

		ui.Successf("Created %s", configPath)
		fmt.Println("\nNext steps:")
		fmt.Println("  1. Edit the module paths and hooks to match your project")
		fmt.Println("  2. Run 'stacklint validate' to check the result")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing deployments.yaml")
}
