package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stacklint/stacklint/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize global stacklint configuration",
	Long: `Initialize the global stacklint configuration at ~/.stacklint/config.yaml.

This is a one-time setup. The file holds machine-wide defaults: the
deployments file name to search for, the default report format, and
toggles for optional checks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.GlobalConfigExists() && !initForce {
			configPath, _ := config.GetGlobalConfigPath()
			fmt.Printf("Global config already exists at: %s\n", configPath)
			fmt.Println("Use --force to overwrite with defaults.")
			return nil
		}

		var err error
		if initForce {
			err = config.ForceInitGlobalConfig()
		} else {
			err = config.InitGlobalConfig()
		}
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		configPath, _ := config.GetGlobalConfigPath()
		fmt.Printf("Global config initialized at: %s\n", configPath)
		fmt.Println("\nYou can customize this file to set default checks and output format.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing global config with defaults")
	Cmd.AddCommand(initCmd)
}
