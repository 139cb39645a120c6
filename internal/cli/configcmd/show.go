package configcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/stacklint/stacklint/internal/cli/shared"
	"github.com/stacklint/stacklint/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stacklint configuration",
	Long: `Show the global stacklint configuration and the deployments file the
current directory resolves to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showSetupInfo()
	},
}

func init() {
	Cmd.AddCommand(showCmd)
}

func showSetupInfo() error {
	configResolver := shared.ConfigResolver
	if configResolver == nil {
		return fmt.Errorf("config not initialized")
	}

	globalConfigPath, _ := config.GetGlobalConfigPath()

	fmt.Println()
	fmt.Println("  Stacklint Configuration")
	fmt.Println("  " + strings.Repeat("─", 40))
	fmt.Println()
	fmt.Printf("  Global config:    %s", globalConfigPath)
	if !config.GlobalConfigExists() {
		fmt.Print("  (not created, using defaults)")
	}
	fmt.Println()

	// Deployments file resolution is advisory here: not having one is
	// fine when just inspecting settings
	if path, root, err := configResolver.ResolveConfigFile(); err == nil {
		fmt.Printf("  Deployments file: %s\n", path)
		fmt.Printf("  Config root:      %s\n", root)
	} else {
		fmt.Println("  Deployments file: none resolved from current directory")
	}
	fmt.Println()

	if gc := configResolver.GlobalConfig; gc != nil {
		fmt.Println("  Global Settings")
		fmt.Println("  " + strings.Repeat("─", 40))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Setting", "Value"})

		t.AppendRow(table.Row{"default_config_file", gc.DefaultConfigFile})
		t.AppendRow(table.Row{"format", gc.Format})
		t.AppendRow(table.Row{"strict", gc.Strict})
		t.AppendRow(table.Row{"checks.module_paths", gc.Checks.ModulePaths})
		t.AppendRow(table.Row{"checks.hook_exec", gc.Checks.HookExec})

		t.Render()
		fmt.Println()
	}

	return nil
}
