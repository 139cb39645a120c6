package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stacklint/stacklint/internal/cli/skills"
	"github.com/stacklint/stacklint/internal/ui"
)

var skillsAssistant string

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage AI assistant skills",
	Long: `Install or remove the stacklint skill for AI coding assistants.

The skill teaches an assistant how to run stacklint and how the
deployments.yaml format works.

Examples:
  stacklint skills install                    Install for all assistants
  stacklint skills install --assistant claude Install for Claude Code only
  stacklint skills status                     Show installation status`,
}

var skillsInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the stacklint skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		assistants, err := selectedAssistants()
		if err != nil {
			return err
		}

		for _, assistant := range assistants {
			if err := skills.Install(assistant); err != nil {
				return fmt.Errorf("failed to install skill for %s: %w", skills.AssistantName(assistant), err)
			}
			ui.Successf("Installed skill for %s", skills.AssistantName(assistant))
		}
		return nil
	},
}

var skillsUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the stacklint skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		assistants, err := selectedAssistants()
		if err != nil {
			return err
		}

		for _, assistant := range assistants {
			if err := skills.Uninstall(assistant); err != nil {
				return fmt.Errorf("failed to uninstall skill for %s: %w", skills.AssistantName(assistant), err)
			}
			ui.Successf("Removed skill for %s", skills.AssistantName(assistant))
		}
		return nil
	},
}

var skillsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show skill installation status",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, assistant := range skills.AllAssistants() {
			state := ui.Warning("not installed")
			if skills.IsInstalled(assistant) {
				state = ui.Success("installed")
			}
			fmt.Printf("  %-12s %s\n", skills.AssistantName(assistant), state)
		}
		return nil
	},
}

func selectedAssistants() ([]skills.AIAssistant, error) {
	switch skillsAssistant {
	case "all", "":
		return skills.AllAssistants(), nil
	case "claude":
		return []skills.AIAssistant{skills.Claude}, nil
	case "cursor":
		return []skills.AIAssistant{skills.Cursor}, nil
	default:
		return nil, fmt.Errorf("unknown assistant: %s (expected claude, cursor, or all)", skillsAssistant)
	}
}

func init() {
	skillsCmd.PersistentFlags().StringVar(&skillsAssistant, "assistant", "all",
		"Target assistant: claude, cursor, or all")
	skillsCmd.AddCommand(skillsInstallCmd)
	skillsCmd.AddCommand(skillsUninstallCmd)
	skillsCmd.AddCommand(skillsStatusCmd)
}
