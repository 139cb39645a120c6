package configcmd

import "github.com/spf13/cobra"

// Cmd is the parent command for configuration management
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stacklint configuration",
	Long: `Commands for managing the global stacklint configuration.

Examples:
  stacklint config init    Initialize global config (~/.stacklint/)
  stacklint config show    Show global configuration and resolved file`,
}
