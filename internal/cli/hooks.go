package cli

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/stacklint/stacklint/internal/application/queries"
	"github.com/stacklint/stacklint/internal/ui"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks [file]",
	Short: "List all lifecycle hook references",
	Long: `List every hook referenced by a deployments file, with its lifecycle
stage, argument count, and whether the script exists on disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileArg := ""
		if len(args) > 0 {
			fileArg = args[0]
		}

		container, _, err := resolveContainer(fileArg)
		if err != nil {
			return err
		}

		rows, err := container.HooksQueryHandler.Handle(queries.HooksQuery{})
		if err != nil {
			return err
		}

		if len(rows) == 0 {
			ui.Infof("No hooks defined")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Deployment", "Module", "Stage", "Script", "Args", "Found"})

		for _, row := range rows {
			found := ui.Error("✗")
			if row.Found {
				found = ui.Success("✓")
			}
			t.AppendRow(table.Row{row.Deployment, row.Module, string(row.Stage), row.Script, row.Args, found})
		}

		t.Render()
		return nil
	},
}
