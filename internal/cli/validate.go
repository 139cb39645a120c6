package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stacklint/stacklint/internal/application/queries"
	"github.com/stacklint/stacklint/internal/application/wiring"
	"github.com/stacklint/stacklint/internal/cli/shared"
	"github.com/stacklint/stacklint/internal/ui"
	"github.com/stacklint/stacklint/internal/validate"
)

var (
	validateFormat       string
	validateStrict       bool
	validateModulePaths  bool
	validateHookExec     bool
	validateWatch        bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a deployments file",
	Long: `Parse a deployments file and report structural problems and
unresolvable hook references.

The exit code is 0 when no check failed. Warnings (empty deployments,
missing hook scripts) do not fail validation unless --strict is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileArg := ""
		if len(args) > 0 {
			fileArg = args[0]
		}

		container, path, err := resolveContainer(fileArg)
		if err != nil {
			return err
		}

		opts, strict, format := validateSettings(cmd)

		if validateWatch {
			return watchAndValidate(container, path, opts, format)
		}

		report, err := container.ValidateQueryHandler.Handle(queries.ValidateQuery{Options: opts})
		if err != nil {
			return err
		}

		if err := renderReport(report, format); err != nil {
			return err
		}

		return reportOutcome(report, strict)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "", "Report format: text or json")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as failures")
	validateCmd.Flags().BoolVar(&validateModulePaths, "check-module-paths", false, "Also check that module directories exist")
	validateCmd.Flags().BoolVar(&validateHookExec, "check-hook-exec", false, "Also warn when hook scripts are not executable")
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false, "Re-validate whenever the file changes")
}

// validateSettings merges flags with global config defaults. A flag set
// on the command line always wins.
func validateSettings(cmd *cobra.Command) (opts validate.Options, strict bool, format string) {
	opts = validate.Options{
		CheckModulePaths: validateModulePaths,
		CheckHookExec:    validateHookExec,
	}
	strict = validateStrict
	format = validateFormat

	if shared.ConfigResolver != nil && shared.ConfigResolver.GlobalConfig != nil {
		gc := shared.ConfigResolver.GlobalConfig
		if !cmd.Flags().Changed("check-module-paths") {
			opts.CheckModulePaths = gc.Checks.ModulePaths
		}
		if !cmd.Flags().Changed("check-hook-exec") {
			opts.CheckHookExec = gc.Checks.HookExec
		}
		if !cmd.Flags().Changed("strict") {
			strict = gc.Strict
		}
		if format == "" {
			format = gc.Format
		}
	}

	if format == "" {
		format = "text"
	}

	return opts, strict, format
}

func renderReport(report *validate.Report, format string) error {
	switch format {
	case "json":
		return ui.WriteReportJSON(os.Stdout, report)
	case "text":
		ui.WriteReport(os.Stdout, report)
		return nil
	default:
		return fmt.Errorf("unknown format: %s (expected text or json)", format)
	}
}

// reportOutcome maps the report to the command's exit status
func reportOutcome(report *validate.Report, strict bool) error {
	_, warnings, failed := report.Counts()

	if failed > 0 {
		return fmt.Errorf("validation failed: %d check(s) failed", failed)
	}

	if strict && warnings > 0 {
		return fmt.Errorf("validation produced %d warning(s) in strict mode", warnings)
	}

	return nil
}

// validateOnce runs a single validation pass and renders the result,
// logging instead of failing so watch mode keeps running
func validateOnce(container *wiring.Container, opts validate.Options, format string) {
	report, err := container.ValidateQueryHandler.Handle(queries.ValidateQuery{Options: opts})
	if err != nil {
		ui.Errorf("%v", err)
		return
	}

	if err := renderReport(report, format); err != nil {
		ui.Errorf("%v", err)
	}
}
