package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/stacklint/stacklint/internal/validate"
)

// WriteReport renders a validation report as text, one line per check
// followed by a summary line
func WriteReport(w io.Writer, report *validate.Report) {
	for _, check := range report.Checks {
		fmt.Fprintf(w, "  %s %s\n", checkIcon(check.Severity), check.Message)
	}

	passed, warnings, failed := report.Counts()
	fmt.Fprintf(w, "\n%d passed, %d warning(s), %d failed\n", passed, warnings, failed)
}

func checkIcon(severity validate.Severity) string {
	switch severity {
	case validate.SeverityPass:
		return Colorize("✓", Green)
	case validate.SeverityWarning:
		return Colorize("!", Yellow)
	case validate.SeverityFail:
		return Colorize("✗", Red)
	default:
		return "?"
	}
}

// jsonReport is the machine-readable report shape
type jsonReport struct {
	Passed bool             `json:"passed"`
	Checks []validate.Check `json:"checks"`
}

// WriteReportJSON renders a validation report as JSON for machine
// consumption
func WriteReportJSON(w io.Writer, report *validate.Report) error {
	checks := report.Checks
	if checks == nil {
		checks = []validate.Check{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Passed: report.Passed(),
		Checks: checks,
	})
}
