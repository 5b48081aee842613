package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/reviewcheck/pkg/reviewcheck/models"
)

// colorizeStatus formats a verdict status with semantic color.
func colorizeStatus(status string) string {
	switch status {
	case models.StatusOK:
		return color.New(color.FgGreen).Sprint(status)
	case models.StatusInconsistent:
		return color.New(color.FgRed).Sprint(status)
	default:
		return color.New(color.FgYellow).Sprint(status)
	}
}

// PrintVerdicts writes one line per project verdict to w.
func PrintVerdicts(w io.Writer, verdicts []models.Verdict) {
	for _, v := range verdicts {
		line := fmt.Sprintf("%s: %s", v.ProjectKey, colorizeStatus(v.Status))
		if len(v.Warnings) > 0 {
			line += " (" + strings.Join(v.Warnings, "; ") + ")"
		}
		fmt.Fprintln(w, line)
	}
}

// PrintSummary writes the closing counts to w.
func PrintSummary(w io.Writer, sum models.Summary) {
	fmt.Fprintf(w, "total projects: %d, complete: %d, checklist only: %d, record only: %d, stamp missing: %d\n",
		sum.Total, sum.Complete, sum.ChecklistOnly, sum.RecordOnly, sum.StampMissing)
}
