package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/inputfix/internal/model"
)

var reportRule = strings.Repeat("=", 80)

// FormatReport renders a scan report as the plain-text violation report.
func FormatReport(report m.ScanReport) string {
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("%s", reportRule)
	line("FORM FIELD ACCESSIBILITY VIOLATIONS REPORT")
	line("%s", reportRule)
	line("")
	line("Scan Mode: %s", report.Mode)
	line("Total Files with Violations: %d", len(report.Files))

	if report.Mode == m.ScanEnhanced {
		line("Inputs Missing id AND name: %d", report.CountIssue(m.IssueMissingIDAndName))
		line("Inputs Missing id Only: %d", report.CountIssue(m.IssueMissingID))
		line("Inputs Missing name Only: %d", report.CountIssue(m.IssueMissingName))
		line("Inputs Missing autocomplete: %d", report.CountAutocomplete())
	} else {
		line("Total Input Fields Missing id/name: %d", report.TotalViolations())
	}

	line("")
	line("%s", reportRule)

	for _, file := range report.Files {
		line("")
		line("📄 %s", file.File)
		line("   Violations: %d", len(file.Violations))
		line("%s", strings.Repeat("-", 80))

		for _, v := range file.Violations {
			line("   Line %d:", v.Line)

			if report.Mode == m.ScanEnhanced {
				line("   Issues: %s", joinIssues(v.Issues))
			}

			line("   %s", v.Preview)
			line("")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func joinIssues(issues []m.Issue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, string(issue))
	}

	return strings.Join(parts, ", ")
}
