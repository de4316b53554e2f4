package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/inputfix/internal/model"
)

const priorityCount = 10

var rule = strings.Repeat("=", 80)

// reportStyles decorates the pieces of a rendered scan report.
type reportStyles struct {
	heading func(string) string
	file    func(string) string
	accent  func(string) string
	muted   func(string) string
}

func plainStyles() reportStyles {
	same := func(s string) string { return s }

	return reportStyles{heading: same, file: same, accent: same, muted: same}
}

// renderScanReport lays out a scan report for the console. Basic reports
// list every file; enhanced reports group violations by category.
func renderScanReport(report m.ScanReport, st reportStyles) string {
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	section := func(title string) {
		line("%s", st.muted(rule))
		line("%s", st.heading(title))
		line("%s", st.muted(rule))
	}

	count := func(n int) string { return st.accent(fmt.Sprintf("%d", n)) }

	if report.Mode == m.ScanEnhanced {
		section("ENHANCED ACCESSIBILITY SCAN")
	} else {
		section("FORM FIELD ACCESSIBILITY SCAN")
	}

	line("")
	line("📊 SUMMARY")
	line("Files with violations: %s", count(len(report.Files)))

	if report.Mode != m.ScanEnhanced {
		line("Inputs missing id/name: %s", count(report.TotalViolations()))
	} else {
		line("Inputs missing id AND name: %s", count(report.CountIssue(m.IssueMissingIDAndName)))
		line("Inputs missing name only: %s", count(report.CountIssue(m.IssueMissingName)))
		line("Inputs missing id only: %s", count(report.CountIssue(m.IssueMissingID)))
		line("Inputs missing autocomplete: %s", count(report.CountAutocomplete()))
	}

	if len(report.Files) == 0 {
		line("")
		line("✅ No violations found")

		return b.String()
	}

	if report.Mode != m.ScanEnhanced {
		line("")

		for _, file := range report.Files {
			line("📄 %s %s", st.file(string(file.File)), st.muted(fmt.Sprintf("(%d)", len(file.Violations))))

			for _, v := range file.Violations {
				line("   Line %d: %s", v.Line, v.Preview)
			}

			line("")
		}
	} else {
		categories := []struct {
			title string
			match func(m.Issue) bool
		}{
			{"❌ INPUTS MISSING BOTH ID AND NAME", func(i m.Issue) bool { return i == m.IssueMissingIDAndName }},
			{"⚠️  INPUTS MISSING NAME ATTRIBUTE", func(i m.Issue) bool { return i == m.IssueMissingName }},
			{"⚠️  INPUTS MISSING ID ATTRIBUTE", func(i m.Issue) bool { return i == m.IssueMissingID }},
			{"🔒 INPUTS MISSING AUTOCOMPLETE", m.Issue.IsAutocomplete},
		}

		total := 0

		for _, category := range categories {
			var entries []string

			for _, file := range report.Files {
				for _, v := range file.Violations {
					for _, issue := range v.Issues {
						if !category.match(issue) {
							continue
						}

						entry := fmt.Sprintf("📄 %s:%d\n", st.file(string(file.File)), v.Line)
						if issue.IsAutocomplete() {
							entry += fmt.Sprintf("   Type: %s\n", issue.FieldType())
						}

						entries = append(entries, entry+"   "+v.Preview)
					}
				}
			}

			if len(entries) == 0 {
				continue
			}

			total += len(entries)

			line("")
			section(category.title)

			for _, entry := range entries {
				line("")
				line("%s", entry)
			}
		}

		line("")
		line("%s", st.muted(rule))
		line("Total violations to fix: %s", count(total))
	}

	line("")
	section("PRIORITY FILES TO FIX")
	b.WriteString(renderPriorityTable(report))

	return b.String()
}

func renderPriorityTable(report m.ScanReport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "File", "Violations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for i, file := range report.Priority(priorityCount) {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			string(file.File),
			fmt.Sprintf("%d", len(file.Violations)),
		})
	}

	table.Render()

	return buf.String()
}

// describeEdit renders the attributes added to one tag.
func describeEdit(edit m.Edit) string {
	parts := make([]string, 0, len(edit.Added))
	for _, attr := range edit.Added {
		parts = append(parts, fmt.Sprintf("%s='%s'", attr.Key, attr.Value))
	}

	return fmt.Sprintf("Line %d: Added %s", edit.Line, strings.Join(parts, " "))
}
