package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/inputfix/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScanReport prints the scan report as plain text.
func (s *SimpleUI) DisplayScanReport(report m.ScanReport) error {
	s.printf("%s", renderScanReport(report, plainStyles()))

	return nil
}

// DisplayReportSaved tells where the report was written.
func (s *SimpleUI) DisplayReportSaved(path m.Path) {
	s.printf("\n📝 Full report saved to: %s\n", path)
}

// DisplayPassStart prints the banner of a patching pass.
func (s *SimpleUI) DisplayPassStart(title string, dryRun bool) {
	s.printf("%s\n%s\n", rule, title)

	if dryRun {
		s.printf("(dry run: no files will be written)\n")
	}

	s.printf("%s\n", rule)
}

// DisplayMissing reports an explicit path that does not exist.
func (s *SimpleUI) DisplayMissing(path m.Path) {
	s.printf("\n⚠️  %s - NOT FOUND\n", path)
}

// DisplayFileResult prints the edits made to one file.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	if !result.Changed() {
		return
	}

	s.printf("\n📄 %s\n", result.Path)

	for _, edit := range result.Edits {
		s.printf("  %s\n", describeEdit(edit))
	}

	if result.Written {
		s.printf("   ✅ Fixed %d inputs\n", len(result.Edits))
	} else {
		s.printf("   🔎 Would fix %d inputs\n", len(result.Edits))
	}
}

// DisplayFileError reports a file that could not be processed.
func (s *SimpleUI) DisplayFileError(path m.Path, err error) {
	s.printf("❌ Error processing %s: %v\n", path, err)
}

// DisplayFixSummary prints the totals of a patching pass.
func (s *SimpleUI) DisplayFixSummary(summary m.FixSummary) {
	s.printf("\n%s\nSUMMARY\n%s\n", rule, rule)
	s.printf("\n%s", fixSummaryTable(summary))

	if summary.TagsFixed == 0 && summary.Failures == 0 {
		s.printf("\n✅ No violations found - all inputs already have the required attributes\n")
	}
}

// DisplayConsoleStart announces how many files will be rewritten.
func (s *SimpleUI) DisplayConsoleStart(files int) {
	s.printf("🎯 Fixing console statements...\n%s\n", rule[:60])
	s.printf("Found %d files with console statements\n\n", files)
}

// DisplayConsoleResult prints one rewritten file.
func (s *SimpleUI) DisplayConsoleResult(result m.ConsoleResult) {
	if result.Calls == 0 {
		return
	}

	verb := "Fixed"
	if !result.Written {
		verb = "Would fix"
	}

	s.printf("✓ %s: %s (%d calls)\n", verb, result.Path, result.Calls)
}

// DisplayConsoleSummary prints the totals of a console rewriting run.
func (s *SimpleUI) DisplayConsoleSummary(summary m.ConsoleSummary) {
	s.printf("\n%s\n", rule[:60])
	s.printf("✅ Fixed %d out of %d files (%d calls)\n", summary.FilesFixed, summary.FilesFound, summary.Calls)

	if summary.Failures > 0 {
		s.printf("❌ %d files failed\n", summary.Failures)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func fixSummaryTable(summary m.FixSummary) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Files Scanned", "Files Modified", "Inputs Fixed", "Failures"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})
	table.Append([]string{
		fmt.Sprintf("%d", summary.FilesScanned),
		fmt.Sprintf("%d", summary.FilesModified),
		fmt.Sprintf("%d", summary.TagsFixed),
		fmt.Sprintf("%d", summary.Failures),
	})

	if summary.DryRun {
		table.SetFooter([]string{"", "", "dry run", ""})
	}

	table.Render()

	return buf.String()
}
