// Package controller provides output adapters for displaying scan reports and
// patching progress.
package controller

import (
	m "github.com/mouse-blink/inputfix/internal/model"
)

// UI defines how the workflow reports to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayScanReport(report m.ScanReport) error
	DisplayReportSaved(path m.Path)

	DisplayPassStart(title string, dryRun bool)
	DisplayMissing(path m.Path)
	DisplayFileResult(result m.FileResult)
	DisplayFileError(path m.Path, err error)
	DisplayFixSummary(summary m.FixSummary)

	DisplayConsoleStart(files int)
	DisplayConsoleResult(result m.ConsoleResult)
	DisplayConsoleSummary(summary m.ConsoleSummary)
}
