package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/inputfix/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// TUI implements UI with lipgloss styling. Scan reports taller than the
// terminal open in a Bubble Tea pager.
type TUI struct {
	output io.Writer
	// size and runProgram are swapped in tests to avoid taking over the terminal.
	size       func() (width, height int)
	runProgram func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.size = t.terminalSize
	t.runProgram = t.run

	return t
}

// DisplayScanReport renders the report, paging it when it does not fit.
func (t *TUI) DisplayScanReport(report m.ScanReport) error {
	content := renderScanReport(report, tuiStyles())

	width, height := t.size()
	if height <= 0 || strings.Count(content, "\n") < height-pagerFooterHeight {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	return t.runProgram(newReportPagerModel(content, width, height))
}

// DisplayReportSaved tells where the report was written.
func (t *TUI) DisplayReportSaved(path m.Path) {
	t.printf("\n📝 Full report saved to: %s\n", fileStyle.Render(string(path)))
}

// DisplayPassStart prints the banner of a patching pass.
func (t *TUI) DisplayPassStart(title string, dryRun bool) {
	t.printf("%s\n", titleStyle.Render(title))

	if dryRun {
		t.printf("%s\n", mutedStyle.Render("dry run: no files will be written"))
	}
}

// DisplayMissing reports an explicit path that does not exist.
func (t *TUI) DisplayMissing(path m.Path) {
	t.printf("%s %s\n", warnStyle.Render("⚠️  NOT FOUND"), path)
}

// DisplayFileResult prints the edits made to one file.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	if !result.Changed() {
		return
	}

	status := successStyle.Render(fmt.Sprintf("✅ %d fixed", len(result.Edits)))
	if !result.Written {
		status = warnStyle.Render(fmt.Sprintf("🔎 %d to fix", len(result.Edits)))
	}

	t.printf("%s %s\n", status, fileStyle.Render(string(result.Path)))

	for _, edit := range result.Edits {
		t.printf("   %s\n", mutedStyle.Render(describeEdit(edit)))
	}
}

// DisplayFileError reports a file that could not be processed.
func (t *TUI) DisplayFileError(path m.Path, err error) {
	t.printf("%s %s: %v\n", errorStyle.Render("❌"), path, err)
}

// DisplayFixSummary prints the totals of a patching pass.
func (t *TUI) DisplayFixSummary(summary m.FixSummary) {
	t.printf("\n%s\n%s", titleStyle.Render("Summary"), fixSummaryTable(summary))
}

// DisplayConsoleStart announces how many files will be rewritten.
func (t *TUI) DisplayConsoleStart(files int) {
	t.printf("%s %s\n", titleStyle.Render("🎯 Console statements"),
		accentStyle.Render(fmt.Sprintf("%d files", files)))
}

// DisplayConsoleResult prints one rewritten file.
func (t *TUI) DisplayConsoleResult(result m.ConsoleResult) {
	if result.Calls == 0 {
		return
	}

	mark := successStyle.Render("✓")
	if !result.Written {
		mark = warnStyle.Render("~")
	}

	t.printf("%s %s %s\n", mark, fileStyle.Render(string(result.Path)),
		mutedStyle.Render(fmt.Sprintf("(%d calls)", result.Calls)))
}

// DisplayConsoleSummary prints the totals of a console rewriting run.
func (t *TUI) DisplayConsoleSummary(summary m.ConsoleSummary) {
	t.printf("\n%s fixed %s of %s files, %s calls\n",
		successStyle.Render("✅"),
		accentStyle.Render(fmt.Sprintf("%d", summary.FilesFixed)),
		accentStyle.Render(fmt.Sprintf("%d", summary.FilesFound)),
		accentStyle.Render(fmt.Sprintf("%d", summary.Calls)))

	if summary.Failures > 0 {
		t.printf("%s %d files failed\n", errorStyle.Render("❌"), summary.Failures)
	}
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

func (t *TUI) terminalSize() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

func (t *TUI) run(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func tuiStyles() reportStyles {
	return reportStyles{
		heading: func(s string) string { return titleStyle.Render(s) },
		file:    func(s string) string { return fileStyle.Render(s) },
		accent:  func(s string) string { return accentStyle.Render(s) },
		muted:   func(s string) string { return mutedStyle.Render(s) },
	}
}
