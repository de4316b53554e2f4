package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/inputfix/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertContainsAll(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayScanReport_Basic(t *testing.T) {
	ui, buf := newTestSimpleUI()

	report := m.ScanReport{
		Mode: m.ScanBasic,
		Files: []m.FileViolations{
			{File: "a.svelte", Violations: []m.Violation{{Line: 2, Preview: "<input>"}}},
			{File: "b.svelte", Violations: []m.Violation{{Line: 1, Preview: "<input>"}, {Line: 5, Preview: `<input type="text">`}}},
		},
	}

	if err := ui.DisplayScanReport(report); err != nil {
		t.Fatalf("DisplayScanReport() error = %v", err)
	}

	output := buf.String()
	assertContainsAll(t, output,
		"FORM FIELD ACCESSIBILITY SCAN",
		"Files with violations: 2",
		"Inputs missing id/name: 3",
		"📄 a.svelte (1)",
		"   Line 5: <input type=\"text\">",
		"PRIORITY FILES TO FIX",
		"VIOLATIONS",
	)

	// b.svelte has more violations and is listed first in the priority table.
	table := output[strings.Index(output, "PRIORITY FILES TO FIX"):]
	if strings.Index(table, "b.svelte") > strings.Index(table, "a.svelte") {
		t.Fatalf("priority table not sorted by violations:\n%s", table)
	}
}

func TestSimpleUI_DisplayScanReport_Enhanced(t *testing.T) {
	ui, buf := newTestSimpleUI()

	report := m.ScanReport{
		Mode: m.ScanEnhanced,
		Files: []m.FileViolations{
			{File: "login.svelte", Violations: []m.Violation{
				{Line: 3, Preview: `<input type="password" id="pw">`, Issues: []m.Issue{m.IssueMissingName, m.MissingAutocomplete("password")}},
				{Line: 7, Preview: `<input>`, Issues: []m.Issue{m.IssueMissingIDAndName}},
			}},
		},
	}

	if err := ui.DisplayScanReport(report); err != nil {
		t.Fatalf("DisplayScanReport() error = %v", err)
	}

	output := buf.String()
	assertContainsAll(t, output,
		"ENHANCED ACCESSIBILITY SCAN",
		"❌ INPUTS MISSING BOTH ID AND NAME",
		"⚠️  INPUTS MISSING NAME ATTRIBUTE",
		"🔒 INPUTS MISSING AUTOCOMPLETE",
		"📄 login.svelte:3",
		"   Type: password",
		"Total violations to fix: 3",
	)

	if strings.Contains(output, "INPUTS MISSING ID ATTRIBUTE") {
		t.Fatalf("empty category should be omitted\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayScanReport_Empty(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplayScanReport(m.ScanReport{Mode: m.ScanBasic}); err != nil {
		t.Fatalf("DisplayScanReport() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "✅ No violations found")

	if strings.Contains(buf.String(), "PRIORITY FILES") {
		t.Fatalf("empty report should not print a priority table")
	}
}

func TestSimpleUI_FixProgress(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayPassStart("BATCH FIX", true)
	ui.DisplayMissing("src/routes/gone.svelte")
	ui.DisplayFileResult(m.FileResult{Path: "blog/+page.svelte", Edits: []m.Edit{
		{Line: 4, Added: []m.Attribute{{Key: "id", Value: "blog-email"}, {Key: "name", Value: "blog-email"}}},
	}})
	ui.DisplayFileResult(m.FileResult{Path: "written.svelte", Written: true, Edits: []m.Edit{{Line: 1}}})
	ui.DisplayFileResult(m.FileResult{Path: "untouched.svelte"})
	ui.DisplayFileError("broken.svelte", errors.New("permission denied"))
	ui.DisplayFixSummary(m.FixSummary{FilesScanned: 4, FilesModified: 2, TagsFixed: 2, Failures: 1, DryRun: true})

	output := buf.String()
	assertContainsAll(t, output,
		"BATCH FIX",
		"(dry run: no files will be written)",
		"⚠️  src/routes/gone.svelte - NOT FOUND",
		"📄 blog/+page.svelte",
		"Line 4: Added id='blog-email' name='blog-email'",
		"🔎 Would fix 1 inputs",
		"✅ Fixed 1 inputs",
		"❌ Error processing broken.svelte: permission denied",
		"FILES SCANNED",
		"DRY RUN",
	)

	if strings.Contains(output, "untouched.svelte") {
		t.Fatalf("unchanged file should not be printed\noutput:\n%s", output)
	}

	if strings.Contains(output, "No violations found") {
		t.Fatalf("summary with fixes should not claim no violations")
	}
}

func TestSimpleUI_FixSummary_Clean(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayFixSummary(m.FixSummary{FilesScanned: 3})

	assertContainsAll(t, buf.String(), "SUMMARY", "✅ No violations found")
}

func TestSimpleUI_ConsoleProgress(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayConsoleStart(2)
	ui.DisplayConsoleResult(m.ConsoleResult{Path: "src/lib/api.ts", Calls: 3, Written: true})
	ui.DisplayConsoleResult(m.ConsoleResult{Path: "src/lib/dry.ts", Calls: 1})
	ui.DisplayConsoleResult(m.ConsoleResult{Path: "src/lib/none.ts"})
	ui.DisplayConsoleSummary(m.ConsoleSummary{FilesFound: 2, FilesFixed: 2, Calls: 4, Failures: 1})

	output := buf.String()
	assertContainsAll(t, output,
		"🎯 Fixing console statements...",
		"Found 2 files with console statements",
		"✓ Fixed: src/lib/api.ts (3 calls)",
		"✓ Would fix: src/lib/dry.ts (1 calls)",
		"✅ Fixed 2 out of 2 files (4 calls)",
		"❌ 1 files failed",
	)

	if strings.Contains(output, "none.ts") {
		t.Fatalf("file without calls should not be printed")
	}
}

func TestDescribeEdit(t *testing.T) {
	got := describeEdit(m.Edit{Line: 12, Added: []m.Attribute{
		{Key: "name", Value: "email"},
		{Key: "autocomplete", Value: "email"},
	}})

	if want := "Line 12: Added name='email' autocomplete='email'"; got != want {
		t.Fatalf("describeEdit() = %q, want %q", got, want)
	}
}
