// Package domain contains the tag scanning and patching logic and the
// workflow that drives it over a file tree.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/mouse-blink/inputfix/internal/adapter"
	"github.com/mouse-blink/inputfix/internal/controller"
	"github.com/mouse-blink/inputfix/internal/logger"
	m "github.com/mouse-blink/inputfix/internal/model"
)

// Workflow defines the user-facing operations.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	Fix(ctx context.Context, args FixArgs) error
	RewriteConsole(ctx context.Context, args ConsoleArgs) error
	View(ctx context.Context, args ViewArgs) error
}

// SourceArgs selects the files a pass works on.
type SourceArgs struct {
	Paths   []m.Path
	Include []string
	Exclude []string
}

// ScanArgs holds the parameters of a read-only scan.
type ScanArgs struct {
	SourceArgs
	Mode       m.ScanMode
	ReportPath m.Path
	DataPath   m.Path
}

// FixArgs holds the parameters of a patching pass.
type FixArgs struct {
	SourceArgs
	Pass        Pass
	DryRun      bool
	Interactive bool
}

// ConsoleArgs holds the parameters of a console rewriting run. Without
// explicit paths the files come from the lint command's output.
type ConsoleArgs struct {
	SourceArgs
	ProjectRoot  m.Path
	LintCommand  []string
	LoggerImport string
	LoggerModule string
	DryRun       bool
}

// ViewArgs holds the parameters for viewing a saved report.
type ViewArgs struct {
	DataPath m.Path
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.ReportStore
	lint      adapter.LintRunner
	confirm   adapter.Confirmer
	ui        controller.UI
	log       *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.ReportStore,
	lint adapter.LintRunner,
	confirm adapter.Confirmer,
	ui controller.UI,
	log *zap.Logger,
) Workflow {
	if log == nil {
		log = logger.Nop()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		lint:      lint,
		confirm:   confirm,
		ui:        ui,
		log:       log,
	}
}

var passTitles = map[Pass]string{
	PassBatch:      "BATCH FIX: Adding id/name attributes to form fields",
	PassContextual: "COMPREHENSIVE FORM FIELD ACCESSIBILITY FIX: Adding id/name attributes to ALL input fields",
	PassComplete:   "FINAL COMPREHENSIVE ACCESSIBILITY FIX: Adding name and autocomplete attributes",
}

// Scan reports violations and saves the text report and its data.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	scanner, err := NewScanner(args.Mode)
	if err != nil {
		return err
	}

	files, missing, err := w.collect(args.SourceArgs)
	if err != nil {
		return err
	}

	for _, path := range missing {
		w.ui.DisplayMissing(path)
	}

	report := m.ScanReport{Mode: args.Mode}
	if len(args.Paths) > 0 {
		report.Root = args.Paths[0]
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := w.fsAdapter.ReadFile(file.path)
		if err != nil {
			w.fileFailed(file.display, err)
			continue
		}

		violations := scanner.Scan(file.path, string(content))
		if len(violations) == 0 {
			continue
		}

		report.Files = append(report.Files, m.FileViolations{File: file.display, Violations: violations})
	}

	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].File < report.Files[j].File
	})

	w.log.Info("scan finished",
		zap.String("mode", string(args.Mode)),
		zap.Int("files", len(report.Files)),
		zap.Int("violations", report.TotalViolations()),
	)

	if err := w.ui.DisplayScanReport(report); err != nil {
		return err
	}

	if args.ReportPath != "" {
		if err := w.store.SaveText(args.ReportPath, FormatReport(report)); err != nil {
			return err
		}

		w.ui.DisplayReportSaved(args.ReportPath)
	}

	if args.DataPath != "" {
		if err := w.store.SaveReport(args.DataPath, report); err != nil {
			return err
		}
	}

	return nil
}

// Fix runs a patching pass. A file is written only when at least one tag
// changed; a failing file is reported and skipped.
func (w *workflow) Fix(ctx context.Context, args FixArgs) error {
	fixer, err := NewTagFixer(args.Pass)
	if err != nil {
		return err
	}

	files, missing, err := w.collect(args.SourceArgs)
	if err != nil {
		return err
	}

	w.ui.DisplayPassStart(passTitles[args.Pass], args.DryRun)

	summary := m.FixSummary{DryRun: args.DryRun, Missing: len(missing)}

	for _, path := range missing {
		w.log.Warn("path not found", zap.String("path", string(path)))
		w.ui.DisplayMissing(path)
	}

	patcher := NewPatcher(fixer)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		summary.FilesScanned++

		result, err := w.fixFile(patcher, file, args)
		if err != nil {
			summary.Failures++
			w.fileFailed(file.display, err)

			continue
		}

		if !result.Changed() {
			continue
		}

		summary.TagsFixed += len(result.Edits)
		if result.Written || args.DryRun {
			summary.FilesModified++
		}

		w.ui.DisplayFileResult(result)
	}

	w.log.Info("fix finished",
		zap.String("pass", string(args.Pass)),
		zap.Bool("dry_run", args.DryRun),
		zap.Int("files_modified", summary.FilesModified),
		zap.Int("inputs_fixed", summary.TagsFixed),
		zap.Int("failures", summary.Failures),
	)

	w.ui.DisplayFixSummary(summary)

	return nil
}

func (w *workflow) fixFile(patcher *Patcher, file sourceFile, args FixArgs) (m.FileResult, error) {
	result := m.FileResult{Path: file.display}

	content, err := w.fsAdapter.ReadFile(file.path)
	if err != nil {
		return result, err
	}

	patched, edits := patcher.Patch(file.path, string(content))
	if len(edits) == 0 {
		return result, nil
	}

	result.Edits = edits

	if args.DryRun {
		return result, nil
	}

	if args.Interactive {
		ok, err := w.confirm.Confirm(fmt.Sprintf("Apply %d fixes to %s?", len(edits), file.display))
		if err != nil {
			return result, fmt.Errorf("confirm: %w", err)
		}

		if !ok {
			w.log.Info("changes declined", zap.String("path", string(file.path)))
			return m.FileResult{Path: file.display}, nil
		}
	}

	if err := w.writeFile(file.path, patched); err != nil {
		return result, err
	}

	result.Written = true

	return result, nil
}

// RewriteConsole replaces console calls in the files the linter (or the
// caller) points at.
func (w *workflow) RewriteConsole(ctx context.Context, args ConsoleArgs) error {
	files, err := w.consoleFiles(ctx, args)
	if err != nil {
		return err
	}

	rewriter := NewConsoleRewriter(args.LoggerImport, args.LoggerModule)
	summary := m.ConsoleSummary{FilesFound: len(files), DryRun: args.DryRun}

	w.ui.DisplayConsoleStart(len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := w.rewriteConsoleFile(rewriter, file, args.DryRun)
		if err != nil {
			summary.Failures++
			w.fileFailed(file.display, err)

			continue
		}

		if result.Calls == 0 {
			continue
		}

		summary.FilesFixed++
		summary.Calls += result.Calls
		w.ui.DisplayConsoleResult(result)
	}

	w.log.Info("console rewrite finished",
		zap.Int("files_found", summary.FilesFound),
		zap.Int("files_fixed", summary.FilesFixed),
		zap.Int("calls", summary.Calls),
	)

	w.ui.DisplayConsoleSummary(summary)

	return nil
}

func (w *workflow) rewriteConsoleFile(rewriter *ConsoleRewriter, file sourceFile, dryRun bool) (m.ConsoleResult, error) {
	result := m.ConsoleResult{Path: file.display}

	content, err := w.fsAdapter.ReadFile(file.path)
	if err != nil {
		return result, err
	}

	rewritten, calls, inserted := rewriter.Rewrite(string(content))
	if calls == 0 {
		return result, nil
	}

	result.Calls = calls
	result.ImportInserted = inserted

	if dryRun {
		return result, nil
	}

	if err := w.writeFile(file.path, rewritten); err != nil {
		return result, err
	}

	result.Written = true

	return result, nil
}

func (w *workflow) consoleFiles(ctx context.Context, args ConsoleArgs) ([]sourceFile, error) {
	if len(args.Paths) > 0 {
		files, missing, err := w.collect(args.SourceArgs)
		for _, path := range missing {
			w.ui.DisplayMissing(path)
		}

		return files, err
	}

	root, err := w.fsAdapter.AbsPath(args.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	output, err := w.lint.Run(ctx, root, args.LintCommand)
	if err != nil {
		// Linters exit non-zero when they report problems; parse what we got.
		w.log.Warn("lint command failed", zap.Strings("command", args.LintCommand), zap.Error(err))
	}

	var files []sourceFile

	for _, rel := range ParseLintOutput(output, string(root)) {
		path := w.fsAdapter.JoinPath(string(root), rel)
		if _, err := w.fsAdapter.FileInfo(path); err != nil {
			w.log.Debug("skipping lint path", zap.String("path", string(path)), zap.Error(err))
			continue
		}

		files = append(files, sourceFile{path: path, display: m.Path(rel)})
	}

	return files, nil
}

// View shows a previously saved scan report.
func (w *workflow) View(_ context.Context, args ViewArgs) error {
	report, err := w.store.LoadReport(args.DataPath)
	if err != nil {
		return err
	}

	return w.ui.DisplayScanReport(report)
}

// sourceFile pairs the path used for I/O with the path shown to the user.
type sourceFile struct {
	path    m.Path
	display m.Path
}

// collect expands the source arguments into files. Explicit files are taken
// as they are; directories are walked with the include/exclude globs. Paths
// that do not exist are returned separately.
func (w *workflow) collect(args SourceArgs) ([]sourceFile, []m.Path, error) {
	seen := make(map[m.Path]struct{})

	var (
		files   []sourceFile
		missing []m.Path
	)

	add := func(f sourceFile) {
		if _, ok := seen[f.path]; ok {
			return
		}

		seen[f.path] = struct{}{}
		files = append(files, f)
	}

	for _, root := range args.Paths {
		info, err := w.fsAdapter.FileInfo(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, root)
				continue
			}

			return nil, nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(sourceFile{path: root, display: root})
			continue
		}

		paths, err := w.fsAdapter.Collect(root, args.Include, args.Exclude)
		if err != nil {
			return nil, nil, err
		}

		for _, path := range paths {
			display := path
			if rel, err := w.fsAdapter.RelPath(root, path); err == nil {
				display = rel
			}

			add(sourceFile{path: path, display: display})
		}
	}

	return files, missing, nil
}

func (w *workflow) writeFile(path m.Path, content string) error {
	perm := os.FileMode(0o644)
	if info, err := w.fsAdapter.FileInfo(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := w.fsAdapter.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func (w *workflow) fileFailed(path m.Path, err error) {
	w.log.Error("failed to process file", zap.String("path", string(path)), zap.Error(err))
	w.ui.DisplayFileError(path, err)
}
