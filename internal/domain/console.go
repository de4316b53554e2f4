package domain

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultLoggerModule is the module the wrapped logger is imported from.
	DefaultLoggerModule = "$lib/utils/logger"
	// DefaultLoggerImport is the statement inserted when the logger is missing.
	DefaultLoggerImport = "import { logger } from '$lib/utils/logger';"
)

var consoleCallRe = regexp.MustCompile(`console\.(debug|error|warn|info|log)\(`)

// ConsoleRewriter replaces console.* calls with the wrapped logger.
type ConsoleRewriter struct {
	importLine string
	module     string
}

// NewConsoleRewriter creates a rewriter that inserts importLine whenever
// module is not imported yet. Empty arguments select the defaults.
func NewConsoleRewriter(importLine, module string) *ConsoleRewriter {
	if importLine == "" {
		importLine = DefaultLoggerImport
	}

	if module == "" {
		module = DefaultLoggerModule
	}

	return &ConsoleRewriter{importLine: importLine, module: module}
}

// HasConsoleCalls reports whether the content calls console.*.
func (r *ConsoleRewriter) HasConsoleCalls(content string) bool {
	return consoleCallRe.MatchString(content)
}

// HasLoggerImport reports whether the logger module is imported with
// either quote style.
func (r *ConsoleRewriter) HasLoggerImport(content string) bool {
	return strings.Contains(content, "from '"+r.module+"'") ||
		strings.Contains(content, `from "`+r.module+`"`)
}

// Rewrite replaces every console call and inserts the logger import when
// needed. It returns the new content, the number of calls replaced and
// whether the import was inserted. Content without console calls comes back
// unchanged.
func (r *ConsoleRewriter) Rewrite(content string) (string, int, bool) {
	if !r.HasConsoleCalls(content) {
		return content, 0, false
	}

	calls := len(consoleCallRe.FindAllStringIndex(content, -1))

	inserted := false

	if !r.HasLoggerImport(content) {
		content = r.addImport(content)
		inserted = true
	}

	content = consoleCallRe.ReplaceAllStringFunc(content, func(call string) string {
		method := strings.TrimSuffix(strings.TrimPrefix(call, "console."), "(")
		if method == "log" {
			method = "info"
		}

		return "logger." + method + "("
	})

	return content, calls, inserted
}

// addImport places the import after the last import line, or first.
func (r *ConsoleRewriter) addImport(content string) string {
	lines := strings.Split(content, "\n")

	last := -1

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "import ") {
			last = i
		}
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:last+1]...)
	out = append(out, r.importLine)
	out = append(out, lines[last+1:]...)

	return strings.Join(out, "\n")
}

// ParseLintOutput extracts the files a linter reported. Only lines that
// start with the absolute project root count; they come back relative to it,
// sorted and without duplicates.
func ParseLintOutput(output, root string) []string {
	prefix := strings.TrimSuffix(root, "/") + "/"
	seen := make(map[string]struct{})

	var files []string

	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		rel := strings.TrimPrefix(strings.TrimSpace(line), prefix)
		if rel == "" {
			continue
		}

		if _, ok := seen[rel]; ok {
			continue
		}

		seen[rel] = struct{}{}
		files = append(files, rel)
	}

	sort.Strings(files)

	return files
}
