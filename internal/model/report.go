package model

import (
	"sort"
	"strings"
)

// Issue tags a single accessibility problem on an input.
type Issue string

const (
	// IssueMissingIDAndName is reported when neither id nor name is present.
	IssueMissingIDAndName Issue = "missing_id_and_name"
	// IssueMissingID is reported when only the id is absent.
	IssueMissingID Issue = "missing_id"
	// IssueMissingName is reported when only the name is absent.
	IssueMissingName Issue = "missing_name"

	autocompleteIssuePrefix = "missing_autocomplete_"
)

// MissingAutocomplete builds the issue for a sensitive field type lacking
// an autocomplete attribute.
func MissingAutocomplete(inputType string) Issue {
	return Issue(autocompleteIssuePrefix + inputType)
}

// IsAutocomplete reports whether the issue is a missing_autocomplete_* issue.
func (i Issue) IsAutocomplete() bool {
	return strings.HasPrefix(string(i), autocompleteIssuePrefix)
}

// FieldType returns the input type of a missing_autocomplete_* issue.
func (i Issue) FieldType() string {
	return strings.TrimPrefix(string(i), autocompleteIssuePrefix)
}

// Violation is one report entry. It never carries the full tag.
type Violation struct {
	Line    int     `yaml:"line"`
	Preview string  `yaml:"preview"`
	Issues  []Issue `yaml:"issues"`
}

// Has reports whether the violation carries the given issue.
func (v Violation) Has(issue Issue) bool {
	for _, i := range v.Issues {
		if i == issue {
			return true
		}
	}

	return false
}

// FileViolations groups the violations of a single file.
type FileViolations struct {
	File       Path        `yaml:"file"`
	Violations []Violation `yaml:"violations"`
}

// ScanMode selects which checks the scanner applies.
type ScanMode string

const (
	// ScanBasic only reports inputs lacking both id and name.
	ScanBasic ScanMode = "basic"
	// ScanEnhanced also reports partial id/name and missing autocomplete.
	ScanEnhanced ScanMode = "enhanced"
)

// ScanReport is the result of a read-only scan. Files are sorted by path.
type ScanReport struct {
	Root  Path             `yaml:"root"`
	Mode  ScanMode         `yaml:"mode"`
	Files []FileViolations `yaml:"files"`
}

// TotalViolations counts violations across all files.
func (r ScanReport) TotalViolations() int {
	total := 0
	for _, f := range r.Files {
		total += len(f.Violations)
	}

	return total
}

// CountIssue counts violations carrying the given issue.
func (r ScanReport) CountIssue(issue Issue) int {
	count := 0

	for _, f := range r.Files {
		for _, v := range f.Violations {
			if v.Has(issue) {
				count++
			}
		}
	}

	return count
}

// CountAutocomplete counts missing_autocomplete_* issues.
func (r ScanReport) CountAutocomplete() int {
	count := 0

	for _, f := range r.Files {
		for _, v := range f.Violations {
			for _, issue := range v.Issues {
				if issue.IsAutocomplete() {
					count++
				}
			}
		}
	}

	return count
}

// Priority returns up to n files with the most violations, ties broken by
// path.
func (r ScanReport) Priority(n int) []FileViolations {
	files := make([]FileViolations, len(r.Files))
	copy(files, r.Files)

	sort.SliceStable(files, func(i, j int) bool {
		if len(files[i].Violations) != len(files[j].Violations) {
			return len(files[i].Violations) > len(files[j].Violations)
		}

		return files[i].File < files[j].File
	})

	if n >= 0 && len(files) > n {
		files = files[:n]
	}

	return files
}
