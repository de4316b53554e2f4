package model

// Edit records the attributes added to one tag.
type Edit struct {
	Line  int
	Added []Attribute
}

// FileResult holds the outcome of patching a single file.
type FileResult struct {
	Path    Path
	Edits   []Edit
	Written bool
	Err     error
}

// Changed reports whether at least one tag was modified.
func (r FileResult) Changed() bool {
	return len(r.Edits) > 0
}

// FixSummary aggregates a patching run.
type FixSummary struct {
	FilesScanned  int
	FilesModified int
	TagsFixed     int
	Failures      int
	Missing       int
	DryRun        bool
}

// ConsoleResult holds the outcome of rewriting one file's console calls.
type ConsoleResult struct {
	Path           Path
	Calls          int
	ImportInserted bool
	Written        bool
	Err            error
}

// ConsoleSummary aggregates a console rewriting run.
type ConsoleSummary struct {
	FilesFound int
	FilesFixed int
	Calls      int
	Failures   int
	DryRun     bool
}
