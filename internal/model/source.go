// Package model defines the data structures shared by the scanner, the
// patchers and the console rewriter.
package model

// Path represents a file system path.
type Path string

// Tag is one occurrence of an input element, possibly spanning several
// source lines.
type Tag struct {
	File    Path
	Line    int // 1-based line of the opening marker
	EndLine int // 1-based line holding the terminator (or the last line of the file)
	// Text holds every source line the tag touches, joined by '\n'.
	Text string
	// Start and End delimit the occurrence inside Text.
	Start int
	End   int
	// Closed is false when the end of the file terminated the tag.
	Closed bool
}

// Attributes is what the detector found in a tag's text. It is derived by
// regular expressions and never holds a full attribute map.
type Attributes struct {
	HasID           bool
	HasName         bool
	HasAutocomplete bool
	Hidden          bool

	// ID holds the quoted id value, empty for dynamic ids such as id={x}.
	ID string
	// IDEnd is the offset just past a quoted id attribute, -1 when absent.
	IDEnd int

	Type        string
	Placeholder string
	Bind        string
	Class       string
}

// Attribute is a key/value pair rendered as key="value".
type Attribute struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// String renders the attribute as markup.
func (a Attribute) String() string {
	return a.Key + `="` + a.Value + `"`
}

// Occurrence returns the tag text from the opening marker up to and
// including the terminating '>'.
func (t Tag) Occurrence() string {
	return t.Text[t.Start:t.End]
}
