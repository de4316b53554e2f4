package domain

import (
	"strings"

	m "github.com/mouse-blink/inputfix/internal/model"
)

const inputMarker = "<input"

// ReassembleTags finds every line holding an input marker and grows the tag
// over the following lines until a '>' shows up after the marker. A file
// that ends mid-tag yields an unclosed tag instead of an error.
//
// A '>' inside a quoted attribute value terminates the tag early.
func ReassembleTags(file m.Path, lines []string) []m.Tag {
	var tags []m.Tag

	for i := 0; i < len(lines); i++ {
		marker := strings.Index(lines[i], inputMarker)
		if marker < 0 {
			continue
		}

		startLine := i
		text := lines[i]
		end := closingIndex(text, marker)

		for end < 0 && i < len(lines)-1 {
			i++
			offset := len(text) + 1
			text += "\n" + lines[i]

			if gt := strings.IndexByte(lines[i], '>'); gt >= 0 {
				end = offset + gt + 1
			}
		}

		tag := m.Tag{
			File:    file,
			Line:    startLine + 1,
			EndLine: i + 1,
			Text:    text,
			Start:   marker,
			End:     end,
			Closed:  end >= 0,
		}
		if !tag.Closed {
			tag.End = len(text)
		}

		tags = append(tags, tag)
	}

	return tags
}

// closingIndex returns the offset just past the first '>' at or after from,
// or -1.
func closingIndex(text string, from int) int {
	gt := strings.IndexByte(text[from:], '>')
	if gt < 0 {
		return -1
	}

	return from + gt + 1
}
