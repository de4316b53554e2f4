package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/inputfix/internal/model"
)

var markerWithSpaceRe = regexp.MustCompile(`<input\s+`)

// SpliceAttributes inserts the attributes into the tag text. They go right
// after a quoted id attribute when there is one, otherwise right after the
// opening marker. Attributes the tag already has are dropped, and the text
// is returned unchanged when nothing is left to add.
func SpliceAttributes(text string, attrs m.Attributes, add []m.Attribute) string {
	tokens := make([]string, 0, len(add))

	for _, attr := range add {
		if present(attrs, attr.Key) {
			continue
		}

		tokens = append(tokens, attr.String())
	}

	if len(tokens) == 0 {
		return text
	}

	joined := strings.Join(tokens, " ")

	if attrs.IDEnd >= 0 && attrs.IDEnd <= len(text) {
		return text[:attrs.IDEnd] + " " + joined + text[attrs.IDEnd:]
	}

	if loc := markerWithSpaceRe.FindStringIndex(text); loc != nil {
		return text[:loc[1]] + joined + " " + text[loc[1]:]
	}

	if idx := strings.Index(text, inputMarker); idx >= 0 {
		pos := idx + len(inputMarker)
		return text[:pos] + " " + joined + text[pos:]
	}

	return text
}

func present(attrs m.Attributes, key string) bool {
	switch key {
	case "id":
		return attrs.HasID
	case "name":
		return attrs.HasName
	case "autocomplete":
		return attrs.HasAutocomplete
	}

	return false
}
