package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/inputfix/internal/model"
)

const defaultInputType = "text"

var (
	idAttrRe           = regexp.MustCompile(`\bid\s*=`)
	idValueRe          = regexp.MustCompile(`\bid\s*=\s*["']([^"'\n]+)["']`)
	nameAttrRe         = regexp.MustCompile(`\bname\s*=`)
	autocompleteAttrRe = regexp.MustCompile(`\bautocomplete\s*=`)
	typeAttrRe         = regexp.MustCompile(`\btype\s*=\s*["']([^"']+)["']`)
	placeholderAttrRe  = regexp.MustCompile(`\bplaceholder\s*=\s*["']([^"']+)["']`)
	bindAttrRe         = regexp.MustCompile(`bind:(?:value|checked)\s*=\s*\{([^}]+)\}`)
	classAttrRe        = regexp.MustCompile(`\bclass\s*=\s*["']([^"']+)["']`)
)

// DetectAttributes inspects tag text for the attributes the patchers care
// about. Attribute names must be whole tokens, so "data-id=" counts as an id
// but "userid=" does not.
func DetectAttributes(text string) m.Attributes {
	attrs := m.Attributes{
		HasID:           idAttrRe.MatchString(text),
		HasName:         nameAttrRe.MatchString(text),
		HasAutocomplete: autocompleteAttrRe.MatchString(text),
		Hidden:          strings.Contains(text, "hidden"),
		IDEnd:           -1,
		Type:            firstGroup(typeAttrRe, text),
		Placeholder:     firstGroup(placeholderAttrRe, text),
		Bind:            strings.TrimSpace(firstGroup(bindAttrRe, text)),
		Class:           firstGroup(classAttrRe, text),
	}

	if attrs.Type == "" {
		attrs.Type = defaultInputType
	}

	if loc := idValueRe.FindStringSubmatchIndex(text); loc != nil {
		attrs.ID = text[loc[2]:loc[3]]
		attrs.IDEnd = loc[1]
	}

	return attrs
}

func firstGroup(re *regexp.Regexp, text string) string {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return ""
	}

	return match[1]
}
