package domain

import (
	"strings"

	m "github.com/mouse-blink/inputfix/internal/model"
)

// autocompleteRule maps a keyword found in a text field's id to an
// autocomplete token. Order matters: "username" must win over "name".
type autocompleteRule struct {
	keyword string
	token   string
}

var textAutocomplete = []autocompleteRule{
	{"username", "username"},
	{"name", "name"},
	{"first", "given-name"},
	{"last", "family-name"},
	{"phone", "tel"},
	{"address", "street-address"},
	{"city", "address-level2"},
	{"state", "address-level1"},
	{"zip", "postal-code"},
	{"country", "country-name"},
}

// ResolveAutocomplete picks the autocomplete token for a field, or "" when
// none applies. id is the existing or synthesized id of the field.
func ResolveAutocomplete(tagText string, attrs m.Attributes, id string) string {
	switch attrs.Type {
	case "password":
		lower := strings.ToLower(tagText)
		if strings.Contains(lower, "new") || strings.Contains(lower, "confirm") {
			return "new-password"
		}

		return "current-password"
	case "email", "tel":
		return attrs.Type
	case "text":
		lowerID := strings.ToLower(id)
		if lowerID == "" {
			return ""
		}

		for _, rule := range textAutocomplete {
			if strings.Contains(lowerID, rule.keyword) {
				return rule.token
			}
		}
	}

	return ""
}
