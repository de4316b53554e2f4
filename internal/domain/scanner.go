package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/inputfix/internal/model"
)

const previewLen = 100

// sensitiveTypes are the field types expected to carry autocomplete.
var sensitiveTypes = []string{"password", "email", "tel", "username"}

// Scanner reports accessibility violations without touching the source.
type Scanner struct {
	mode m.ScanMode
}

// NewScanner creates a Scanner for the mode.
func NewScanner(mode m.ScanMode) (*Scanner, error) {
	switch mode {
	case m.ScanBasic, m.ScanEnhanced:
		return &Scanner{mode: mode}, nil
	default:
		return nil, fmt.Errorf("unknown scan mode %q", mode)
	}
}

// Mode returns the scan mode.
func (s *Scanner) Mode() m.ScanMode {
	return s.mode
}

// Scan returns the violations found in the content, in line order.
func (s *Scanner) Scan(file m.Path, content string) []m.Violation {
	var violations []m.Violation

	for _, tag := range ReassembleTags(file, strings.Split(content, "\n")) {
		occurrence := tag.Occurrence()
		attrs := DetectAttributes(occurrence)

		if attrs.Hidden {
			continue
		}

		issues := s.issues(attrs)
		if len(issues) == 0 {
			continue
		}

		violations = append(violations, m.Violation{
			Line:    tag.Line,
			Preview: Preview(occurrence),
			Issues:  issues,
		})
	}

	return violations
}

func (s *Scanner) issues(attrs m.Attributes) []m.Issue {
	if s.mode == m.ScanBasic {
		if !attrs.HasID && !attrs.HasName {
			return []m.Issue{m.IssueMissingIDAndName}
		}

		return nil
	}

	var issues []m.Issue

	switch {
	case !attrs.HasID && !attrs.HasName:
		issues = append(issues, m.IssueMissingIDAndName)
	case !attrs.HasID:
		issues = append(issues, m.IssueMissingID)
	case !attrs.HasName:
		issues = append(issues, m.IssueMissingName)
	}

	if !attrs.HasAutocomplete {
		for _, t := range sensitiveTypes {
			if attrs.Type == t {
				issues = append(issues, m.MissingAutocomplete(t))
				break
			}
		}
	}

	return issues
}

// Preview trims the tag and cuts it to 100 characters.
func Preview(tag string) string {
	tag = strings.TrimSpace(tag)

	runes := []rune(tag)
	if len(runes) <= previewLen {
		return tag
	}

	return string(runes[:previewLen]) + "..."
}
