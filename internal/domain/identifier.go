package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/inputfix/internal/model"
)

// Strategy selects how identifiers are synthesized for inputs lacking both
// id and name.
type Strategy string

const (
	// StrategyBatch prefixes bound and placeholder ids with "input-" and
	// falls back to "<type>-input-<line>".
	StrategyBatch Strategy = "batch"
	// StrategyContextual prefixes ids with the file or directory name and
	// caps them at 50 characters.
	StrategyContextual Strategy = "contextual"
)

const (
	placeholderMaxLen = 30
	contextualMaxLen  = 50
)

var (
	nonIdentRe    = regexp.MustCompile(`[^a-z0-9]+`)
	contextDirs   = []string{"blog", "courses", "products", "videos", "boards"}
	genericStems  = []string{"page", "layout", "index"}
	bindSeparator = strings.NewReplacer(".", "-", "[", "-", "]", "")
)

// idInput is what every identifier rule gets to look at.
type idInput struct {
	tag      m.Tag
	attrs    m.Attributes
	lowerTag string
	class    string
}

// idRule maps a predicate over the input to an identifier. Rules are
// evaluated in order and the first one that reports ok wins.
type idRule struct {
	name  string
	apply func(in idInput) (string, bool)
}

// Synthesizer produces deterministic id/name pairs. Identical input always
// gives an identical identifier; two inputs in one file may collide.
type Synthesizer struct {
	strategy Strategy
	rules    []idRule
	maxLen   int
}

// NewSynthesizer builds the rule chain for the given strategy.
func NewSynthesizer(strategy Strategy) (*Synthesizer, error) {
	switch strategy {
	case StrategyBatch:
		return &Synthesizer{strategy: strategy, rules: batchRules()}, nil
	case StrategyContextual:
		return &Synthesizer{strategy: strategy, rules: contextualRules(), maxLen: contextualMaxLen}, nil
	default:
		return nil, fmt.Errorf("unknown identifier strategy %q", strategy)
	}
}

// Synthesize returns the id and name for the tag. Both values are equal.
func (s *Synthesizer) Synthesize(tag m.Tag, attrs m.Attributes) (string, string) {
	in := idInput{
		tag:      tag,
		attrs:    attrs,
		lowerTag: strings.ToLower(tag.Occurrence()),
		class:    strings.ToLower(attrs.Class),
	}

	var value string

	for _, rule := range s.rules {
		if v, ok := rule.apply(in); ok {
			value = v
			break
		}
	}

	if s.strategy == StrategyContextual {
		if prefix := fileContext(tag.File); prefix != "" {
			value = prefix + "-" + value
		}
	}

	id := normalizeIdentifier(value, s.maxLen)

	return id, id
}

func batchRules() []idRule {
	return []idRule{
		{"bind", func(in idInput) (string, bool) {
			if in.attrs.Bind == "" {
				return "", false
			}

			return "input-" + bindSeparator.Replace(in.attrs.Bind), true
		}},
		{"placeholder", func(in idInput) (string, bool) {
			placeholder := cleanPlaceholder(in.attrs.Placeholder)
			if placeholder == "" {
				return "", false
			}

			return "input-" + placeholder, true
		}},
		{"search", func(in idInput) (string, bool) {
			if !strings.Contains(in.class, "search") && !strings.Contains(in.lowerTag, "search") {
				return "", false
			}

			return fmt.Sprintf("search-input-%d", in.tag.Line), true
		}},
		typeRule("checkbox", "checkbox-%d"),
		typeRule("radio", "radio-%d"),
		typeRule("date", "date-input-%d"),
		{"fallback", func(in idInput) (string, bool) {
			return fmt.Sprintf("%s-input-%d", in.attrs.Type, in.tag.Line), true
		}},
	}
}

func contextualRules() []idRule {
	return []idRule{
		{"bind", func(in idInput) (string, bool) {
			return in.attrs.Bind, normalizeIdentifier(in.attrs.Bind, 0) != ""
		}},
		{"placeholder", func(in idInput) (string, bool) {
			placeholder := cleanPlaceholder(in.attrs.Placeholder)
			return placeholder, placeholder != ""
		}},
		{"keyword", func(in idInput) (string, bool) {
			switch {
			case strings.Contains(in.class, "search") || strings.Contains(in.lowerTag, "search"):
				return "search-" + in.attrs.Type, true
			case strings.Contains(in.class, "filter"):
				return "filter-" + in.attrs.Type, true
			case strings.Contains(in.class, "select"):
				return "select-" + in.attrs.Type, true
			}

			return "", false
		}},
		{"fallback", func(in idInput) (string, bool) {
			return fmt.Sprintf("%s-%d", in.attrs.Type, in.tag.Line), true
		}},
	}
}

func typeRule(keyword, format string) idRule {
	return idRule{keyword, func(in idInput) (string, bool) {
		if !strings.Contains(in.attrs.Type, keyword) {
			return "", false
		}

		return fmt.Sprintf(format, in.tag.Line), true
	}}
}

// cleanPlaceholder lowercases the placeholder, drops ellipses and keeps
// the first 30 characters, hyphenated.
func cleanPlaceholder(placeholder string) string {
	p := strings.ToLower(placeholder)
	p = strings.ReplaceAll(p, "...", "")
	p = strings.ReplaceAll(p, "…", "")
	p = strings.ReplaceAll(p, " ", "-")

	return normalizeIdentifier(truncateRunes(p, placeholderMaxLen), 0)
}

// fileContext names the page an input lives on: a known content directory,
// or the file stem when it is not a generic route file.
func fileContext(file m.Path) string {
	if file == "" {
		return ""
	}

	path := string(file)
	dir := filepath.Base(filepath.Dir(path))

	for _, d := range contextDirs {
		if dir == d {
			return dir
		}
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.ReplaceAll(stem, "+", "")

	for _, g := range genericStems {
		if stem == g {
			return ""
		}
	}

	return stem
}

// normalizeIdentifier lowercases, turns every non-alphanumeric run into a
// single hyphen and trims hyphens. maxLen <= 0 means no cap.
func normalizeIdentifier(value string, maxLen int) string {
	id := nonIdentRe.ReplaceAllString(strings.ToLower(value), "-")
	id = strings.Trim(id, "-")

	if maxLen > 0 && len(id) > maxLen {
		id = strings.TrimRight(id[:maxLen], "-")
	}

	return id
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
