package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/inputfix/internal/model"
)

// Pass names one of the patching passes.
type Pass string

const (
	// PassBatch adds id and name using the batch identifier strategy.
	PassBatch Pass = Pass(StrategyBatch)
	// PassContextual adds id and name using the contextual identifier strategy.
	PassContextual Pass = Pass(StrategyContextual)
	// PassComplete adds name from an existing id and autocomplete on
	// sensitive fields.
	PassComplete Pass = "complete"
)

// TagFixer rewrites a single tag occurrence. It returns the new occurrence
// text and the attributes it added; no attributes means no change.
type TagFixer interface {
	FixTag(tag m.Tag) (string, []m.Attribute)
}

// NewTagFixer returns the fixer behind a pass.
func NewTagFixer(pass Pass) (TagFixer, error) {
	switch pass {
	case PassBatch, PassContextual:
		synth, err := NewSynthesizer(Strategy(pass))
		if err != nil {
			return nil, err
		}

		return &idNameFixer{synth: synth}, nil
	case PassComplete:
		return &completionFixer{}, nil
	default:
		return nil, fmt.Errorf("unknown pass %q", pass)
	}
}

// idNameFixer adds id and name to inputs that have neither.
type idNameFixer struct {
	synth *Synthesizer
}

func (f *idNameFixer) FixTag(tag m.Tag) (string, []m.Attribute) {
	occurrence := tag.Occurrence()
	attrs := DetectAttributes(occurrence)

	if attrs.Hidden || attrs.HasID || attrs.HasName {
		return occurrence, nil
	}

	id, name := f.synth.Synthesize(tag, attrs)
	if id == "" {
		return occurrence, nil
	}

	add := []m.Attribute{{Key: "id", Value: id}, {Key: "name", Value: name}}

	return SpliceAttributes(occurrence, attrs, add), add
}

// completionFixer mirrors an existing id into name and adds autocomplete to
// fields the browser can fill.
type completionFixer struct{}

func (f *completionFixer) FixTag(tag m.Tag) (string, []m.Attribute) {
	occurrence := tag.Occurrence()
	attrs := DetectAttributes(occurrence)

	if attrs.Hidden {
		return occurrence, nil
	}

	var add []m.Attribute

	if !attrs.HasName && attrs.ID != "" {
		add = append(add, m.Attribute{Key: "name", Value: attrs.ID})
	}

	if !attrs.HasAutocomplete {
		if token := ResolveAutocomplete(occurrence, attrs, attrs.ID); token != "" {
			add = append(add, m.Attribute{Key: "autocomplete", Value: token})
		}
	}

	if len(add) == 0 {
		return occurrence, nil
	}

	return SpliceAttributes(occurrence, attrs, add), add
}

// Patcher applies a TagFixer to every input tag in a file's content.
type Patcher struct {
	fixer TagFixer
}

// NewPatcher creates a Patcher around the fixer.
func NewPatcher(fixer TagFixer) *Patcher {
	return &Patcher{fixer: fixer}
}

// Patch returns the patched content and one edit per changed tag. When no
// tag changes, the original content is returned untouched.
func (p *Patcher) Patch(file m.Path, content string) (string, []m.Edit) {
	lines := strings.Split(content, "\n")

	var (
		edits []m.Edit
		out   = make([]string, 0, len(lines))
		next  int
	)

	for _, tag := range ReassembleTags(file, lines) {
		occurrence := tag.Occurrence()

		fixed, added := p.fixer.FixTag(tag)
		if len(added) == 0 || fixed == occurrence {
			continue
		}

		text := tag.Text[:tag.Start] + fixed + tag.Text[tag.End:]

		// The tag's whole line span is replaced, whatever its new line count.
		out = append(out, lines[next:tag.Line-1]...)
		out = append(out, strings.Split(text, "\n")...)
		next = tag.EndLine

		edits = append(edits, m.Edit{Line: tag.Line, Added: added})
	}

	if len(edits) == 0 {
		return content, nil
	}

	out = append(out, lines[next:]...)

	return strings.Join(out, "\n"), edits
}
