package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/inputfix/internal/model"
)

func synthesize(t *testing.T, strategy Strategy, file string, line int, text string) string {
	t.Helper()

	synth, err := NewSynthesizer(strategy)
	require.NoError(t, err)

	tag := m.Tag{File: m.Path(file), Line: line, Text: text, Start: 0, End: len(text), Closed: true}
	id, name := synth.Synthesize(tag, DetectAttributes(text))
	assert.Equal(t, id, name)

	return id
}

func TestSynthesizer_Batch(t *testing.T) {
	tests := []struct {
		name string
		line int
		text string
		want string
	}{
		{"bind", 3, `<input bind:value={user.email}>`, "input-user-email"},
		{"bind wins over placeholder", 3, `<input placeholder="Name" bind:value={name}>`, "input-name"},
		{"placeholder", 5, `<input placeholder="Search courses...">`, "input-search-courses"},
		{"placeholder ellipsis char", 5, `<input placeholder="Type here…">`, "input-type-here"},
		{"search class", 7, `<input class="search-box">`, "search-input-7"},
		{"checkbox", 3, `<input type="checkbox">`, "checkbox-3"},
		{"radio", 4, `<input type="radio">`, "radio-4"},
		{"date", 8, `<input type="date">`, "date-input-8"},
		{"datetime-local counts as date", 8, `<input type="datetime-local">`, "date-input-8"},
		{"fallback", 9, `<input type="number">`, "number-input-9"},
		{"fallback default type", 2, `<input>`, "text-input-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := synthesize(t, StrategyBatch, "src/routes/+page.svelte", tt.line, tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynthesizer_Contextual(t *testing.T) {
	tests := []struct {
		name string
		file string
		line int
		text string
		want string
	}{
		{"content directory prefix", "src/routes/blog/+page.svelte", 4, `<input bind:value={email}>`, "blog-email"},
		{"stem prefix", "src/lib/Newsletter.svelte", 4, `<input type="email" placeholder="Your Email">`, "newsletter-your-email"},
		{"generic page stem", "src/routes/account/+page.svelte", 4, `<input placeholder="Your email address">`, "your-email-address"},
		{"generic layout stem", "src/routes/+layout.svelte", 4, `<input class="search">`, "search-text"},
		{"filter class", "src/routes/videos/+page.svelte", 4, `<input type="range" class="filter-slider">`, "videos-filter-range"},
		{"select class", "src/routes/index.svelte", 4, `<input type="checkbox" class="select-all">`, "select-checkbox"},
		{"fallback", "src/routes/account/+page.svelte", 12, `<input type="number">`, "number-12"},
		{"dotted bind", "src/routes/products/+page.svelte", 6, `<input bind:value={filters.minPrice}>`, "products-filters-minprice"},
		{"bind without letters falls through", "src/routes/account/+page.svelte", 4, `<input bind:value={_} placeholder="Email">`, "email"},
		{"bind without letters reaches fallback", "src/routes/account/+page.svelte", 5, `<input type="number" bind:value={$}>`, "number-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := synthesize(t, StrategyContextual, tt.file, tt.line, tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynthesizer_ContextualCap(t *testing.T) {
	got := synthesize(t, StrategyContextual, "src/lib/VeryLongComponentNameForTesting.svelte", 1,
		`<input placeholder="Enter the full postal address of the recipient">`)

	assert.LessOrEqual(t, len(got), 50)
	assert.True(t, strings.HasPrefix(got, "verylongcomponentnamefortesting-"))
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestSynthesizer_Deterministic(t *testing.T) {
	text := `<input type="email" placeholder="Your Email">`

	for _, strategy := range []Strategy{StrategyBatch, StrategyContextual} {
		first := synthesize(t, strategy, "src/routes/contact/+page.svelte", 10, text)
		second := synthesize(t, strategy, "src/routes/contact/+page.svelte", 10, text)

		assert.Equal(t, first, second, string(strategy))
		assert.NotEmpty(t, first)
	}
}

func TestNewSynthesizer_UnknownStrategy(t *testing.T) {
	synth, err := NewSynthesizer(Strategy("random"))
	assert.Error(t, err)
	assert.Nil(t, synth)
}

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		value  string
		maxLen int
		want   string
	}{
		{"Hello World", 0, "hello-world"},
		{"--a__b--", 0, "a-b"},
		{"user[0].name", 0, "user-0-name"},
		{"abc-def-ghi", 4, "abc"},
		{"", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeIdentifier(tt.value, tt.maxLen))
		})
	}
}

func TestFileContext(t *testing.T) {
	tests := []struct {
		file m.Path
		want string
	}{
		{"src/routes/courses/+page.svelte", "courses"},
		{"src/routes/boards/[id]/+page.svelte", ""},
		{"src/routes/+page.svelte", ""},
		{"src/routes/index.svelte", ""},
		{"src/lib/LoginForm.svelte", "LoginForm"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.file), func(t *testing.T) {
			assert.Equal(t, tt.want, fileContext(tt.file))
		})
	}
}
