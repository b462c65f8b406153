package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCompletion_Cleaned(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected map[string]any
	}{
		{
			name:     "Plain object",
			raw:      `{"hero_title":"Frogs To The Moon","tagline":"ribbit"}`,
			expected: map[string]any{"hero_title": "Frogs To The Moon", "tagline": "ribbit"},
		},
		{
			name:     "Surrounding whitespace",
			raw:      "\n\t  {\"a\":1}  \n",
			expected: map[string]any{"a": float64(1)},
		},
		{
			name:     "Fenced with json tag",
			raw:      "```json\n{\"a\":1}\n```",
			expected: map[string]any{"a": float64(1)},
		},
		{
			name:     "Fenced without tag",
			raw:      "```\n{\"a\":1}\n```",
			expected: map[string]any{"a": float64(1)},
		},
		{
			name:     "Fenced with trailing prose",
			raw:      "```json\n{\"a\":1}\n```\nLet me know if you want changes!",
			expected: map[string]any{"a": float64(1)},
		},
		{
			name:     "Leading and trailing prose",
			raw:      `Sure! Here you go: {"a":1} Hope that helps!`,
			expected: map[string]any{"a": float64(1)},
		},
		{
			name: "Nested objects",
			raw:  `Output: {"features":[{"title":"Fast","description":"zoom"}],"meta":{"x":{"y":true}}} done`,
			expected: map[string]any{
				"features": []any{map[string]any{"title": "Fast", "description": "zoom"}},
				"meta":     map[string]any{"x": map[string]any{"y": true}},
			},
		},
		{
			name:     "Empty input",
			raw:      "",
			expected: map[string]any{},
		},
		{
			name:     "Whitespace only",
			raw:      "   \n ",
			expected: map[string]any{},
		},
		{
			name:     "Schema is not enforced",
			raw:      `{"theme":"lizard","features":[]}`,
			expected: map[string]any{"theme": "lizard", "features": []any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractCompletion(tt.raw, true)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractCompletion_FencedEqualsUnfenced(t *testing.T) {
	body := `{"hero_title":"Pump It","faq":[{"question":"Is this a rug?","answer":"No."}]}`

	plain, err := ExtractCompletion(body, true)
	require.NoError(t, err)

	for _, fenced := range []string{
		"```json\n" + body + "\n```",
		"```JSON\n" + body + "\n```",
		"```\n" + body + "\n```",
		"```json" + body + "```",
	} {
		got, err := ExtractCompletion(fenced, true)
		require.NoError(t, err, fenced)
		assert.Equal(t, plain, got, fenced)
	}
}

func TestExtractCompletion_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		clean     bool
		attempted string
	}{
		{name: "No braces", raw: "not json at all", clean: true, attempted: "not json at all"},
		{name: "Invalid span", raw: "here: {hero_title: nope} bye", clean: true, attempted: "{hero_title: nope}"},
		{name: "Two objects", raw: `{"a":1} and {"b":2}`, clean: true, attempted: `{"a":1} and {"b":2}`},
		{name: "Only opening brace", raw: `{"a":1`, clean: true, attempted: `{"a":1`},
		{name: "JSON string", raw: `"hello"`, clean: true, attempted: `"hello"`},
		{name: "JSON array", raw: `[1,2,3]`, clean: true, attempted: `[1,2,3]`},
		{name: "JSON null", raw: `null`, clean: true, attempted: `null`},
		{name: "Fence is not stripped without cleaning", raw: "```json\n{\"a\":1}\n```", clean: false, attempted: "```json\n{\"a\":1}\n```"},
		{name: "Prose is not sliced without cleaning", raw: `Sure! {"a":1}`, clean: false, attempted: `Sure! {"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractCompletion(tt.raw, tt.clean)
			assert.Nil(t, got)
			require.Error(t, err)

			var invalid *InvalidCompletionError
			require.True(t, errors.As(err, &invalid), "expected *InvalidCompletionError, got %T", err)
			assert.Equal(t, tt.attempted, invalid.Text)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestExtractCompletion_Uncleaned(t *testing.T) {
	got, err := ExtractCompletion("  {\"a\":1}\n", false)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, got)

	got, err = ExtractCompletion("", false)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, got)
}

func TestExtractCompletion_NullReportsNotObject(t *testing.T) {
	_, err := ExtractCompletion("null", false)
	assert.True(t, errors.Is(err, ErrNotJSONObject))
}

func TestCleanCompletion(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "Empty", raw: "", expected: "{}"},
		{name: "Already clean", raw: `{"a":1}`, expected: `{"a":1}`},
		{name: "Fence with tag", raw: "```json\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "Prose", raw: `ok {"a":{"b":2}} bye`, expected: `{"a":{"b":2}}`},
		{name: "Reversed braces left alone", raw: "} weird {", expected: "} weird {"},
		{name: "Fence not at start is kept", raw: "Here:\n```json\n{\"a\":1}\n```", expected: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanCompletion(tt.raw))
		})
	}
}

func TestDecodeWebsiteContent(t *testing.T) {
	obj, err := ExtractCompletion(`{
		"theme": "frog",
		"hero_title": "Ribbit Into Riches",
		"hero_subtitle": "The pond's favourite coin.",
		"tagline": "Hop on.",
		"features": [{"title": "Community", "description": "Frens only"}],
		"lore_paragraphs": ["Once upon a lily pad."],
		"tokenomics_points": ["1B supply"],
		"roadmap_phases": [{"title": "Phase 1", "description": "Launch"}],
		"faq": [{"question": "Is this a rug?", "answer": "No."}],
		"extra": "ignored"
	}`, true)
	require.NoError(t, err)

	content, err := DecodeWebsiteContent(obj)
	require.NoError(t, err)
	assert.Equal(t, "frog", content.Theme)
	assert.Equal(t, "Ribbit Into Riches", content.HeroTitle)
	require.Len(t, content.Features, 1)
	assert.Equal(t, "Frens only", content.Features[0].Description)
	require.Len(t, content.FAQ, 1)
	assert.Equal(t, "Is this a rug?", content.FAQ[0].Question)

	_, err = DecodeWebsiteContent(map[string]any{"features": "not a list"})
	assert.Error(t, err)

	empty, err := DecodeWebsiteContent(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, empty.HeroTitle)
}
