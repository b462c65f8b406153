package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty", input: "", expected: ""},
		{name: "Plain text unchanged", input: "  launch on\nfriday  ", expected: "  launch on\nfriday  "},
		{name: "Ticker in angle brackets", input: "mention <PEPE> and the 1B supply", expected: "mention <PEPE> and the 1B supply"},
		{name: "Comparisons", input: "tax < 1% and x<y", expected: "tax < 1% and x<y"},
		{name: "Multi-line with ampersand", input: "line one\nline two & three", expected: "line one\nline two & three"},
		{name: "Entity left alone without markup", input: "Tom &amp; Jerry", expected: "Tom &amp; Jerry"},
		{name: "Heart emoticon", input: "we <3 frogs", expected: "we <3 frogs"},
		{name: "Unclosed tag", input: "<b>bold move", expected: "<b>bold move"},
		{name: "Mismatched tags", input: "<b>bold</i>", expected: "<b>bold</i>"},
		{name: "Markup plus bare bracket", input: "<b>tax</b> < 1%", expected: "<b>tax</b> < 1%"},
		{name: "Simple tags", input: "<b>bold</b> move", expected: "bold move"},
		{name: "Script dropped", input: "<div>hi<script>alert(1)</script></div>", expected: "hi"},
		{name: "Style dropped", input: "<style>p{color:red}</style><p>frog season</p>", expected: "frog season"},
		{name: "Entities decoded inside markup", input: "<p>Tom &amp; Jerry</p>", expected: "Tom & Jerry"},
		{name: "Line breaks kept", input: "<p>line one\nline two</p>\ngm<br>fam", expected: "line one\nline two\ngm\nfam"},
		{name: "Nested markup", input: "<ul><li>one</li><li>two</li></ul>", expected: "onetwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlainText(tt.input))
		})
	}
}
