package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text", input: "hello world", expected: "hello world"},
		{name: "tag", input: "<b>bold</b>", expected: "&lt;b&gt;bold&lt;/b&gt;"},
		{name: "ampersand", input: "Tom & Jerry", expected: "Tom &amp; Jerry"},
		{name: "quotes", input: `"double" 'single'`, expected: "&quot;double&quot; &#39;single&#39;"},
		{name: "existing entity", input: "&lt;", expected: "&amp;lt;"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTMLEscape(tt.input))
		})
	}
}

func TestHTMLUnescape_RoundTrip(t *testing.T) {
	inputs := []string{"<a href=\"x\">it's & more</a>", "&lt;", "no entities"}
	for _, in := range inputs {
		assert.Equal(t, in, HTMLUnescape(HTMLEscape(in)))
	}
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "bold &amp; co", StripTags("<b>bold</b> & co"))
	assert.Equal(t, "plain text", StripTags("plain text"))
	assert.Equal(t, "", StripTags(""))
}
