package utils

import "github.com/BRAVO68WEB/utils/internal"

// Escaper transforms a substituted value before it is spliced into a
// {{key}} placeholder. Implementations must be total and side-effect free.
type Escaper func(string) string

// HTMLEscaper replaces &, <, >, " and ' with &amp;, &lt;, &gt;, &quot; and &#39;.
func HTMLEscaper(s string) string {
	return internal.HTMLEscape(s)
}

// StripTagsEscaper removes all HTML markup and entity-escapes the remaining text.
func StripTagsEscaper(s string) string {
	return internal.StripTags(s)
}

// HTMLUnescape reverses HTMLEscaper.
func HTMLUnescape(s string) string {
	return internal.HTMLUnescape(s)
}
