package internal

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlEscaper = strings.NewReplacer(
		CharAmp, EntityAmp,
		CharLt, EntityLt,
		CharGt, EntityGt,
		CharQuot, EntityQuot,
		CharApos, EntityApos,
	)
	htmlUnescaper = strings.NewReplacer(
		EntityAmp, CharAmp,
		EntityLt, CharLt,
		EntityGt, CharGt,
		EntityQuot, CharQuot,
		EntityApos, CharApos,
	)

	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// HTMLEscape replaces &, <, >, " and ' with their entity equivalents.
func HTMLEscape(s string) string {
	return htmlEscaper.Replace(s)
}

// HTMLUnescape reverses HTMLEscape.
func HTMLUnescape(s string) string {
	return htmlUnescaper.Replace(s)
}

// StripTags removes all markup from s and entity-escapes the remaining text.
func StripTags(s string) string {
	return stripSanitizer().Sanitize(s)
}

func stripSanitizer() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}
