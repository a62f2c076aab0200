package utils

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	indexPlaceholder = regexp.MustCompile(`\{(\d+)\}`)
	hashPlaceholder  = regexp.MustCompile(`#\{[\w.]+\}`)
)

// cyrb53 multipliers
const (
	cyrbSeed1 uint32 = 0xdeadbeef
	cyrbSeed2 uint32 = 0x41c6ce57
	cyrbMul1  uint32 = 2654435761
	cyrbMul2  uint32 = 1597334677
	cyrbMix1  uint32 = 2246822507
	cyrbMix2  uint32 = 3266489909
)

// Indent prefixes every line of s with prefix repeated depth times.
// An empty prefix means four spaces.
func Indent(s string, depth int, prefix string) string {
	if prefix == "" {
		prefix = DefaultIndent
	}
	if depth <= 0 {
		return s
	}
	pad := strings.Repeat(prefix, depth)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}

// HashCyrb53 is a fast, non-cryptographic string hash (cyrb53 by bryc).
// Returns 16 hex characters. Input is hashed as UTF-16 code units.
func HashCyrb53(s string, seed uint32) string {
	h1 := cyrbSeed1 ^ seed
	h2 := cyrbSeed2 ^ seed
	for _, ch := range utf16.Encode([]rune(s)) {
		h1 = (h1 ^ uint32(ch)) * cyrbMul1
		h2 = (h2 ^ uint32(ch)) * cyrbMul2
	}
	h1 = (h1 ^ (h1 >> 16)) * cyrbMix1
	h1 ^= (h2 ^ (h2 >> 13)) * cyrbMix2
	h2 = (h2 ^ (h2 >> 16)) * cyrbMix1
	h2 ^= (h1 ^ (h1 >> 13)) * cyrbMix2
	return fmt.Sprintf("%08x%08x", h2, h1)
}

// Base64Encode encodes the UTF-8 bytes of s with standard padding.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes standard base64 into a string.
func Base64Decode(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", NewBase64DecodeError(err)
	}
	return string(b), nil
}

// FormatString replaces {N} with args[N]. Placeholders without a matching
// argument are left as they are.
//
//	FormatString("{0} {1}", "Hello", "World") // "Hello World"
func FormatString(s string, args ...string) string {
	return indexPlaceholder.ReplaceAllStringFunc(s, func(match string) string {
		i, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || i >= len(args) {
			return match
		}
		return args[i]
	})
}

// FormatStringTemplate replaces #{key} with params[key], or with
// "<missing parameter>" when the key is absent.
func FormatStringTemplate(s string, params map[string]string) string {
	return hashPlaceholder.ReplaceAllStringFunc(s, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return MissingParameter
	})
}

// Format replaces the first occurrence of {0}, then {1}, and so on, with args
// in order.
func Format(s string, args ...string) string {
	for i, arg := range args {
		s = strings.Replace(s, "{"+strconv.Itoa(i)+"}", arg, 1)
	}
	return s
}

// Capitalize upper-cases the first character of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// IsStringEmpty reports whether s has zero length.
func IsStringEmpty(s string) bool {
	return len(s) == 0
}

// IsNullOrEmpty reports whether s is nil or points to an empty string.
func IsNullOrEmpty(s *string) bool {
	return s == nil || IsStringEmpty(*s)
}
