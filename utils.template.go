package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/BRAVO68WEB/utils/internal"
	"go.uber.org/zap"
)

// Compiled once, shared read-only by every render.
var (
	rawPlaceholder     = regexp.MustCompile(RawPlaceholderPattern)
	escapedPlaceholder = regexp.MustCompile(EscapedPlaceholderPattern)
)

// Renderer interpolates placeholders in template strings.
//
// Create with New and configure with Option functions.
// A Renderer is immutable and safe for concurrent use.
type Renderer struct {
	config *rendererConfig
	logger *zap.Logger
}

// New creates a Renderer with the given options.
//
// Default configuration:
//   - IgnoreMissing: false (missing values fail with *MissingValueError)
//   - Transform: identity
//   - FoldCase: false
//   - Escaper: HTMLEscaper
func New(opts ...Option) (*Renderer, error) {
	config := defaultRendererConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.escaper == nil {
		return nil, NewInvalidOptionError(OptionNameEscaper, ErrMsgNilEscaper)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug(LogMsgRendererCreated,
		zap.Bool(LogFieldIgnoreMissing, config.ignoreMissing),
		zap.Bool(LogFieldFoldCase, config.foldCase))

	return &Renderer{
		config: config,
		logger: logger,
	}, nil
}

// MustNew creates a Renderer and panics if there's an error.
func MustNew(opts ...Option) *Renderer {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Render substitutes every placeholder in template with its value from data.
//
// {{key}} placeholders are substituted first and their values pass through the
// escaper; {key} placeholders are then substituted raw in the result, which
// includes any {key} text produced by the first pass. A {{key}} value that
// contains placeholder text therefore pulls in the referenced values unescaped;
// keep such values out of escaped placeholders. A key that resolves to
// nothing fails with *MissingValueError unless the renderer ignores missing
// values, in which case the placeholder text is kept.
//
// Example:
//
//	r := utils.MustNew()
//	out, err := r.Render("Hello {user.name}", map[string]any{
//	    "user": map[string]any{"name": "World"},
//	})
//	// out: "Hello World"
func (r *Renderer) Render(template string, data map[string]any) (string, error) {
	start := time.Now()
	if ce := r.logger.Check(zap.DebugLevel, LogMsgRenderStart); ce != nil {
		ce.Write(
			zap.Int(LogFieldTemplateLength, len(template)),
			zap.Int(LogFieldPlaceholders, len(rawPlaceholder.FindAllStringIndex(template, -1))))
	}

	result := template
	if escapedPlaceholder.MatchString(result) {
		var err error
		result, err = r.substitute(escapedPlaceholder, result, data, r.config.escaper)
		if err != nil {
			r.logger.Debug(LogMsgRenderFailed, zap.Error(err))
			return "", err
		}
		r.logger.Debug(LogMsgEscapePass, zap.Int(LogFieldOutputLength, len(result)))
	}

	result, err := r.substitute(rawPlaceholder, result, data, nil)
	if err != nil {
		r.logger.Debug(LogMsgRenderFailed, zap.Error(err))
		return "", err
	}

	r.logger.Debug(LogMsgRenderComplete,
		zap.Int(LogFieldOutputLength, len(result)),
		zap.Duration(LogFieldDuration, time.Since(start)))

	return result, nil
}

// MustRender renders template and panics on error.
func (r *Renderer) MustRender(template string, data map[string]any) string {
	result, err := r.Render(template, data)
	if err != nil {
		panic(err)
	}
	return result
}

// RenderAll renders every template against the same data.
// On error, returns nil and the first error.
func (r *Renderer) RenderAll(templates []string, data map[string]any) ([]string, error) {
	if templates == nil {
		return nil, nil
	}

	results := make([]string, len(templates))
	for i, tmpl := range templates {
		rendered, err := r.Render(tmpl, data)
		if err != nil {
			return nil, err
		}
		results[i] = rendered
	}
	return results, nil
}

// RenderMap renders all string values of m recursively, descending into
// nested maps and []any. Returns a new map; non-string values are copied as-is.
// On error, returns nil and the first error.
func (r *Renderer) RenderMap(m map[string]any, data map[string]any) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}

	result := make(map[string]any, len(m))
	for k, v := range m {
		rendered, err := r.renderValue(v, data)
		if err != nil {
			return nil, err
		}
		result[k] = rendered
	}
	return result, nil
}

func (r *Renderer) renderValue(v any, data map[string]any) (any, error) {
	switch val := v.(type) {
	case string:
		return r.Render(val, data)
	case map[string]any:
		return r.RenderMap(val, data)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			rendered, err := r.renderValue(elem, data)
			if err != nil {
				return nil, err
			}
			out[i] = rendered
		}
		return out, nil
	default:
		return v, nil
	}
}

// Placeholders returns the distinct keys referenced by template, in order of
// first appearance. Both {key} and {{key}} forms are reported.
func (r *Renderer) Placeholders(template string) []string {
	return Placeholders(template)
}

// substitute replaces every match of pattern in s. escape, when non-nil, is
// applied to each replacement (including a placeholder kept verbatim).
// Stops at the first error.
func (r *Renderer) substitute(pattern *regexp.Regexp, s string, data map[string]any, escape Escaper) (string, error) {
	matches := pattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		placeholder := s[m[0]:m[1]]
		key := s[m[2]:m[3]]

		replacement, err := r.replace(placeholder, key, data)
		if err != nil {
			return "", err
		}
		if escape != nil {
			replacement = escape(replacement)
		}

		b.WriteString(s[last:m[0]])
		b.WriteString(replacement)
		last = m[1]
	}
	b.WriteString(s[last:])

	return b.String(), nil
}

// replace resolves key and returns its text, or the placeholder itself when
// the value is missing and missing values are ignored.
func (r *Renderer) replace(placeholder, key string, data map[string]any) (string, error) {
	value, found := internal.Lookup(data, key, r.config.foldCase)
	value, found = r.config.transform(TransformData{Value: value, Key: key, Found: found})
	if !found {
		if r.config.ignoreMissing {
			r.logger.Debug(LogMsgMissingIgnored, zap.String(LogFieldKey, key))
			return placeholder, nil
		}
		return "", NewMissingValueError(key, internal.SuggestKeys(data, key, MaxKeySuggestions)...)
	}
	return internal.Stringify(value), nil
}

// Render substitutes placeholders in template using a renderer built from opts.
//
// Example:
//
//	out, err := utils.Render("{0} {1}", map[string]any{"0": "Hello", "1": "World"})
//	// out: "Hello World"
func Render(template string, data map[string]any, opts ...Option) (string, error) {
	r, err := New(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(template, data)
}

// MustRender is like Render but panics on error.
func MustRender(template string, data map[string]any, opts ...Option) string {
	result, err := Render(template, data, opts...)
	if err != nil {
		panic(err)
	}
	return result
}

// Placeholders returns the distinct placeholder keys in template, in order of
// first appearance.
func Placeholders(template string) []string {
	matches := rawPlaceholder.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		keys = append(keys, m[1])
	}
	return keys
}

// ToString converts a value to the text a placeholder would render it as.
// Useful inside a TransformFunc.
func ToString(v any) string {
	return internal.Stringify(v)
}
