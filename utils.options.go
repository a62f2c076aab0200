package utils

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Renderer.
type Option func(*rendererConfig)

// TransformData is what a TransformFunc receives for each placeholder.
type TransformData struct {
	// Value is the resolved value, nil when Found is false.
	Value any
	// Key is the placeholder key as written in the template.
	Key string
	// Found reports whether the key resolved in the data context.
	Found bool
}

// TransformFunc intercepts a resolved value before it is substituted.
// Returning false marks the placeholder as missing.
type TransformFunc func(data TransformData) (any, bool)

// rendererConfig holds the internal configuration for a Renderer.
type rendererConfig struct {
	ignoreMissing bool
	foldCase      bool
	transform     TransformFunc
	escaper       Escaper
	logger        *zap.Logger
}

// defaultRendererConfig returns the default renderer configuration.
func defaultRendererConfig() *rendererConfig {
	return &rendererConfig{
		ignoreMissing: false,
		foldCase:      false,
		transform:     identityTransform,
		escaper:       HTMLEscaper,
		logger:        nil,
	}
}

func identityTransform(data TransformData) (any, bool) {
	return data.Value, data.Found
}

// WithIgnoreMissing leaves placeholders with no value verbatim instead of failing.
// Default: false
func WithIgnoreMissing(ignore bool) Option {
	return func(c *rendererConfig) {
		c.ignoreMissing = ignore
	}
}

// WithTransform sets the hook applied to every resolved value.
// A nil transform restores the identity transform.
func WithTransform(transform TransformFunc) Option {
	return func(c *rendererConfig) {
		if transform == nil {
			transform = identityTransform
		}
		c.transform = transform
	}
}

// WithFoldCase lets a key segment match a map key or struct field that differs
// only in case when no exact match exists.
// Default: false (exact-case lookup)
func WithFoldCase(fold bool) Option {
	return func(c *rendererConfig) {
		c.foldCase = fold
	}
}

// WithEscaper sets the escaper applied to {{key}} placeholders.
// Default: HTMLEscaper
func WithEscaper(escaper Escaper) Option {
	return func(c *rendererConfig) {
		c.escaper = escaper
	}
}

// WithLogger sets the logger for the renderer.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *rendererConfig) {
		c.logger = logger
	}
}
