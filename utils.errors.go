package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Render errors
	ErrMsgMissingValue      = "missing a value for the placeholder"
	ErrMsgMissingValueNoKey = "missing a value for a placeholder"

	// Configuration errors
	ErrMsgInvalidOption = "invalid renderer option"
	ErrMsgNilEscaper    = "escaper cannot be nil"

	// Helper errors
	ErrMsgInvalidHexColor = "invalid hex color"
	ErrMsgInvalidBase64   = "invalid base64 input"
)

// Error code constants for categorization
const (
	ErrCodeRender   = "UTILS_RENDER"
	ErrCodeConfig   = "UTILS_CONFIG"
	ErrCodeColor    = "UTILS_COLOR"
	ErrCodeEncoding = "UTILS_ENCODING"
)

// Format string constants
const (
	FmtMissingValue = "%s: %s"
)

// MissingValueError reports a placeholder whose key resolved to no value while
// lenient mode was off. It unwraps to a not-found *cuserr.CustomError carrying
// the key as metadata.
type MissingValueError struct {
	Key string
	// Suggestions lists existing keys close to Key, closest first.
	Suggestions []string
	cause       *cuserr.CustomError
}

// NewMissingValueError creates a missing value error for key.
func NewMissingValueError(key string, suggestions ...string) *MissingValueError {
	cause := cuserr.NewNotFoundError(MetaKeyPlaceholder, ErrMsgMissingValue).
		WithMetadata(MetaKeyKey, key)
	if len(suggestions) > 0 {
		cause = cause.WithMetadata(MetaKeySuggestions, strings.Join(suggestions, SuggestionSeparator))
	}
	return &MissingValueError{
		Key:         key,
		Suggestions: suggestions,
		cause:       cause,
	}
}

// Error returns the message with the offending key.
func (e *MissingValueError) Error() string {
	if e.Key == "" {
		return ErrMsgMissingValueNoKey
	}
	return fmt.Sprintf(FmtMissingValue, ErrMsgMissingValue, e.Key)
}

// Unwrap exposes the categorized cuserr error.
func (e *MissingValueError) Unwrap() error {
	return e.cause
}

// IsMissingValueError reports whether err is, or wraps, a MissingValueError.
func IsMissingValueError(err error) bool {
	var mv *MissingValueError
	return errors.As(err, &mv)
}

// MissingKey returns the key carried by a MissingValueError in err's chain.
func MissingKey(err error) (string, bool) {
	var mv *MissingValueError
	if !errors.As(err, &mv) {
		return "", false
	}
	return mv.Key, true
}

// NewInvalidOptionError creates a configuration error for a rejected option
func NewInvalidOptionError(option, reason string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidOption).
		WithMetadata(MetaKeyOption, option).
		WithMetadata(MetaKeyReason, reason)
}

// NewInvalidHexColorError creates an error for unparseable hex colors
func NewInvalidHexColorError(hex string) error {
	return cuserr.NewValidationError(ErrCodeColor, ErrMsgInvalidHexColor).
		WithMetadata(MetaKeyValue, hex)
}

// NewBase64DecodeError wraps a base64 decoding failure
func NewBase64DecodeError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeEncoding, ErrMsgInvalidBase64)
}
