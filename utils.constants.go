package utils

import "github.com/BRAVO68WEB/utils/internal"

// Placeholder syntax. A key is either one or more digits or an identifier
// starting with a letter, '_' or '$', optionally followed by '.'-separated
// segments of letters, digits, '_', '$' and '-'. Matching is case-insensitive.
const (
	// PlaceholderKeyPattern is the key grammar shared by both placeholder forms
	PlaceholderKeyPattern = `(\d+|[$_a-z][\w$-]*(?:\.[\w$-]*)*)`
	// RawPlaceholderPattern matches {key}; the value is substituted as-is
	RawPlaceholderPattern = `(?i)\{` + PlaceholderKeyPattern + `\}`
	// EscapedPlaceholderPattern matches {{key}}; the value is passed through the escaper
	EscapedPlaceholderPattern = `(?i)\{\{` + PlaceholderKeyPattern + `\}\}`
)

// PathSeparator separates segments of a dotted key
const PathSeparator = internal.PathSeparator

// Log message constants
const (
	LogMsgRendererCreated = "renderer created"
	LogMsgRenderStart     = "starting render"
	LogMsgRenderComplete  = "render complete"
	LogMsgRenderFailed    = "render failed"
	LogMsgMissingIgnored  = "missing placeholder value left verbatim"
	LogMsgEscapePass      = "escaping pass applied"
)

// Log field names
const (
	LogFieldTemplateLength = "template_length"
	LogFieldOutputLength   = "output_length"
	LogFieldPlaceholders   = "placeholder_count"
	LogFieldKey            = "key"
	LogFieldDuration       = "duration"
	LogFieldIgnoreMissing  = "ignore_missing"
	LogFieldFoldCase       = "fold_case"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyKey         = "key"
	MetaKeyPlaceholder = "placeholder"
	MetaKeyOption      = "option"
	MetaKeyValue       = "value"
	MetaKeyReason      = "reason"
	MetaKeySuggestions = "suggestions"
)

// Missing key suggestions
const (
	MaxKeySuggestions   = 3
	SuggestionSeparator = ", "
)

// Option names used in configuration errors
const (
	OptionNameEscaper = "escaper"
)

// Password hashing parameters
const (
	SaltBytes      = 16
	HashIterations = 1000
	HashKeyLength  = 64
)

// String helper defaults
const (
	DefaultIndent    = "    "
	MissingParameter = "<missing parameter>"
)

// Color thresholds and formats
const (
	LightnessThreshold = 186.0
	LumaWeightRed      = 0.299
	LumaWeightGreen    = 0.587
	LumaWeightBlue     = 0.114
	HexColorFormat     = "#%02x%02x%02x"
)
