package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameColor   = "color"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagTemplate      = "template"
	FlagData          = "data"
	FlagDataFile      = "data-file"
	FlagOutput        = "output"
	FlagConfig        = "config"
	FlagQuiet         = "quiet"
	FlagVerbose       = "verbose"
	FlagFormat        = "format"
	FlagIgnoreMissing = "ignore-missing"
	FlagFoldCase      = "fold-case"
	FlagStripTags     = "strip-tags"
	FlagHex           = "hex"
	FlagRGB           = "rgb"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagConfigShort   = "c"
	FlagQuietShort    = "q"
	FlagVerboseShort  = "v"
	FlagFormatShort   = "F"
	FlagHexShort      = "x"
	FlagRGBShort      = "r"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Escape modes accepted in the config file
const (
	EscapeModeHTML  = "html"
	EscapeModeStrip = "strip"
)

// Data file extensions decoded as YAML; anything else is JSON
const (
	FileExtYAML = ".yaml"
	FileExtYML  = ".yml"
)

// Exit codes
const (
	ExitCodeSuccess      = 0
	ExitCodeError        = 1
	ExitCodeUsageError   = 2
	ExitCodeMissingValue = 3
	ExitCodeInputError   = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgInvalidData       = "invalid data"
	ErrMsgInvalidConfig     = "invalid config file"
	ErrMsgInvalidEscapeMode = "invalid escape mode"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgRenderFailed      = "template rendering failed"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgColorInput        = "exactly one of --hex or --rgb is required"
	ErrMsgInvalidRGB        = "invalid rgb triple, expected r,g,b with values 0-255"
	ErrMsgInvalidColor      = "invalid color"
)

// Hint messages
const (
	MsgDidYouMean = "did you mean"
)

// Help text templates
const (
	HelpMainUsage = `utils - template rendering and helper CLI

Usage:
    utils <command> [options]

Commands:
    render      Render a template with data
    color       Convert between hex and RGB colors
    version     Show version information
    help        Show help for a command

Use "utils help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with data

Placeholders:
    {key}       substituted as-is
    {{key}}     substituted HTML-escaped

Usage:
    utils render [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -d, --data <json>       JSON data string
    -f, --data-file <file>  JSON or YAML data file
    -o, --output <file>     Output file (default: stdout)
    -c, --config <file>     YAML config file (ignore_missing, fold_case, escape)
    --ignore-missing        Leave placeholders without a value untouched
    --fold-case             Match keys case-insensitively
    --strip-tags            Strip markup instead of escaping {{key}} values
    -v, --verbose           Log rendering details to stderr
    -q, --quiet             Do not print the result or hints to stdout/stderr;
                            an --output file is still written

Examples:
    utils render -t greeting.txt -d '{"name": "Alice"}'
    utils render -t page.html -f data.yaml -o page.out.html
    echo 'Hi {name}' | utils render -t - -d '{"name": "Bob"}'`

	HelpColorUsage = `Convert between hex and RGB colors

Usage:
    utils color [options]

Options:
    -x, --hex <color>       Hex color (#rgb, #rrggbb)
    -r, --rgb <r,g,b>       RGB triple
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    utils color -x '#03F'
    utils color -r 255,128,0 -F json`

	HelpVersionUsage = `Show version information

Usage:
    utils version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    utils help [command]

Commands:
    render      Show help for render command
    color       Show help for color command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "utils version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Color output format templates
const (
	ColorTextTemplate = "%s rgb(%d, %d, %d) %s"
	ColorShadeLight   = "light"
	ColorShadeDark    = "dark"
	RGBSeparator      = ","
	RGBComponents     = 3
)

// CLI metadata
const (
	CLIName = "utils"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtErrorValue      = "%s: %q"
	FmtNewline         = "\n"
)
