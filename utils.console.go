package utils

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/BRAVO68WEB/utils/internal"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

// Color names a terminal color.
type Color string

// Supported colors
const (
	ColorGray    Color = "gray"
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorMagenta Color = "magenta"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
)

// Console icons
const (
	IconPointer = "❯"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconTick    = "✔"
	IconCross   = "✖"
)

// Console constants
const (
	BadgeTypeError  = "error"
	EnvNoColor      = "NO_COLOR"
	ansiBadgeFormat = " %s "
	ansiBadgeText   = "black"
	ansiGray        = "black+h"
)

var colorEnabled atomic.Bool

func init() {
	colorEnabled.Store(detectColor())
}

func detectColor() bool {
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetColorEnabled forces terminal coloring on or off.
func SetColorEnabled(enabled bool) {
	colorEnabled.Store(enabled)
}

// ColorEnabled reports whether console output is colored.
func ColorEnabled() bool {
	return colorEnabled.Load()
}

// ansiStyle maps a Color to an mgutz/ansi style name.
func (c Color) ansiStyle() string {
	if c == ColorGray {
		return ansiGray
	}
	return string(c)
}

// Paint wraps s in the escape codes for c when coloring is enabled.
func Paint(s string, c Color) string {
	if !ColorEnabled() || c == "" {
		return s
	}
	return ansi.Color(s, c.ansiStyle())
}

// FancyOptions configures a formatter created by NewFancyFormatter.
type FancyOptions struct {
	// Target receives each formatted line. Default: print to stdout.
	Target func(string)
	// TextColor colors the message text. Default: the icon color.
	TextColor Color
	// Badge renders iconOrType as an upper-cased label on the icon color.
	Badge bool
	// Newline appends an extra line break to every line.
	Newline bool
}

// NewFancyFormatter returns a printer that writes every message line as
// "<icon> <text>" to the target.
func NewFancyFormatter(iconOrType string, iconColor Color, opts FancyOptions) func(messages ...any) {
	target := opts.Target
	if target == nil {
		target = stdoutTarget
	}
	textColor := opts.TextColor
	if textColor == "" {
		textColor = iconColor
	}

	return func(messages ...any) {
		icon := createIcon(iconOrType, iconColor)
		if opts.Badge {
			icon = createBadge(iconOrType, iconColor)
		}
		for _, line := range formatMessages(messages) {
			out := icon + " " + Paint(line, textColor)
			if opts.Newline {
				out += "\n"
			}
			target(out)
		}
	}
}

func createIcon(icon string, c Color) string {
	return Paint(icon, c)
}

func createBadge(kind string, c Color) string {
	label := fmt.Sprintf(ansiBadgeFormat, strings.ToUpper(kind))
	if !ColorEnabled() {
		return label
	}
	return ansi.Color(label, ansiBadgeText+":"+c.ansiStyle())
}

// formatMessages turns each message into one or more lines.
func formatMessages(messages []any) []string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, strings.Split(internal.Stringify(m), "\n")...)
	}
	return lines
}

func stdoutTarget(s string) {
	fmt.Fprintln(os.Stdout, s)
}

func stderrTarget(s string) {
	fmt.Fprintln(os.Stderr, s)
}

// Predefined formatters
var (
	LogFancy     = NewFancyFormatter(IconPointer, ColorGray, FancyOptions{})
	InfoFancy    = NewFancyFormatter(IconInfo, ColorBlue, FancyOptions{Target: stderrTarget})
	WarnFancy    = NewFancyFormatter(IconWarning, ColorYellow, FancyOptions{Target: stderrTarget})
	SuccessFancy = NewFancyFormatter(IconTick, ColorGreen, FancyOptions{})
	ErrorFancy   = NewFancyFormatter(BadgeTypeError, ColorRed, FancyOptions{Target: stderrTarget, Badge: true})
)
