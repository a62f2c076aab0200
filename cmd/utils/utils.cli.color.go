package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BRAVO68WEB/utils"
)

// colorConfig holds parsed color command configuration
type colorConfig struct {
	hex    string
	rgb    string
	format string
}

// colorOutput is the JSON form of a converted color
type colorOutput struct {
	Hex   string   `json:"hex"`
	RGB   [3]uint8 `json:"rgb"`
	Light bool     `json:"light"`
}

func runColor(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseColorFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidColor, err)
		return ExitCodeUsageError
	}

	rgb, err := resolveColor(cfg)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidColor, err)
		return ExitCodeInputError
	}

	out := colorOutput{
		Hex:   utils.RGBToHex(rgb),
		RGB:   rgb,
		Light: utils.IsRGBLight(rgb),
	}

	if cfg.format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	shade := ColorShadeDark
	if out.Light {
		shade = ColorShadeLight
	}
	fmt.Fprintf(stdout, ColorTextTemplate+FmtNewline, out.Hex, rgb[0], rgb[1], rgb[2], shade)
	return ExitCodeSuccess
}

func parseColorFlags(args []string) (*colorConfig, error) {
	fs := flag.NewFlagSet(CmdNameColor, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &colorConfig{}
	fs.StringVar(&cfg.hex, FlagHex, "", "")
	fs.StringVar(&cfg.hex, FlagHexShort, "", "")
	fs.StringVar(&cfg.rgb, FlagRGB, "", "")
	fs.StringVar(&cfg.rgb, FlagRGBShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if (cfg.hex == "") == (cfg.rgb == "") {
		return nil, errors.New(ErrMsgColorInput)
	}
	if err := validateFormat(cfg.format); err != nil {
		return nil, err
	}

	return cfg, nil
}

func resolveColor(cfg *colorConfig) (utils.RGB, error) {
	if cfg.hex != "" {
		return utils.ParseHex(cfg.hex)
	}
	return parseRGBTriple(cfg.rgb)
}

// parseRGBTriple parses "r,g,b" with each component in 0-255.
func parseRGBTriple(s string) (utils.RGB, error) {
	var rgb utils.RGB
	parts := strings.Split(s, RGBSeparator)
	if len(parts) != RGBComponents {
		return rgb, errors.New(ErrMsgInvalidRGB)
	}
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return rgb, errors.New(ErrMsgInvalidRGB)
		}
		rgb[i] = uint8(n)
	}
	return rgb, nil
}
