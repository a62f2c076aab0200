package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/BRAVO68WEB/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath  string
	dataJSON      string
	dataFilePath  string
	outputPath    string
	configPath    string
	ignoreMissing bool
	foldCase      bool
	stripTags     bool
	verbose       bool
	quiet         bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	fileCfg, err := loadConfig(cfg.configPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidConfig, err)
		return ExitCodeInputError
	}

	opts, err := renderOptions(cfg, fileCfg)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidConfig, err)
		return ExitCodeUsageError
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()
	opts = append(opts, utils.WithLogger(logger))

	// Read template
	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	// Parse data
	data, err := loadData(cfg.dataJSON, cfg.dataFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidData, err)
		return ExitCodeInputError
	}

	renderer, err := utils.New(opts...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidConfig, err)
		return ExitCodeUsageError
	}

	result, err := renderer.Render(string(templateSource), data)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		var mv *utils.MissingValueError
		if errors.As(err, &mv) {
			if len(mv.Suggestions) > 0 && !cfg.quiet {
				fmt.Fprintf(stderr, FmtErrorWithDetail, MsgDidYouMean, strings.Join(mv.Suggestions, utils.SuggestionSeparator))
			}
			return ExitCodeMissingValue
		}
		return ExitCodeError
	}

	// Quiet mode only checks that the template renders when writing to stdout
	if cfg.quiet && cfg.outputPath == FlagDefaultOutput {
		return ExitCodeSuccess
	}

	// Write output
	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.dataJSON, FlagData, "", "")
	fs.StringVar(&cfg.dataJSON, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.BoolVar(&cfg.ignoreMissing, FlagIgnoreMissing, false, "")
	fs.BoolVar(&cfg.foldCase, FlagFoldCase, false, "")
	fs.BoolVar(&cfg.stripTags, FlagStripTags, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")
	fs.BoolVar(&cfg.quiet, FlagQuiet, false, "")
	fs.BoolVar(&cfg.quiet, FlagQuietShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}

// renderOptions merges flags over the config file. A flag can only switch a
// setting on.
func renderOptions(cfg *renderConfig, fileCfg *fileConfig) ([]utils.Option, error) {
	escaper := utils.Escaper(utils.HTMLEscaper)
	switch fileCfg.Escape {
	case "", EscapeModeHTML:
	case EscapeModeStrip:
		escaper = utils.StripTagsEscaper
	default:
		return nil, fmt.Errorf(FmtErrorValue, ErrMsgInvalidEscapeMode, fileCfg.Escape)
	}
	if cfg.stripTags {
		escaper = utils.StripTagsEscaper
	}

	return []utils.Option{
		utils.WithIgnoreMissing(cfg.ignoreMissing || fileCfg.IgnoreMissing),
		utils.WithFoldCase(cfg.foldCase || fileCfg.FoldCase),
		utils.WithEscaper(escaper),
	}, nil
}

// newLogger returns a console logger on stderr when verbose, otherwise a no-op logger.
func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(stderr), zapcore.DebugLevel)
	return zap.New(core)
}
