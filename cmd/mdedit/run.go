package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdedit"
	"github.com/alnah/go-mdedit/internal/config"
	"github.com/alnah/go-mdedit/internal/fileutil"
	"github.com/alnah/go-mdedit/internal/hints"
	"github.com/alnah/go-mdedit/internal/preview"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrLineOutOfRange = errors.New("line out of range")
	ErrCheckboxIndex  = errors.New("checkbox index out of range")
)

// maxInputSize caps documents read from files or stdin.
const maxInputSize = config.MaxDocumentLength

// command runs one subcommand with its arguments (command name excluded).
type command func(ctx context.Context, args []string, env *Environment) error

var commands = map[string]command{
	"highlight":  runHighlight,
	"preview":    runPreview,
	"action":     runAction,
	"toggle":     runToggle,
	"actions":    runActions,
	"styles":     runStyles,
	"config":     runConfig,
	"completion": runCompletion,
}

// runMain dispatches args (program name first) and returns the exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[1], args[2:]
	switch name {
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdedit %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", name)
		printUsage(env.Stderr)
		return ExitUsage
	}

	err := cmd(ctx, rest, env)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// flagError marks flag parsing failures as usage errors. Help requests
// pass through unchanged.
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// loadSettings builds the logger and the effective config:
// defaults, then the config file, then MDEDIT_* variables. Flags are
// merged by each command afterwards.
func loadSettings(f commonFlags, env *Environment) (*config.Config, *slog.Logger, error) {
	logger := newLogger(env.Stderr, f)
	warnUnknownEnvVars(logger, env.Environ())

	envCfg := loadEnvConfig(env.Getenv)
	name := f.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(strings.Split(err.Error(), ", ")))
			}
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	applyEnvConfig(envCfg, cfg)

	logger.Debug("configuration loaded",
		"config", name,
		"theme", cfg.Highlight.Theme,
		"codeStyle", cfg.Preview.CodeStyle,
		"style", cfg.Preview.Style,
	)
	return cfg, logger, nil
}

// newEditor creates an Editor holding text, configured from cfg.
func newEditor(cfg *config.Config, text string) (*mdedit.Editor, error) {
	colors, err := paletteFor(cfg.Highlight)
	if err != nil {
		return nil, err
	}

	previewOpts := []preview.Option{preview.WithCodeStyle(cfg.Preview.CodeStyle)}
	if cfg.Preview.HardWraps {
		previewOpts = append(previewOpts, preview.WithHardWraps())
	}

	opts := []mdedit.EditorOption{
		mdedit.WithDefaultValue(text),
		mdedit.WithReadOnly(cfg.Editor.ReadOnly),
		mdedit.WithMaxLength(cfg.Editor.MaxLength),
		mdedit.WithColors(colors),
		mdedit.WithPreviewOptions(previewOpts...),
	}
	if cfg.Editor.ViewMode != "" {
		opts = append(opts, mdedit.WithDefaultViewMode(mdedit.ViewMode(cfg.Editor.ViewMode)))
	}
	if cfg.Editor.Placeholder != "" {
		opts = append(opts, mdedit.WithPlaceholder(cfg.Editor.Placeholder))
	}
	if cfg.Editor.Filename != "" {
		opts = append(opts, mdedit.WithFilename(cfg.Editor.Filename))
	}

	ed, err := mdedit.NewEditor(opts...)
	if err != nil {
		if errors.Is(err, preview.ErrUnknownCodeStyle) {
			return nil, fmt.Errorf("%w%s", err, hints.ForCodeStyle(styles.Names()))
		}
		return nil, err
	}
	return ed, nil
}

// paletteFor seeds the overlay colors from the theme, then applies the
// per-category overrides.
func paletteFor(h config.HighlightConfig) (mdedit.Colors, error) {
	colors := mdedit.DefaultColors()
	if h.Theme != "" {
		themed, err := mdedit.ColorsFromStyle(h.Theme)
		if err != nil {
			return nil, fmt.Errorf("%w%s", err, hints.ForCodeStyle(styles.Names()))
		}
		colors = themed
	}
	for name, value := range h.Colors {
		colors[mdedit.Category(name)] = value
	}
	return colors, nil
}

// readDocument reads the file at path, or stdin for "" and "-".
func readDocument(path string, env *Environment) (string, error) {
	text, err := fileutil.ReadInput(path, env.Stdin, maxInputSize)
	if err != nil {
		if errors.Is(err, fileutil.ErrInputTooLarge) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return text, nil
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(path, content string, env *Environment) error {
	if path == "" {
		if _, err := io.WriteString(env.Stdout, content); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(path, content); err != nil {
		return fmt.Errorf("%w: %w%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	return nil
}

// argAt returns args[i], or "" when absent.
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
