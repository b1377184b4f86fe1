package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-mdedit"
	"github.com/alnah/go-mdedit/internal/assets"
	"github.com/alnah/go-mdedit/internal/config"
	"github.com/alnah/go-mdedit/internal/hints"
	"github.com/alnah/go-mdedit/internal/preview"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

// runHighlight prints the overlay markup for a document.
func runHighlight(_ context.Context, args []string, env *Environment) error {
	f, args, err := parseHighlightFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: highlight takes at most one file", ErrUsage)
	}

	cfg, logger, err := loadSettings(f.common, env)
	if err != nil {
		return err
	}
	if f.theme != "" {
		cfg.Highlight.Theme = f.theme
	}
	for _, pair := range f.colors {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("%w: --color %q must be category=color", ErrUsage, pair)
		}
		if cfg.Highlight.Colors == nil {
			cfg.Highlight.Colors = map[string]string{}
		}
		cfg.Highlight.Colors[name] = value
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := readDocument(argAt(args, 0), env)
	if err != nil {
		return err
	}
	ed, err := newEditor(cfg, text)
	if err != nil {
		return err
	}

	logger.Debug("highlighted", "chars", ed.CharCount(), "theme", cfg.Highlight.Theme)
	return writeOutput(f.output.path, ed.Overlay(), env)
}

// runPreview renders a document to HTML, once or on every change.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	f, args, err := parsePreviewFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: preview takes at most one file", ErrUsage)
	}
	path := argAt(args, 0)
	if f.watch && (path == "" || path == "-") {
		return fmt.Errorf("%w: --watch needs a file argument", ErrUsage)
	}

	cfg, logger, err := loadSettings(f.common, env)
	if err != nil {
		return err
	}
	mergePreviewFlags(f, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	loader, err := assets.NewResolver(cfg.Assets.BasePath)
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}
	defer func() { _ = loader.Close() }()
	title := cfg.Preview.Title
	if title == "" && path != "" && path != "-" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	text, err := readDocument(path, env)
	if err != nil {
		return err
	}
	ed, err := newEditor(cfg, text)
	if err != nil {
		return err
	}

	render := func() error {
		html, err := ed.Preview(ctx)
		if err != nil {
			return err
		}
		if f.page {
			html, err = preview.Page(html, preview.PageOptions{
				Title:     title,
				Style:     cfg.Preview.Style,
				Template:  cfg.Preview.Template,
				CodeStyle: cfg.Preview.CodeStyle,
				Loader:    loader,
			})
			if errors.Is(err, assets.ErrStyleNotFound) {
				return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(loader.Names(assets.Style)))
			}
			if err != nil {
				return err
			}
		}
		return writeOutput(f.output.path, html, env)
	}

	if err := render(); err != nil {
		return err
	}
	logger.Debug("rendered", "file", path, "checkboxes", mdedit.CountCheckboxes(ed.Value()))
	if !f.watch {
		return nil
	}

	logger.Info("watching for changes", "file", path)
	return watchFile(ctx, path, watchDebounce, logger, func() {
		text, err := readDocument(path, env)
		if err != nil {
			logger.Error("reading input failed", "file", path, "error", err)
			return
		}
		ed.SetValue(text)
		if err := render(); err != nil {
			logger.Error("render failed", "file", path, "error", err)
			return
		}
		logger.Info("rendered", "file", path)
	})
}

// mergePreviewFlags applies explicitly set preview flags over cfg.
func mergePreviewFlags(f *previewFlags, cfg *config.Config) {
	if f.style != "" {
		cfg.Preview.Style = f.style
	}
	if f.template != "" {
		cfg.Preview.Template = f.template
	}
	if f.title != "" {
		cfg.Preview.Title = f.title
	}
	if f.codeStyle != "" {
		cfg.Preview.CodeStyle = f.codeStyle
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.hardWraps {
		cfg.Preview.HardWraps = true
	}
}

// runAction applies one catalogued action and prints the result.
func runAction(_ context.Context, args []string, env *Environment) error {
	f, args, err := parseActionFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: action name required%s", ErrUsage, hints.ForUnknownAction(actionNames()))
	}
	if len(args) > 2 {
		return fmt.Errorf("%w: action takes a name and at most one file", ErrUsage)
	}
	name := args[0]

	cfg, logger, err := loadSettings(f.common, env)
	if err != nil {
		return err
	}
	if f.maxLength >= 0 {
		cfg.Editor.MaxLength = f.maxLength
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := readDocument(argAt(args, 1), env)
	if err != nil {
		return err
	}
	ed, err := newEditor(cfg, text)
	if err != nil {
		return err
	}
	if ed.ReadOnly() {
		return fmt.Errorf("action %s: %w", name, mdedit.ErrReadOnly)
	}

	buf := mdedit.NewStringBuffer(text)
	if f.selection != "" {
		start, end, err := parseSelection(f.selection)
		if err != nil {
			return err
		}
		buf.SetSelection(start, end)
	}
	var opts []mdedit.Option
	if f.line != 0 {
		if lines := strings.Count(text, "\n") + 1; f.line < 1 || f.line > lines {
			return fmt.Errorf("%w: --line %d, document has %d line(s)", ErrLineOutOfRange, f.line, lines)
		}
		opts = append(opts, mdedit.OnLine(f.line))
	}

	ed.Attach(buf)
	if err := ed.Actions().Apply(name, opts...); err != nil {
		if errors.Is(err, mdedit.ErrUnknownAction) {
			return fmt.Errorf("%w%s", err, hints.ForUnknownAction(actionNames()))
		}
		return err
	}

	start, end := buf.Selection()
	logger.Debug("action applied", "action", name, "selection", fmt.Sprintf("%d:%d", start, end))
	return writeOutput(f.output.path, ed.Value(), env)
}

// parseSelection parses "start:end" rune offsets. A single number is a caret.
func parseSelection(s string) (int, int, error) {
	startStr, endStr, found := strings.Cut(s, ":")
	start, err := strconv.Atoi(startStr)
	if err != nil || start < 0 {
		return 0, 0, fmt.Errorf("%w: --selection %q must be start:end", ErrUsage, s)
	}
	if !found {
		return start, start, nil
	}
	end, err := strconv.Atoi(endStr)
	if err != nil || end < 0 {
		return 0, 0, fmt.Errorf("%w: --selection %q must be start:end", ErrUsage, s)
	}
	return start, end, nil
}

func actionNames() []string {
	catalog := mdedit.Catalog()
	names := make([]string, len(catalog))
	for i, a := range catalog {
		names[i] = a.Name
	}
	return names
}

// runToggle flips one task checkbox and prints the result.
func runToggle(_ context.Context, args []string, env *Environment) error {
	f, args, err := parseToggleFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: toggle takes an index and at most one file", ErrUsage)
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: index %q is not a number", ErrUsage, args[0])
	}

	cfg, logger, err := loadSettings(f.common, env)
	if err != nil {
		return err
	}
	text, err := readDocument(argAt(args, 1), env)
	if err != nil {
		return err
	}
	ed, err := newEditor(cfg, text)
	if err != nil {
		return err
	}
	if ed.ReadOnly() {
		return fmt.Errorf("toggle: %w", mdedit.ErrReadOnly)
	}

	if !ed.ToggleCheckbox(index) {
		return fmt.Errorf("%w: %d%s", ErrCheckboxIndex, index, hints.ForCheckboxIndex(mdedit.CountCheckboxes(text)))
	}
	logger.Debug("checkbox toggled", "index", index)
	return writeOutput(f.output.path, ed.Value(), env)
}

// runActions lists the action catalog.
func runActions(_ context.Context, args []string, env *Environment) error {
	if _, _, err := parseCommonFlags("actions", args, env.Stderr, printActionsUsage); err != nil {
		return flagError(err)
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGROUP\tTITLE")
	for _, a := range mdedit.Catalog() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name, a.Group, a.Title)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// runStyles lists page assets, including those of the configured asset
// directory, and chroma styles.
func runStyles(_ context.Context, args []string, env *Environment) error {
	f, _, err := parseCommonFlags("styles", args, env.Stderr, printStylesUsage)
	if err != nil {
		return flagError(err)
	}
	cfg, _, err := loadSettings(*f, env)
	if err != nil {
		return err
	}
	loader, err := assets.NewResolver(cfg.Assets.BasePath)
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}
	defer func() { _ = loader.Close() }()

	var b strings.Builder
	b.WriteString("Page styles:\n")
	for _, name := range loader.Names(assets.Style) {
		fmt.Fprintf(&b, "  %s\n", name)
	}
	b.WriteString("Page templates:\n")
	for _, name := range loader.Names(assets.Template) {
		fmt.Fprintf(&b, "  %s\n", name)
	}
	b.WriteString("Code styles:\n")
	for _, name := range styles.Names() {
		fmt.Fprintf(&b, "  %s\n", name)
	}
	return writeOutput("", b.String(), env)
}

// runConfig prints the effective configuration as YAML.
func runConfig(_ context.Context, args []string, env *Environment) error {
	f, _, err := parseCommonFlags("config", args, env.Stderr, printConfigUsage)
	if err != nil {
		return flagError(err)
	}
	cfg, _, err := loadSettings(*f, env)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	out, err := cfg.Marshal()
	if err != nil {
		return err
	}
	return writeOutput("", string(out), env)
}
