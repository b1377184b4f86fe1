package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds the output destination.
type outputFlags struct {
	path string // empty = stdout
}

// highlightFlags holds flags for the highlight command.
type highlightFlags struct {
	common commonFlags
	output outputFlags
	theme  string
	colors []string // category=color pairs
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common    commonFlags
	output    outputFlags
	page      bool
	watch     bool
	style     string
	template  string
	title     string
	codeStyle string
	assetPath string
	hardWraps bool
}

// actionFlags holds flags for the action command.
type actionFlags struct {
	common    commonFlags
	output    outputFlags
	line      int
	selection string // "start:end" rune offsets
	maxLength int
}

// toggleFlags holds flags for the toggle command.
type toggleFlags struct {
	common commonFlags
	output outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addOutputFlags adds the output flag to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output file (default: stdout)")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting and
// prints usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// highlightFlagSet registers the highlight command flags into f.
func highlightFlagSet(f *highlightFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("highlight", w, printHighlightUsage)
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	fs.StringVar(&f.theme, "theme", "", "chroma style seeding the colors")
	fs.StringArrayVar(&f.colors, "color", nil, "category=color override (repeatable)")
	return fs
}

// previewFlagSet registers the preview command flags into f.
func previewFlagSet(f *previewFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("preview", w, printPreviewUsage)
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	fs.BoolVar(&f.page, "page", false, "wrap the fragment in a full HTML page")
	fs.BoolVarP(&f.watch, "watch", "w", false, "re-render when the input file changes")
	fs.StringVar(&f.style, "style", "", "page stylesheet name")
	fs.StringVar(&f.template, "template", "", "page template name")
	fs.StringVar(&f.title, "title", "", "page title")
	fs.StringVar(&f.codeStyle, "code-style", "", "chroma style for fenced code")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.hardWraps, "hard-wraps", false, "render single newlines as line breaks")
	return fs
}

// actionFlagSet registers the action command flags into f.
func actionFlagSet(f *actionFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("action", w, printActionUsage)
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	fs.IntVarP(&f.line, "line", "l", 0, "target 1-based line instead of the selection")
	fs.StringVarP(&f.selection, "selection", "s", "", "selection as start:end rune offsets (default: end of input)")
	fs.IntVar(&f.maxLength, "max-length", -1, "reject results longer than n characters (0 = unlimited)")
	return fs
}

// toggleFlagSet registers the toggle command flags into f.
func toggleFlagSet(f *toggleFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("toggle", w, printToggleUsage)
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	return fs
}

// parseHighlightFlags parses highlight command flags and returns positional args.
func parseHighlightFlags(args []string, stderr io.Writer) (*highlightFlags, []string, error) {
	f := &highlightFlags{}
	fs := highlightFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string, stderr io.Writer) (*previewFlags, []string, error) {
	f := &previewFlags{}
	fs := previewFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseActionFlags parses action command flags and returns positional args.
func parseActionFlags(args []string, stderr io.Writer) (*actionFlags, []string, error) {
	f := &actionFlags{}
	fs := actionFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseToggleFlags parses toggle command flags and returns positional args.
func parseToggleFlags(args []string, stderr io.Writer) (*toggleFlags, []string, error) {
	f := &toggleFlags{}
	fs := toggleFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// commonFlagSet registers only the common flags.
func commonFlagSet(name string, f *commonFlags, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := newFlagSet(name, w, usage)
	addCommonFlags(fs, f)
	return fs
}

// parseCommonFlags parses commands that take only the common flags.
func parseCommonFlags(name string, args []string, stderr io.Writer, usage func(io.Writer)) (*commonFlags, []string, error) {
	f := &commonFlags{}
	fs := commonFlagSet(name, f, stderr, usage)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
