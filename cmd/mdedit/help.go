package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  highlight  Print the colored overlay markup for a document")
	fmt.Fprintln(w, "  preview    Render a document to sanitized HTML")
	fmt.Fprintln(w, "  action     Apply a toolbar action to a document")
	fmt.Fprintln(w, "  toggle     Flip a task checkbox by index")
	fmt.Fprintln(w, "  actions    List the available actions")
	fmt.Fprintln(w, "  styles     List page stylesheets and code styles")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input is read from the file argument, or stdin when it is omitted or \"-\".")
	fmt.Fprintln(w, "Run 'mdedit help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags every command accepts.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
}

// printHighlightUsage prints usage for the highlight command.
func printHighlightUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit highlight [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the sanitized overlay markup that colors markdown syntax.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --theme <name>        Chroma style seeding the palette")
	fmt.Fprintln(w, "      --color <cat=color>   Override one category, repeatable")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit preview [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown to a sanitized HTML fragment or page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --page                Wrap the fragment in a full HTML page")
	fmt.Fprintln(w, "  -w, --watch               Re-render when the input file changes")
	fmt.Fprintln(w, "      --style <name>        Page stylesheet (default, dark)")
	fmt.Fprintln(w, "      --template <name>     Page template")
	fmt.Fprintln(w, "      --title <s>           Page title")
	fmt.Fprintln(w, "      --code-style <name>   Chroma style for fenced code")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --hard-wraps          Render single newlines as line breaks")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printActionUsage prints usage for the action command.
func printActionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit action <name> [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Apply a toolbar action and print the edited document.")
	fmt.Fprintln(w, "Run 'mdedit actions' for the list of names.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "  -l, --line <n>            Target 1-based line instead of the selection")
	fmt.Fprintln(w, "  -s, --selection <s:e>     Selection as rune offsets (default: end of input)")
	fmt.Fprintln(w, "      --max-length <n>      Reject results longer than n characters")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printToggleUsage prints usage for the toggle command.
func printToggleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit toggle <index> [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flip the index-th task checkbox (0-based, in document order).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printActionsUsage prints usage for the actions command.
func printActionsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit actions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the available actions with their group and title.")
}

// printStylesUsage prints usage for the styles command.
func printStylesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit styles [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List page stylesheets and templates, including those of assets.basePath,")
	fmt.Fprintln(w, "and the chroma styles usable as --theme or --code-style.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after applying the config file and MDEDIT_* variables.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "highlight":
		printHighlightUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "action":
		printActionUsage(env.Stdout)
	case "toggle":
		printToggleUsage(env.Stdout)
	case "actions":
		printActionsUsage(env.Stdout)
	case "styles":
		printStylesUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdedit version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdedit help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
