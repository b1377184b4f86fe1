// Package hints appends actionable advice to error messages. Every hint
// is rendered as "\n  hint: <text>" so callers can concatenate it to
// err.Error() without further formatting.
package hints

import (
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-mdedit/internal/fileutil"
)

// Env is the slice of the process environment hints depend on.
type Env struct {
	Lookup      func(key string) string
	InContainer func() bool
}

// ProcessEnv reads the real environment.
var ProcessEnv = Env{Lookup: os.Getenv, InContainer: inContainer}

// containerMarkers are files created by Docker and Podman.
var containerMarkers = []string{"/.dockerenv", "/run/.containerenv"}

func inContainer() bool {
	for _, m := range containerMarkers {
		if fileutil.FileExists(m) {
			return true
		}
	}
	return false
}

// ciVars are set by the common CI providers.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

func (e Env) inCI() bool {
	for _, v := range ciVars {
		if e.Lookup(v) != "" {
			return true
		}
	}
	return false
}

// BrowserConnect returns hints for a headless browser that failed to
// start, used by the browser-backed tests.
func (e Env) BrowserConnect() string {
	var list []string
	sandboxed := e.Lookup("ROD_NO_SANDBOX") != "1"
	if sandboxed && (e.inCI() || e.InContainer()) {
		list = append(list, "set ROD_NO_SANDBOX=1 inside containers and CI")
	}
	if e.Lookup("ROD_BROWSER_BIN") == "" {
		list = append(list, "set ROD_BROWSER_BIN to a Chrome or Chromium binary")
	}
	return join(list)
}

// ForBrowserConnect is ProcessEnv.BrowserConnect.
func ForBrowserConnect() string {
	return ProcessEnv.BrowserConnect()
}

// ForConfigNotFound suggests --config, or creating the user-level file
// when it was among the searched paths.
func ForConfigNotFound(searched []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searched {
		if strings.Contains(slashed(p), ".config/go-mdedit") {
			return format(hint + " or create " + p)
		}
	}
	return format(hint)
}

// slashed normalizes separators so the user config dir matches on Windows.
func slashed(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the page stylesheets that do exist.
func ForStyleNotFound(available []string) string {
	return choices(available)
}

// ForUnknownAction lists the registered action names.
func ForUnknownAction(available []string) string {
	return choices(available)
}

// codeStyleSample caps how many chroma styles are named inline.
const codeStyleSample = 8

// ForCodeStyle names a few chroma styles and points at the styles command.
func ForCodeStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	sample := available[:min(len(available), codeStyleSample)]
	return format("for example: " + strings.Join(sample, ", ") + "; run 'mdedit styles' for all")
}

func ForCheckboxIndex(count int) string {
	if count == 0 {
		return format("the document has no task checkboxes")
	}
	return format(fmt.Sprintf("indexes start at 0; the document has %d checkbox(es)", count))
}

func choices(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

func join(list []string) string {
	return format(strings.Join(list, "; "))
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
