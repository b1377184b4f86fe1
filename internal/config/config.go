package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdedit/internal/fileutil"
	"github.com/alnah/go-mdedit/internal/highlight"
	"github.com/alnah/go-mdedit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxNameLength        = 64   // style, template and theme names
	MaxFilenameLength    = 255  // download filename
	MaxPlaceholderLength = 200  // empty editor hint
	MaxTitleLength       = 200  // preview page title
	MaxPathLength        = 4096 // assets base path
	MaxDocumentLength    = 10 << 20
)

// View mode names accepted in editor.viewMode.
var viewModes = []string{"edit", "preview", "split"}

// Config holds the editor, overlay and preview settings.
type Config struct {
	Editor    EditorConfig    `yaml:"editor"`
	Highlight HighlightConfig `yaml:"highlight"`
	Preview   PreviewConfig   `yaml:"preview"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// EditorConfig defines the editing surface.
type EditorConfig struct {
	ViewMode    string `yaml:"viewMode"`    // "edit", "preview", "split" (default: "split")
	ReadOnly    bool   `yaml:"readOnly"`
	MaxLength   int    `yaml:"maxLength"`   // characters, 0 = unlimited
	Placeholder string `yaml:"placeholder"` // empty = built-in hint
	Filename    string `yaml:"filename"`    // download name (default: "document.md")
}

// HighlightConfig defines overlay colors.
type HighlightConfig struct {
	Theme  string            `yaml:"theme"`  // chroma style seeding the palette (empty = built-in)
	Colors map[string]string `yaml:"colors"` // per-category overrides, applied after the theme
}

// PreviewConfig defines the rendered preview.
type PreviewConfig struct {
	CodeStyle string `yaml:"codeStyle"` // chroma style for fenced code (default: "monokai")
	Style     string `yaml:"style"`     // page stylesheet name (default: "default")
	Template  string `yaml:"template"`  // page template name (default: "page")
	Title     string `yaml:"title"`     // page title (default: "Preview")
	HardWraps bool   `yaml:"hardWraps"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Editor.ViewMode != "" && !contains(viewModes, c.Editor.ViewMode) {
		return fmt.Errorf("%w: editor.viewMode %q (must be edit, preview, or split)", ErrInvalidValue, c.Editor.ViewMode)
	}
	if c.Editor.MaxLength < 0 || c.Editor.MaxLength > MaxDocumentLength {
		return fmt.Errorf("%w: editor.maxLength must be between 0 and %d, got %d", ErrInvalidValue, MaxDocumentLength, c.Editor.MaxLength)
	}
	if err := validateFieldLength("editor.placeholder", c.Editor.Placeholder, MaxPlaceholderLength); err != nil {
		return err
	}
	if err := validateFieldLength("editor.filename", c.Editor.Filename, MaxFilenameLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Editor.Filename, "/\\") {
		return fmt.Errorf("%w: editor.filename %q must not contain a path separator", ErrInvalidValue, c.Editor.Filename)
	}

	if err := validateFieldLength("highlight.theme", c.Highlight.Theme, MaxNameLength); err != nil {
		return err
	}
	if err := validateColors(c.Highlight.Colors); err != nil {
		return err
	}

	if err := validateFieldLength("preview.codeStyle", c.Preview.CodeStyle, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.style", c.Preview.Style, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.template", c.Preview.Template, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.title", c.Preview.Title, MaxTitleLength); err != nil {
		return err
	}

	return validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength)
}

// validateColors rejects unknown categories and values that are not
// plain CSS colors.
func validateColors(colors map[string]string) error {
	known := make([]string, 0, len(highlight.Categories()))
	for _, c := range highlight.Categories() {
		known = append(known, string(c))
	}
	for name, value := range colors {
		if !contains(known, name) {
			return fmt.Errorf("%w: highlight.colors: unknown category %q", ErrInvalidValue, name)
		}
		if !highlight.ValidColor(value) {
			return fmt.Errorf("%w: highlight.colors.%s: %q is not a color", ErrInvalidValue, name, value)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			ViewMode: "split",
			Filename: "document.md",
		},
		Preview: PreviewConfig{
			CodeStyle: "monokai",
			Style:     "default",
			Template:  "page",
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(f, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal encodes the config as YAML, the format LoadConfig reads.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdedit/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdedit", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
