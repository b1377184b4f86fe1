package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Editor.ViewMode != "split" {
		t.Errorf("Editor.ViewMode = %q, want %q", cfg.Editor.ViewMode, "split")
	}
	if cfg.Editor.Filename != "document.md" {
		t.Errorf("Editor.Filename = %q, want %q", cfg.Editor.Filename, "document.md")
	}
	if cfg.Preview.CodeStyle != "monokai" || cfg.Preview.Style != "default" || cfg.Preview.Template != "page" {
		t.Errorf("Preview = %+v", cfg.Preview)
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit is invalid", "12345678901", 10, true},
		{"limit counts bytes", "ééééé", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test", tt.value, tt.maxLength)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "every view mode",
			modify: func(c *Config) { c.Editor.ViewMode = "preview" },
		},
		{
			name:   "empty view mode",
			modify: func(c *Config) { c.Editor.ViewMode = "" },
		},
		{
			name:    "unknown view mode",
			modify:  func(c *Config) { c.Editor.ViewMode = "tabs" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative max length",
			modify:  func(c *Config) { c.Editor.MaxLength = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "huge max length",
			modify:  func(c *Config) { c.Editor.MaxLength = MaxDocumentLength + 1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "filename with separator",
			modify:  func(c *Config) { c.Editor.Filename = "../notes.md" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "long placeholder",
			modify:  func(c *Config) { c.Editor.Placeholder = strings.Repeat("p", MaxPlaceholderLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name: "valid colors",
			modify: func(c *Config) {
				c.Highlight.Colors = map[string]string{"heading": "#112233", "bold": "rgb(1, 2, 3)", "link": "teal"}
			},
		},
		{
			name:    "unknown color category",
			modify:  func(c *Config) { c.Highlight.Colors = map[string]string{"title": "#fff"} },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "color with css injection",
			modify:  func(c *Config) { c.Highlight.Colors = map[string]string{"bold": "red; background:url(x)"} },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "long theme",
			modify:  func(c *Config) { c.Highlight.Theme = strings.Repeat("t", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "long code style",
			modify:  func(c *Config) { c.Preview.CodeStyle = strings.Repeat("c", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "long title",
			modify:  func(c *Config) { c.Preview.Title = strings.Repeat("x", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "long base path",
			modify:  func(c *Config) { c.Assets.BasePath = "/" + strings.Repeat("a", MaxPathLength) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("file path loads over defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "editor.yaml", `editor:
  viewMode: edit
  maxLength: 500
highlight:
  theme: github
  colors:
    heading: "#0055aa"
preview:
  codeStyle: dracula
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Editor.ViewMode != "edit" || cfg.Editor.MaxLength != 500 {
			t.Errorf("Editor = %+v", cfg.Editor)
		}
		if cfg.Highlight.Theme != "github" || cfg.Highlight.Colors["heading"] != "#0055aa" {
			t.Errorf("Highlight = %+v", cfg.Highlight)
		}
		if cfg.Preview.CodeStyle != "dracula" {
			t.Errorf("Preview.CodeStyle = %q, want %q", cfg.Preview.CodeStyle, "dracula")
		}
		if cfg.Editor.Filename != "document.md" || cfg.Preview.Template != "page" {
			t.Errorf("missing fields lost their defaults: %+v", cfg)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "invalid.yaml", "editor: [unclosed")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "unknown.yaml", "editor:\n  fontSize: 12\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "editor:\n  viewMode: fullscreen\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	t.Run("resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yaml", "preview:\n  style: dark\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Preview.Style != "dark" {
			t.Errorf("Preview.Style = %q, want %q", cfg.Preview.Style, "dark")
		}
	})

	t.Run("prefers yaml over yml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yaml", "preview:\n  title: yaml\n")
		writeConfig(t, dir, "myconfig.yml", "preview:\n  title: yml\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Preview.Title != "yaml" {
			t.Errorf("Preview.Title = %q, want %q (should prefer .yaml)", cfg.Preview.Title, "yaml")
		}
	})

	t.Run("resolves from user config directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
		t.Setenv("AppData", filepath.Join(home, "AppData"))

		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			t.Skip("cannot get user config dir")
		}
		appDir := filepath.Join(userConfigDir, "go-mdedit")
		if err := os.MkdirAll(appDir, 0750); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		writeConfig(t, appDir, "userconf.yml", "editor:\n  readOnly: true\n")
		t.Chdir(t.TempDir())

		cfg, err := LoadConfig("userconf")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Editor.ReadOnly {
			t.Error("Editor.ReadOnly = false, want true")
		}
	})

	t.Run("missing name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("absent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "absent.yaml") || !strings.Contains(err.Error(), "absent.yml") {
			t.Errorf("error %q should list tried paths", err)
		}
	})
}

func TestConfig_Marshal(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Highlight.Colors = map[string]string{"bold": "#ff0000"}
	out, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	path := writeConfig(t, t.TempDir(), "dump.yaml", string(out))
	back, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(Marshal()) error = %v\n%s", err, out)
	}
	if back.Highlight.Colors["bold"] != "#ff0000" || back.Editor.ViewMode != "split" {
		t.Errorf("round trip = %+v", back)
	}
}
