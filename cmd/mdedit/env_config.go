package main

import (
	"log/slog"
	"strings"

	"github.com/alnah/go-mdedit/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDEDIT_CONFIG: config file name or path
	Theme      string // MDEDIT_THEME: chroma style seeding overlay colors
	CodeStyle  string // MDEDIT_CODE_STYLE: chroma style for fenced code
	Style      string // MDEDIT_STYLE: preview page stylesheet
}

// knownEnvVars lists valid MDEDIT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDEDIT_CONFIG":     true,
	"MDEDIT_THEME":      true,
	"MDEDIT_CODE_STYLE": true,
	"MDEDIT_STYLE":      true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("MDEDIT_CONFIG"),
		Theme:      getenv("MDEDIT_THEME"),
		CodeStyle:  getenv("MDEDIT_CODE_STYLE"),
		Style:      getenv("MDEDIT_STYLE"),
	}
}

// warnUnknownEnvVars logs a warning for each unrecognized MDEDIT_* variable.
// Helps catch typos like MDEDIT_THEMES instead of MDEDIT_THEME.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, "MDEDIT_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies environment values over the loaded config.
// Precedence is flags > env > config file > defaults; flags are merged
// afterwards by mergeFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Theme != "" {
		cfg.Highlight.Theme = env.Theme
	}
	if env.CodeStyle != "" {
		cfg.Preview.CodeStyle = env.CodeStyle
	}
	if env.Style != "" {
		cfg.Preview.Style = env.Style
	}
}
