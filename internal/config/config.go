// Package config resolves bark's settings from, in increasing priority,
// built-in defaults, the TOML config file, and environment variables
// (spec.md §6 and §7: "Environment overrides the config file" and
// "Config/env parse failure: non-fatal; defaults used").
//
// Grounded on eviltik-docker-tui's main.go, which reads a handful of
// flags/env vars directly into the model at startup; bark generalizes
// that into a layered Config plus a TOML file. No retrieved example
// parses TOML (peco uses YAML, trellis uses hjson), so this reaches
// past the pack for github.com/pelletier/go-toml/v2, the standard
// ecosystem choice, since spec.md's config path is fixed at
// config.toml.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/bark-log/bark/internal/theme"
)

// Config is bark's fully resolved runtime configuration.
type Config struct {
	MaxLines      int
	LevelColors   bool
	LineWrap      bool
	ShowSidePanel bool
	ExportDir     string
	Theme         string

	// Warnings accumulated while resolving Config, surfaced on the
	// status bar at startup rather than treated as fatal (spec.md §7).
	Warnings []string
}

// Default returns bark's built-in defaults, used before any file or env
// override is applied.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		MaxLines:      10_000,
		LevelColors:   true,
		LineWrap:      false,
		ShowSidePanel: true,
		ExportDir:     home,
		Theme:         theme.DefaultName,
	}
}

// fileConfig mirrors the TOML schema from spec.md §6.
type fileConfig struct {
	MaxLines      *int    `toml:"max_lines"`
	LevelColors   *bool   `toml:"level_colors"`
	LineWrap      *bool   `toml:"line_wrap"`
	ShowSidePanel *bool   `toml:"show_side_panel"`
	ExportDir     *string `toml:"export_dir"`
	Theme         *string `toml:"theme"`
}

// ConfigPath resolves the config file location: $XDG_CONFIG_HOME/bark/config.toml,
// falling back to ~/.config/bark/config.toml.
func ConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bark", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bark", "config.toml")
}

// Load resolves Config by layering the file at ConfigPath() and then
// environment variables on top of Default(). A missing file is not a
// warning (most installs have none); a present-but-invalid file is.
func Load() Config {
	cfg := Default()
	cfg = applyFile(cfg, ConfigPath())
	cfg = applyEnv(cfg)
	return cfg
}

func applyFile(cfg Config, path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg // absent config file: silently use defaults
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		cfg.Warnings = append(cfg.Warnings, "config: invalid file, using defaults: "+err.Error())
		return cfg
	}

	if fc.MaxLines != nil && *fc.MaxLines > 0 {
		cfg.MaxLines = *fc.MaxLines
	}
	if fc.LevelColors != nil {
		cfg.LevelColors = *fc.LevelColors
	}
	if fc.LineWrap != nil {
		cfg.LineWrap = *fc.LineWrap
	}
	if fc.ShowSidePanel != nil {
		cfg.ShowSidePanel = *fc.ShowSidePanel
	}
	if fc.ExportDir != nil && *fc.ExportDir != "" {
		cfg.ExportDir = *fc.ExportDir
	}
	if fc.Theme != nil {
		if _, ok := theme.Get(*fc.Theme); ok {
			cfg.Theme = *fc.Theme
		} else {
			cfg.Warnings = append(cfg.Warnings, "config: unknown theme "+*fc.Theme+", using "+cfg.Theme)
		}
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if v, ok := os.LookupEnv("BARK_MAX_LINES"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxLines = n
		} else {
			cfg.Warnings = append(cfg.Warnings, "config: invalid BARK_MAX_LINES, using "+strconv.Itoa(cfg.MaxLines))
		}
	}
	if v, ok := os.LookupEnv("BARK_LEVEL_COLORS"); ok {
		if b, ok := parseBool(v); ok {
			cfg.LevelColors = b
		} else {
			cfg.Warnings = append(cfg.Warnings, "config: invalid BARK_LEVEL_COLORS")
		}
	}
	if v, ok := os.LookupEnv("BARK_LINE_WRAP"); ok {
		if b, ok := parseBool(v); ok {
			cfg.LineWrap = b
		} else {
			cfg.Warnings = append(cfg.Warnings, "config: invalid BARK_LINE_WRAP")
		}
	}
	if v, ok := os.LookupEnv("BARK_SIDE_PANEL"); ok {
		if b, ok := parseBool(v); ok {
			cfg.ShowSidePanel = b
		} else {
			cfg.Warnings = append(cfg.Warnings, "config: invalid BARK_SIDE_PANEL")
		}
	}
	if v, ok := os.LookupEnv("BARK_EXPORT_DIR"); ok {
		if info, err := os.Stat(v); err == nil && info.IsDir() {
			cfg.ExportDir = v
		} else {
			cfg.Warnings = append(cfg.Warnings, "config: BARK_EXPORT_DIR is not a writable directory, using "+cfg.ExportDir)
		}
	}
	if v, ok := os.LookupEnv("BARK_THEME"); ok {
		if _, ok := theme.Get(v); ok {
			cfg.Theme = v
		} else {
			cfg.Warnings = append(cfg.Warnings, "config: unknown BARK_THEME "+v+", using "+cfg.Theme)
		}
	}
	return cfg
}

// parseBool accepts the 1|true|0|false forms spec.md §6 specifies.
func parseBool(v string) (bool, bool) {
	switch v {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	default:
		return false, false
	}
}
