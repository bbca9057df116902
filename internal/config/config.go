// Package config provides configuration types and defaults for spangrid.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/spangrid/internal/log"
	"github.com/zjrosen/spangrid/internal/navigator"
	"github.com/zjrosen/spangrid/internal/selection"
)

// Config holds all configuration options for spangrid.
type Config struct {
	Sheet          string          `mapstructure:"sheet"`
	AutoReload     bool            `mapstructure:"auto_reload"`
	ReloadDebounce time.Duration   `mapstructure:"reload_debounce"`
	UI             UIConfig        `mapstructure:"ui"`
	Selection      SelectionConfig `mapstructure:"selection"`
	Theme          ThemeConfig     `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowHeader     bool `mapstructure:"show_header"`
	ShowHelp       bool `mapstructure:"show_help"`
	ShowStatusBar  bool `mapstructure:"show_status_bar"`
	MinColumnWidth int  `mapstructure:"min_column_width"`
}

// SelectionConfig controls which axes the grid may select along.
type SelectionConfig struct {
	Rows    bool   `mapstructure:"rows"`
	Columns bool   `mapstructure:"columns"`
	Mode    string `mapstructure:"mode"` // single, single_interval, multiple_interval (default)
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	Preset string `mapstructure:"preset"`

	// Colors overrides individual color tokens, keyed by dotted token name.
	// Viper must be configured with a non-dot key delimiter for the keys
	// to survive unmarshaling.
	Colors map[string]string `mapstructure:"colors"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		AutoReload:     true,
		ReloadDebounce: 300 * time.Millisecond,
		UI: UIConfig{
			ShowHeader:     true,
			ShowHelp:       true,
			ShowStatusBar:  true,
			MinColumnWidth: 4,
		},
		Selection: SelectionConfig{
			Rows: true,
			Mode: selection.MultipleInterval.String(),
		},
	}
}

// Validate checks option values that cannot be expressed in the YAML shape.
func (c Config) Validate() error {
	var errs []error
	if c.ReloadDebounce < 0 {
		errs = append(errs, fmt.Errorf("reload_debounce must not be negative, got %s", c.ReloadDebounce))
	}
	if c.UI.MinColumnWidth < 1 {
		errs = append(errs, fmt.Errorf("ui.min_column_width must be at least 1, got %d", c.UI.MinColumnWidth))
	}
	if _, err := selection.ParseMode(c.Selection.Mode); err != nil {
		errs = append(errs, fmt.Errorf("selection.mode: %w", err))
	}
	return errors.Join(errs...)
}

// NavigatorOptions converts the selection settings. Validate must have
// accepted the config.
func (c Config) NavigatorOptions() navigator.Options {
	mode, err := selection.ParseMode(c.Selection.Mode)
	if err != nil {
		mode = selection.MultipleInterval
	}
	return navigator.Options{
		RowSelection:    c.Selection.Rows,
		ColumnSelection: c.Selection.Columns,
		RowMode:         mode,
		ColumnMode:      mode,
	}
}

// DefaultConfigPath returns ~/.config/spangrid/config.yaml, or an empty
// string when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "spangrid", "config.yaml")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# spangrid configuration

# Sheet to open when no file argument is given
# sheet: ~/sheets/schedule.yaml

# Reload the sheet when it changes on disk
auto_reload: true
reload_debounce: 300ms

ui:
  show_header: true       # Column titles above the grid
  show_help: true         # Key help below the grid
  show_status_bar: true   # Lead position and warnings
  min_column_width: 4

# Selection behaviour
selection:
  rows: true
  columns: false
  mode: multiple_interval # single, single_interval or multiple_interval

# Theme configuration
theme:
  # Use a preset (run 'spangrid themes' to see available presets):
  # preset: nord
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   grid.lead: "#FF79C6"
  #   grid.selection: "#44475A"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
