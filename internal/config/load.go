package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// KeyDelimiter separates nested viper keys. Color tokens contain dots, so
// the default "." delimiter would split them into nested maps.
const KeyDelimiter = "::"

// NewViper returns a viper instance using KeyDelimiter with every default
// registered.
func NewViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
	SetDefaults(v)
	return v
}

// SetDefaults registers Defaults on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("auto_reload", d.AutoReload)
	v.SetDefault("reload_debounce", d.ReloadDebounce)
	v.SetDefault(key("ui", "show_header"), d.UI.ShowHeader)
	v.SetDefault(key("ui", "show_help"), d.UI.ShowHelp)
	v.SetDefault(key("ui", "show_status_bar"), d.UI.ShowStatusBar)
	v.SetDefault(key("ui", "min_column_width"), d.UI.MinColumnWidth)
	v.SetDefault(key("selection", "rows"), d.Selection.Rows)
	v.SetDefault(key("selection", "columns"), d.Selection.Columns)
	v.SetDefault(key("selection", "mode"), d.Selection.Mode)
}

// Unmarshal decodes and validates the configuration held by v.
func Unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func key(parts ...string) string {
	return strings.Join(parts, KeyDelimiter)
}
