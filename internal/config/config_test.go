package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/spangrid/internal/selection"
	"github.com/zjrosen/spangrid/internal/ui/styles"
)

func loadConfigFromYAML(t *testing.T, content string) (Config, error) {
	t.Helper()
	v := NewViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))
	return Unmarshal(v)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.True(t, cfg.AutoReload)
	require.Equal(t, 300*time.Millisecond, cfg.ReloadDebounce)
	require.True(t, cfg.Selection.Rows)
	require.False(t, cfg.Selection.Columns)
	require.NoError(t, cfg.Validate())
}

func TestUnmarshal_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfigFromYAML(t, "")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestUnmarshal_Overrides(t *testing.T) {
	cfg, err := loadConfigFromYAML(t, `
sheet: /tmp/plan.yaml
auto_reload: false
reload_debounce: 1s
ui:
  show_help: false
  min_column_width: 6
selection:
  columns: true
  mode: single
`)
	require.NoError(t, err)
	require.Equal(t, "/tmp/plan.yaml", cfg.Sheet)
	require.False(t, cfg.AutoReload)
	require.Equal(t, time.Second, cfg.ReloadDebounce)
	require.False(t, cfg.UI.ShowHelp)
	require.True(t, cfg.UI.ShowHeader, "unset keys keep their default")
	require.Equal(t, 6, cfg.UI.MinColumnWidth)
	require.True(t, cfg.Selection.Rows)
	require.True(t, cfg.Selection.Columns)
	require.Equal(t, "single", cfg.Selection.Mode)
}

func TestUnmarshal_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"mode", "selection:\n  mode: sometimes\n", "selection.mode"},
		{"width", "ui:\n  min_column_width: 0\n", "min_column_width"},
		{"debounce", "reload_debounce: -1s\n", "reload_debounce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfigFromYAML(t, tt.yaml)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := Defaults()
	cfg.UI.MinColumnWidth = 0
	cfg.Selection.Mode = "bogus"

	err := cfg.Validate()
	require.ErrorIs(t, err, selection.ErrUnknownMode)
	require.Contains(t, err.Error(), "min_column_width")
}

func TestNavigatorOptions(t *testing.T) {
	cfg := Defaults()
	cfg.Selection.Columns = true
	cfg.Selection.Mode = "single_interval"

	opts := cfg.NavigatorOptions()
	require.True(t, opts.RowSelection)
	require.True(t, opts.ColumnSelection)
	require.Equal(t, selection.SingleInterval, opts.RowMode)
	require.Equal(t, selection.SingleInterval, opts.ColumnMode)
}

func TestThemeConfig_DottedColorKeys(t *testing.T) {
	cfg, err := loadConfigFromYAML(t, `
theme:
  preset: dracula
  colors:
    grid.lead: "#FF0000"
    text.primary: "#00FF00"
`)
	require.NoError(t, err)
	require.Equal(t, "dracula", cfg.Theme.Preset)
	require.Equal(t, "#FF0000", cfg.Theme.Colors["grid.lead"])
	require.Equal(t, "#00FF00", cfg.Theme.Colors["text.primary"])

	t.Cleanup(func() { _ = styles.ApplyTheme(styles.ThemeConfig{}) })
	require.NoError(t, styles.ApplyTheme(styles.ThemeConfig{Preset: cfg.Theme.Preset, Colors: cfg.Theme.Colors}))
	require.Equal(t, "#FF0000", styles.GridLeadColor.Dark)
	require.Equal(t, styles.DraculaPreset.Colors[styles.TokenGridSelection], styles.GridSelectionColor.Dark)
}

func TestDefaultConfigTemplate_Loads(t *testing.T) {
	cfg, err := loadConfigFromYAML(t, DefaultConfigTemplate())
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}
