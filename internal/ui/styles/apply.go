package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies the default colors, then the preset, then individual
// overrides, and rebuilds every style.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

func applyColors(colors map[ColorToken]string) {
	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:     &TextPrimaryColor,
		TokenTextSecondary:   &TextSecondaryColor,
		TokenTextMuted:       &TextMutedColor,
		TokenBorderDefault:   &BorderDefaultColor,
		TokenBorderHighlight: &BorderHighlightColor,
		TokenStatusWarning:   &StatusWarningColor,
		TokenStatusError:     &StatusErrorColor,
		TokenGridHeader:      &GridHeaderColor,
		TokenGridRegion:      &GridRegionColor,
		TokenGridLead:        &GridLeadColor,
		TokenGridLeadText:    &GridLeadTextColor,
		TokenGridSelection:   &GridSelectionColor,
		TokenGridSelectText:  &GridSelectTextColor,
	}
	for token, hex := range colors {
		if target, ok := targets[token]; ok {
			*target = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
}

// rebuildStyles recreates the styles; lipgloss.Style captures colors at creation.
func rebuildStyles() {
	CellStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	RegionStyle = lipgloss.NewStyle().Foreground(GridRegionColor)
	HeaderStyle = lipgloss.NewStyle().Foreground(GridHeaderColor).Bold(true)
	SeparatorStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	LeadStyle = lipgloss.NewStyle().Foreground(GridLeadTextColor).Background(GridLeadColor).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(GridSelectTextColor).Background(GridSelectionColor)

	StatusBarStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Padding(0, 1)
	WarningStyle = lipgloss.NewStyle().Foreground(StatusWarningColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true).Padding(1, 2)
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
