package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset matches the AdaptiveColor defaults in styles.go (dark values).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default spangrid theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenBorderDefault:   "#696969",
		TokenBorderHighlight: "#54A0FF",
		TokenStatusWarning:   "#FECA57",
		TokenStatusError:     "#FF8787",
		TokenGridHeader:      "#54A0FF",
		TokenGridRegion:      "#73F59F",
		TokenGridLead:        "#3498DB",
		TokenGridLeadText:    "#FFFFFF",
		TokenGridSelection:   "#1A5276",
		TokenGridSelectText:  "#FFFFFF",
	},
}

var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenBorderDefault:   "#6C7086", // overlay0
		TokenBorderHighlight: "#89B4FA", // blue
		TokenStatusWarning:   "#F9E2AF", // yellow
		TokenStatusError:     "#F38BA8", // red
		TokenGridHeader:      "#CBA6F7", // mauve
		TokenGridRegion:      "#A6E3A1", // green
		TokenGridLead:        "#89B4FA", // blue
		TokenGridLeadText:    "#1E1E2E", // base
		TokenGridSelection:   "#45475A", // surface1
		TokenGridSelectText:  "#CDD6F4", // text
	},
}

var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#F8F8F2", // foreground
		TokenTextSecondary:   "#F8F8F2", // foreground
		TokenTextMuted:       "#6272A4", // comment
		TokenBorderDefault:   "#6272A4", // comment
		TokenBorderHighlight: "#BD93F9", // purple
		TokenStatusWarning:   "#F1FA8C", // yellow
		TokenStatusError:     "#FF5555", // red
		TokenGridHeader:      "#FF79C6", // pink
		TokenGridRegion:      "#50FA7B", // green
		TokenGridLead:        "#BD93F9", // purple
		TokenGridLeadText:    "#282A36", // background
		TokenGridSelection:   "#44475A", // current line
		TokenGridSelectText:  "#F8F8F2", // foreground
	},
}

var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#ECEFF4", // snow storm 3
		TokenTextSecondary:   "#E5E9F0", // snow storm 2
		TokenTextMuted:       "#4C566A", // polar night 4
		TokenBorderDefault:   "#4C566A", // polar night 4
		TokenBorderHighlight: "#88C0D0", // frost 2
		TokenStatusWarning:   "#EBCB8B", // aurora yellow
		TokenStatusError:     "#BF616A", // aurora red
		TokenGridHeader:      "#81A1C1", // frost 3
		TokenGridRegion:      "#A3BE8C", // aurora green
		TokenGridLead:        "#88C0D0", // frost 2
		TokenGridLeadText:    "#2E3440", // polar night 1
		TokenGridSelection:   "#434C5E", // polar night 3
		TokenGridSelectText:  "#ECEFF4", // snow storm 3
	},
}

var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#FFFFFF",
		TokenBorderDefault:   "#FFFFFF",
		TokenBorderHighlight: "#00FFFF",
		TokenStatusWarning:   "#FFFF00",
		TokenStatusError:     "#FF0000",
		TokenGridHeader:      "#FFFF00",
		TokenGridRegion:      "#00FF00",
		TokenGridLead:        "#FFFF00",
		TokenGridLeadText:    "#000000",
		TokenGridSelection:   "#0000FF",
		TokenGridSelectText:  "#FFFFFF",
	},
}
