// Package styles contains Lip Gloss style definitions for the grid.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // separators, help, footers

	BorderDefaultColor   = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderHighlightColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}

	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	GridHeaderColor     = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	GridRegionColor     = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // merged cell text
	GridLeadColor       = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	GridLeadTextColor   = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	GridSelectionColor  = lipgloss.AdaptiveColor{Light: "#BCC0CC", Dark: "#1A5276"}
	GridSelectTextColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}

	CellStyle      = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	RegionStyle    = lipgloss.NewStyle().Foreground(GridRegionColor)
	HeaderStyle    = lipgloss.NewStyle().Foreground(GridHeaderColor).Bold(true)
	SeparatorStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	LeadStyle      = lipgloss.NewStyle().Foreground(GridLeadTextColor).Background(GridLeadColor).Bold(true)
	SelectedStyle  = lipgloss.NewStyle().Foreground(GridSelectTextColor).Background(GridSelectionColor)

	StatusBarStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Padding(0, 1)
	WarningStyle   = lipgloss.NewStyle().Foreground(StatusWarningColor)
	ErrorStyle     = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true).Padding(1, 2)
)
