package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens. These are the keys users can override under theme.colors.
const (
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"

	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderHighlight ColorToken = "border.highlight"

	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	TokenGridHeader     ColorToken = "grid.header"
	TokenGridRegion     ColorToken = "grid.region"
	TokenGridLead       ColorToken = "grid.lead"
	TokenGridLeadText   ColorToken = "grid.lead.text"
	TokenGridSelection  ColorToken = "grid.selection"
	TokenGridSelectText ColorToken = "grid.selection.text"
)

// AllTokens returns every themeable token.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenBorderDefault,
		TokenBorderHighlight,
		TokenStatusWarning,
		TokenStatusError,
		TokenGridHeader,
		TokenGridRegion,
		TokenGridLead,
		TokenGridLeadText,
		TokenGridSelection,
		TokenGridSelectText,
	}
}
