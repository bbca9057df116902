package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// Frame describes a rounded box with a title in the top border and an
// optional note in the bottom border:
//
//	╭─ Title ─────╮
//	│ content     │
//	╰──── note ───╯
type Frame struct {
	Title   string
	Note    string
	Width   int
	Height  int
	Focused bool
}

// Render draws content inside the frame. Content lines are truncated and
// padded to the inner width; missing lines are blank.
func (f Frame) Render(content string) string {
	borderColor := BorderDefaultColor
	if f.Focused {
		borderColor = BorderHighlightColor
	}
	border := lipgloss.NewStyle().Foreground(borderColor)
	title := lipgloss.NewStyle().Foreground(GridHeaderColor).Bold(true)
	note := lipgloss.NewStyle().Foreground(TextMutedColor)

	inner := max(f.Width-2, 1)
	rows := max(f.Height-2, 1)

	lines := strings.Split(content, "\n")
	var b strings.Builder
	b.WriteString(edge(borderTopLeft, borderTopRight, f.Title, false, inner, border, title))
	for i := range rows {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], inner, "")
		}
		if pad := inner - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteString("\n")
		b.WriteString(border.Render(borderVertical) + line + border.Render(borderVertical))
	}
	b.WriteString("\n")
	b.WriteString(edge(borderBottomLeft, borderBottomRight, f.Note, true, inner, border, note))
	return b.String()
}

// edge builds a horizontal border of inner width with label embedded, left
// aligned for the top edge and right aligned for the bottom one. Labels that
// do not fit are cut with an ellipsis; edges narrower than four cells drop
// the label.
func edge(left, right, label string, alignRight bool, inner int, border, text lipgloss.Style) string {
	if label == "" || inner < 4 {
		return border.Render(left + strings.Repeat(borderHorizontal, inner) + right)
	}
	label = ansi.Truncate(label, inner-4, "…")
	fill := strings.Repeat(borderHorizontal, max(inner-3-ansi.StringWidth(label), 0))
	if alignRight {
		return border.Render(left+fill+" ") + text.Render(label) + border.Render(" "+borderHorizontal+right)
	}
	return border.Render(left+borderHorizontal+" ") + text.Render(label) + border.Render(" "+fill+right)
}
