package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/spangrid/internal/geometry"
	"github.com/zjrosen/spangrid/internal/ui/styles"
)

const (
	separator = "│"
	ellipsis  = "…"
)

// fit truncates s to width cells and pads it with spaces.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, ellipsis)
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// renderHeader draws the column titles of columns [first, last].
func (m Model) renderHeader(first, last int) string {
	var b strings.Builder
	for c := first; c <= last; c++ {
		b.WriteString(styles.HeaderStyle.Render(fit(m.snap.Sheet.Columns[c].Title, m.layout.Width(c))))
		b.WriteString(styles.SeparatorStyle.Render(separator))
	}
	return b.String()
}

// renderCell draws one step of a body walk. A region is one segment spanning
// its visible columns; its value appears on its first visible line only.
func (m Model) renderCell(b *strings.Builder, cell geometry.Cell) {
	originRow, originColumn := cell.Row, cell.Column
	if cell.Region != nil {
		originRow, originColumn = cell.Region.StartRow, cell.Region.StartColumn
	}

	var text string
	if cell.Anchor {
		text = m.snap.Value(cell.Row, cell.Column)
	}
	width := m.layout.SpanWidth(cell.Column, cell.Column+cell.Columns-1)

	lead := m.nav.Lead()
	isLead := cell.Row == lead.Row && cell.Column == lead.Column
	if cell.Region != nil {
		isLead = cell.Region.Contains(lead.Row, lead.Column)
	}

	style := styles.CellStyle
	switch {
	case isLead:
		style = styles.LeadStyle
	case m.nav.IsCellSelected(originRow, originColumn):
		style = styles.SelectedStyle
	case cell.Region != nil:
		style = styles.RegionStyle
	}
	b.WriteString(style.Render(fit(text, width)))
	b.WriteString(styles.SeparatorStyle.Render(separator))
}

// renderStatus draws the status line: the last warning, the lead position,
// the region under the lead and the selection size.
func (m Model) renderStatus() string {
	lead := m.nav.Lead()
	parts := []string{m.leadLabel()}
	if lead.Row >= 0 && lead.Column >= 0 {
		if r := m.nav.Regions().ContainingRegion(lead.Row, lead.Column); r != nil {
			parts = append(parts, fmt.Sprintf("merged %dx%d from R%d C%d", r.RowSpan, r.ColumnSpan, r.StartRow+1, r.StartColumn+1))
		}
	}
	ext := m.nav.Extent()
	if ext.RowSelection && ext.SelectedRows > 0 {
		parts = append(parts, plural(ext.SelectedRows, "row")+" selected")
	}
	if ext.ColumnSelection && ext.SelectedColumns > 0 {
		parts = append(parts, plural(ext.SelectedColumns, "column")+" selected")
	}
	line := strings.Join(parts, "  ·  ")
	if m.warning != "" {
		line = styles.WarningStyle.Render(m.warning) + "  " + line
	}
	return styles.StatusBarStyle.Render(ansi.Truncate(line, max(m.width-2, 0), ellipsis))
}

func (m Model) leadLabel() string {
	lead := m.nav.Lead()
	if lead.Row < 0 || lead.Column < 0 {
		return "no lead"
	}
	return "R" + strconv.Itoa(lead.Row+1) + " C" + strconv.Itoa(lead.Column+1)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
