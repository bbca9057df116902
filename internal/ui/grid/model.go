// Package grid is the Bubble Tea widget that displays a sheet with merged
// cells. Rows are cached as rendered lines; after each navigation only the
// lines touched by the change, widened to whole regions, are redrawn.
package grid

import (
	"context"
	"fmt"
	"image"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/spangrid/internal/config"
	"github.com/zjrosen/spangrid/internal/cursor"
	"github.com/zjrosen/spangrid/internal/geometry"
	"github.com/zjrosen/spangrid/internal/keys"
	"github.com/zjrosen/spangrid/internal/log"
	"github.com/zjrosen/spangrid/internal/navigator"
	"github.com/zjrosen/spangrid/internal/pubsub"
	"github.com/zjrosen/spangrid/internal/sheet"
	"github.com/zjrosen/spangrid/internal/span"
	"github.com/zjrosen/spangrid/internal/ui/styles"
)

// ZoneID marks the grid body for mouse hit-testing.
const ZoneID = "spangrid-body"

// Options configure the widget.
type Options struct {
	// Path is the sheet file, used for reloads. Empty disables reloading.
	Path string

	Navigator      navigator.Options
	ShowHeader     bool
	ShowHelp       bool
	ShowStatusBar  bool
	MinColumnWidth int

	// Changes delivers a value whenever Path changes on disk. Nil disables
	// automatic reloads.
	Changes <-chan struct{}

	// ConfigPath receives theme changes. Empty keeps them in memory.
	ConfigPath string
	Theme      config.ThemeConfig
}

// DefaultOptions returns options matching config.Defaults.
func DefaultOptions() Options {
	d := config.Defaults()
	return Options{
		Navigator:      d.NavigatorOptions(),
		ShowHeader:     d.UI.ShowHeader,
		ShowHelp:       d.UI.ShowHelp,
		ShowStatusBar:  d.UI.ShowStatusBar,
		MinColumnWidth: d.UI.MinColumnWidth,
	}
}

// Model is the grid widget.
type Model struct {
	ctx    context.Context
	opts   Options
	keys   keys.KeyMap
	help   help.Model
	loader *sheet.Loader

	index  *span.Index
	snap   *sheet.Snapshot
	nav    *navigator.Navigator
	layout Layout

	width  int
	height int
	top    int
	left   int

	// lines caches rendered body rows by row index. It is only valid for the
	// current top, left and width; changing any of them clears it.
	lines map[int]string

	indexEvents <-chan pubsub.Event[*span.Set]
	logEvents   <-chan pubsub.Event[log.Entry]

	warning string
	theme   string
}

// New creates a grid showing snap. The lead starts on the first cell.
func New(ctx context.Context, snap *sheet.Snapshot, loader *sheet.Loader, opts Options) Model {
	index := span.NewIndex(snap.Set)
	m := Model{
		ctx:         ctx,
		opts:        opts,
		keys:        keys.DefaultKeyMap(),
		help:        help.New(),
		loader:      loader,
		index:       index,
		snap:        snap,
		nav:         navigator.New(index, boundsOf(snap), opts.Navigator),
		layout:      layoutOf(snap, opts.MinColumnWidth),
		lines:       make(map[int]string),
		indexEvents: index.Subscribe(ctx),
		logEvents:   log.Subscribe(ctx),
		theme:       opts.Theme.Preset,
	}
	if m.theme == "" {
		m.theme = "default"
	}
	if !m.nav.Bounds().Empty() {
		m.nav.ChangeSelection(0, 0, false, false)
	}
	return m
}

func boundsOf(snap *sheet.Snapshot) cursor.Bounds {
	return cursor.Bounds{Rows: snap.Sheet.RowCount(), Columns: snap.Sheet.ColumnCount()}
}

func layoutOf(snap *sheet.Snapshot, minWidth int) Layout {
	return NewLayout(snap.Sheet.Widths(max(minWidth, 1)), snap.Sheet.RowCount())
}

// Navigator exposes the selection controller.
func (m Model) Navigator() *navigator.Navigator { return m.nav }

// Snapshot returns the sheet on screen.
func (m Model) Snapshot() *sheet.Snapshot { return m.snap }

// Close stops publishing index swaps.
func (m Model) Close() { m.index.Close() }

// Init starts listening for index swaps, log warnings and file changes.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{pubsub.ListenCmd(m.ctx, m.indexEvents)}
	if m.logEvents != nil {
		cmds = append(cmds, pubsub.ListenCmd(m.ctx, m.logEvents))
	}
	if m.opts.Changes != nil {
		cmds = append(cmds, waitForChange(m.ctx, m.opts.Changes))
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.invalidateAll()
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case SnapshotMsg:
		m.applySnapshot(msg.Snapshot)
		return m, nil

	case LoadErrorMsg:
		m.warning = msg.Err.Error()
		return m, nil

	case fileChangedMsg:
		log.Debug(log.CatGrid, "sheet changed on disk", "path", m.opts.Path)
		return m, tea.Batch(reloadCmd(m.ctx, m.loader, m.opts.Path), waitForChange(m.ctx, m.opts.Changes))

	case pubsub.Event[*span.Set]:
		log.Debug(log.CatGrid, "region index swapped", "regions", msg.Payload.Len())
		m.invalidateAll()
		return m, pubsub.ListenCmd(m.ctx, m.indexEvents)

	case pubsub.Event[log.Entry]:
		if msg.Payload.Level >= log.LevelWarn {
			m.warning = msg.Payload.Message
		}
		return m, pubsub.ListenCmd(m.ctx, m.logEvents)

	case themeSavedMsg:
		if msg.err != nil {
			m.warning = "theme not saved: " + msg.err.Error()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.invalidateAll()
		m.ensureVisible()
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		if m.opts.Path == "" {
			return m, nil
		}
		return m, reloadCmd(m.ctx, m.loader, m.opts.Path)
	case key.Matches(msg, m.keys.Theme):
		return m.nextTheme()
	}

	if name, ok := m.keys.Action(msg); ok {
		m.perform(name)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.perform(cursor.PreviousRow)
	case tea.MouseButtonWheelDown:
		m.perform(cursor.NextRow)
	case tea.MouseButtonLeft:
		z := zone.Get(ZoneID)
		if z == nil {
			return
		}
		x, y := z.Pos(msg)
		if x < 0 || y < 0 {
			return
		}
		m.clickAt(x, y, msg.Ctrl, msg.Shift)
	}
}

// clickAt selects the cell under (x, y), relative to the top-left of the
// visible body.
func (m *Model) clickAt(x, y int, toggle, extend bool) {
	if m.layout.Columns() == 0 || m.top+y >= m.layout.Rows() {
		return
	}
	p := image.Pt(x+m.layout.CellRect(0, m.left).Min.X, y+m.top)
	row, column := m.layout.RowAt(p), m.layout.ColumnAt(p)
	if row < 0 || column < 0 {
		return
	}

	before := m.capture()
	m.nav.ChangeSelection(row, column, toggle, extend)
	log.Debug(log.CatGrid, "click", "row", row, "column", column, "toggle", toggle, "extend", extend)
	m.ensureVisible()
	m.invalidateChanged(before)
}

func (m *Model) perform(name cursor.Name) {
	before := m.capture()
	if err := m.nav.Perform(name, m.page()); err != nil {
		log.ErrorErr(log.CatGrid, "action failed", err, "action", name)
		return
	}
	m.ensureVisible()
	m.invalidateChanged(before)
}

func (m Model) nextTheme() (tea.Model, tea.Cmd) {
	names := make([]string, 0, len(styles.Presets))
	for name := range styles.Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	next := names[(slices.Index(names, m.theme)+1)%len(names)]

	theme := config.ThemeConfig{Preset: next, Colors: m.opts.Theme.Colors}
	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: theme.Preset, Colors: theme.Colors}); err != nil {
		m.warning = err.Error()
		return m, nil
	}
	m.theme = next
	m.opts.Theme = theme
	m.invalidateAll()
	log.Info(log.CatGrid, "theme changed", "preset", next)

	if m.opts.ConfigPath == "" {
		return m, nil
	}
	return m, saveThemeCmd(m.opts.ConfigPath, theme)
}

// Theme returns the active preset name.
func (m Model) Theme() string { return m.theme }

func (m *Model) applySnapshot(snap *sheet.Snapshot) {
	m.snap = snap
	m.layout = layoutOf(snap, m.opts.MinColumnWidth)
	m.nav.SetBounds(boundsOf(snap))
	m.index.Swap(snap.Set)
	m.warning = ""
	m.invalidateAll()
	m.ensureVisible()
}

// selectionState is what rendering depends on besides the sheet.
type selectionState struct {
	lead    cursor.Lead
	rows    []int
	columns []int
}

func (m Model) capture() selectionState {
	return selectionState{
		lead:    m.nav.Lead(),
		rows:    m.nav.Rows().Selected(),
		columns: m.nav.Columns().Selected(),
	}
}

// invalidateChanged drops the cached lines whose rendering may differ from
// before: the old and new lead and every row whose selection flipped, grown
// to whole regions. With column selection on, a column change touches every
// line.
func (m *Model) invalidateChanged(before selectionState) {
	if m.layout.Columns() == 0 {
		return
	}
	after := m.capture()
	if m.nav.Extent().ColumnSelection && !slices.Equal(before.columns, after.columns) {
		m.invalidateAll()
		return
	}

	var dirty image.Rectangle
	for _, lead := range []cursor.Lead{before.lead, after.lead} {
		if lead.Row >= 0 && lead.Column >= 0 {
			dirty = dirty.Union(geometry.BoundingRect(m.nav.Regions(), m.layout.CellRect, lead.Row, lead.Column))
		}
	}
	for _, row := range flipped(before.rows, after.rows) {
		dirty = dirty.Union(image.Rect(0, row, m.layout.TotalWidth(), row+1))
	}
	m.invalidate(dirty)
}

func (m *Model) invalidate(dirty image.Rectangle) {
	if dirty.Empty() {
		return
	}
	dirty = geometry.ExpandDirtyRegion(m.nav.Regions(), m.layout.CellRect, m.layout.RowAt, m.layout.ColumnAt, dirty)
	for row := dirty.Min.Y; row < dirty.Max.Y; row++ {
		delete(m.lines, row)
	}
}

func (m *Model) invalidateAll() {
	clear(m.lines)
}

// flipped returns the indices present in exactly one of two sorted lists.
func flipped(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]):
			out = append(out, a[i])
			i++
		case i == len(a) || b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	return out
}

func (m Model) innerWidth() int {
	return max(m.width-2, 1)
}

func (m Model) footerHeight() int {
	h := 0
	if m.opts.ShowStatusBar {
		h++
	}
	if m.opts.ShowHelp {
		h += lipgloss.Height(m.help.View(m.keys))
	}
	return h
}

func (m Model) frameHeight() int {
	return max(m.height-m.footerHeight(), 3)
}

// bodyRows is the number of sheet rows that fit in the frame.
func (m Model) bodyRows() int {
	rows := m.frameHeight() - 2
	if m.opts.ShowHeader {
		rows--
	}
	return max(rows, 1)
}

// visibleColumns returns the first and last column on screen.
func (m Model) visibleColumns() (int, int) {
	return m.left, m.layout.VisibleColumns(m.left, m.innerWidth())
}

func (m Model) page() cursor.Page {
	first, last := m.visibleColumns()
	return cursor.Page{Rows: m.bodyRows(), Columns: last - first + 1}
}

// ensureVisible scrolls so the lead is on screen.
func (m *Model) ensureVisible() {
	if m.layout.Columns() == 0 || m.layout.Rows() == 0 {
		return
	}
	body := m.bodyRows()
	top, left := m.top, m.left
	lead := m.nav.Lead()

	if lead.Row >= 0 {
		if lead.Row < top {
			top = lead.Row
		} else if lead.Row >= top+body {
			top = lead.Row - body + 1
		}
	}
	top = min(top, max(m.layout.Rows()-body, 0))

	if lead.Column >= 0 {
		if lead.Column < left {
			left = lead.Column
		}
		for left < lead.Column && m.layout.VisibleColumns(left, m.innerWidth()) < lead.Column {
			left++
		}
	}
	left = min(left, m.layout.Columns()-1)

	if top != m.top || left != m.left {
		m.top, m.left = top, left
		m.invalidateAll()
	}
}

// View renders the grid.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var content []string
	if m.layout.Columns() == 0 || m.layout.Rows() == 0 {
		content = append(content, styles.SeparatorStyle.Render("empty sheet"))
	} else {
		first, last := m.visibleColumns()
		if m.opts.ShowHeader {
			content = append(content, ansi.Truncate(m.renderHeader(first, last), m.innerWidth(), ""))
		}
		content = append(content, zone.Mark(ZoneID, strings.Join(m.renderBody(first, last), "\n")))
	}

	frame := styles.Frame{
		Title:   m.snap.Sheet.Name,
		Note:    fmt.Sprintf("%d×%d", m.layout.Rows(), m.layout.Columns()),
		Width:   m.width,
		Height:  m.frameHeight(),
		Focused: true,
	}
	parts := []string{frame.Render(strings.Join(content, "\n"))}
	if m.opts.ShowStatusBar {
		parts = append(parts, m.renderStatus())
	}
	if m.opts.ShowHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderBody returns the visible rows, drawing only those missing from the
// line cache.
func (m Model) renderBody(first, last int) []string {
	bottom := min(m.top+m.bodyRows(), m.layout.Rows()) - 1
	fresh := make(map[int]*strings.Builder)
	geometry.Walk(m.nav.Regions(), m.top, bottom, first, last, func(cell geometry.Cell) {
		if _, ok := m.lines[cell.Row]; ok {
			return
		}
		b, ok := fresh[cell.Row]
		if !ok {
			b = &strings.Builder{}
			fresh[cell.Row] = b
		}
		m.renderCell(b, cell)
	})
	for row, b := range fresh {
		m.lines[row] = ansi.Truncate(b.String(), m.innerWidth(), "")
	}

	lines := make([]string, 0, bottom-m.top+1)
	for row := m.top; row <= bottom; row++ {
		lines = append(lines, m.lines[row])
	}
	return lines
}
