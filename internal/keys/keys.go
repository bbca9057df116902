// Package keys contains keybinding definitions.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/spangrid/internal/cursor"
)

// Binding ties a key binding to the grid action it triggers.
type Binding struct {
	key.Binding
	Action cursor.Name
}

// KeyMap defines the keybindings for the grid view.
type KeyMap struct {
	// Grid holds one binding per navigation or selection action.
	Grid []Binding

	// General
	Reload key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func bind(action cursor.Name, help string, keys ...string) Binding {
	return Binding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
		Action:  action,
	}
}

// DefaultKeyMap returns the default keybindings. Arrow keys follow the usual
// spreadsheet conventions; vim keys are accepted as aliases.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Grid: []Binding{
			// Navigation
			bind(cursor.PreviousRow, "move up", "up", "k"),
			bind(cursor.NextRow, "move down", "down", "j"),
			bind(cursor.PreviousColumn, "move left", "left", "h"),
			bind(cursor.NextColumn, "move right", "right", "l"),

			// Extend
			bind(cursor.PreviousRowExtendSelection, "extend up", "shift+up", "K"),
			bind(cursor.NextRowExtendSelection, "extend down", "shift+down", "J"),
			bind(cursor.PreviousColumnExtendSelection, "extend left", "shift+left", "H"),
			bind(cursor.NextColumnExtendSelection, "extend right", "shift+right", "L"),

			// Move the lead without touching the selection
			bind(cursor.PreviousRowChangeLead, "lead up", "ctrl+up"),
			bind(cursor.NextRowChangeLead, "lead down", "ctrl+down"),
			bind(cursor.PreviousColumnChangeLead, "lead left", "ctrl+left"),
			bind(cursor.NextColumnChangeLead, "lead right", "ctrl+right"),

			// Cycle within the selection
			bind(cursor.NextColumnCell, "next cell", "tab"),
			bind(cursor.PreviousColumnCell, "previous cell", "shift+tab"),
			bind(cursor.NextRowCell, "next row cell", "enter"),
			bind(cursor.PreviousRowCell, "previous row cell", "alt+enter"),

			// Paging
			bind(cursor.ScrollUpChangeSelection, "page up", "pgup", "ctrl+b"),
			bind(cursor.ScrollDownChangeSelection, "page down", "pgdown", "ctrl+f"),
			bind(cursor.ScrollUpExtendSelection, "extend page up", "ctrl+u"),
			bind(cursor.ScrollDownExtendSelection, "extend page down", "ctrl+d"),
			bind(cursor.ScrollLeftChangeSelection, "page left", "ctrl+pgup"),
			bind(cursor.ScrollRightChangeSelection, "page right", "ctrl+pgdown"),
			bind(cursor.ScrollLeftExtendSelection, "extend page left", "alt+pgup"),
			bind(cursor.ScrollRightExtendSelection, "extend page right", "alt+pgdown"),

			// Limits
			bind(cursor.FirstColumn, "first column", "home", "0"),
			bind(cursor.LastColumn, "last column", "end", "$"),
			bind(cursor.FirstColumnExtendSelection, "extend to first column", "shift+home"),
			bind(cursor.LastColumnExtendSelection, "extend to last column", "shift+end"),
			bind(cursor.FirstRow, "first row", "ctrl+home", "g"),
			bind(cursor.LastRow, "last row", "ctrl+end", "G"),
			bind(cursor.FirstRowExtendSelection, "extend to first row", "ctrl+shift+home"),
			bind(cursor.LastRowExtendSelection, "extend to last row", "ctrl+shift+end"),

			// Selection
			bind(cursor.AddToSelection, "add to selection", " "),
			bind(cursor.ToggleAndAnchor, "toggle", "ctrl+@"),
			bind(cursor.ExtendTo, "extend to lead", "v"),
			bind(cursor.MoveSelectionTo, "select lead only", "s"),
		},

		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload sheet"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action returns the grid action bound to msg.
func (k KeyMap) Action(msg tea.KeyMsg) (cursor.Name, bool) {
	for _, b := range k.Grid {
		if key.Matches(msg, b.Binding) {
			return b.Action, true
		}
	}
	return "", false
}

// Lookup returns the binding for action.
func (k KeyMap) Lookup(action cursor.Name) (key.Binding, bool) {
	for _, b := range k.Grid {
		if b.Action == action {
			return b.Binding, true
		}
	}
	return key.Binding{}, false
}

func (k KeyMap) pick(actions ...cursor.Name) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := k.Lookup(a); ok {
			out = append(out, b)
		}
	}
	return out
}

// ShortHelp returns keybindings for the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	short := k.pick(cursor.PreviousRow, cursor.NextRow, cursor.PreviousColumn, cursor.NextColumn, cursor.NextColumnExtendSelection, cursor.AddToSelection)
	return append(short, k.Help, k.Quit)
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.pick(cursor.PreviousRow, cursor.NextRow, cursor.PreviousColumn, cursor.NextColumn,
			cursor.ScrollUpChangeSelection, cursor.ScrollDownChangeSelection, cursor.FirstRow, cursor.LastRow), // Navigation
		k.pick(cursor.PreviousRowExtendSelection, cursor.NextRowExtendSelection,
			cursor.PreviousColumnExtendSelection, cursor.NextColumnExtendSelection,
			cursor.FirstColumnExtendSelection, cursor.LastColumnExtendSelection), // Extend
		k.pick(cursor.NextColumnCell, cursor.PreviousColumnCell, cursor.NextRowCell,
			cursor.AddToSelection, cursor.ToggleAndAnchor, cursor.ExtendTo, cursor.MoveSelectionTo), // Selection
		{k.Reload, k.Theme, k.Help, k.Quit}, // General
	}
}
