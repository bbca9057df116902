package cursor

// Name identifies a navigation or selection action.
type Name string

// Navigation actions.
const (
	NextRow                Name = "selectNextRow"
	NextRowCell            Name = "selectNextRowCell"
	NextRowExtendSelection Name = "selectNextRowExtendSelection"
	NextRowChangeLead      Name = "selectNextRowChangeLead"

	PreviousRow                Name = "selectPreviousRow"
	PreviousRowCell            Name = "selectPreviousRowCell"
	PreviousRowExtendSelection Name = "selectPreviousRowExtendSelection"
	PreviousRowChangeLead      Name = "selectPreviousRowChangeLead"

	NextColumn                Name = "selectNextColumn"
	NextColumnCell            Name = "selectNextColumnCell"
	NextColumnExtendSelection Name = "selectNextColumnExtendSelection"
	NextColumnChangeLead      Name = "selectNextColumnChangeLead"

	PreviousColumn                Name = "selectPreviousColumn"
	PreviousColumnCell            Name = "selectPreviousColumnCell"
	PreviousColumnExtendSelection Name = "selectPreviousColumnExtendSelection"
	PreviousColumnChangeLead      Name = "selectPreviousColumnChangeLead"

	ScrollLeftChangeSelection  Name = "scrollLeftChangeSelection"
	ScrollLeftExtendSelection  Name = "scrollLeftExtendSelection"
	ScrollRightChangeSelection Name = "scrollRightChangeSelection"
	ScrollRightExtendSelection Name = "scrollRightExtendSelection"
	ScrollUpChangeSelection    Name = "scrollUpChangeSelection"
	ScrollUpExtendSelection    Name = "scrollUpExtendSelection"
	ScrollDownChangeSelection  Name = "scrollDownChangeSelection"
	ScrollDownExtendSelection  Name = "scrollDownExtendSelection"

	FirstColumn                Name = "selectFirstColumn"
	FirstColumnExtendSelection Name = "selectFirstColumnExtendSelection"
	LastColumn                 Name = "selectLastColumn"
	LastColumnExtendSelection  Name = "selectLastColumnExtendSelection"
	FirstRow                   Name = "selectFirstRow"
	FirstRowExtendSelection    Name = "selectFirstRowExtendSelection"
	LastRow                    Name = "selectLastRow"
	LastRowExtendSelection     Name = "selectLastRowExtendSelection"
)

// Selection actions. These act on the lead cell without moving it.
const (
	// AddToSelection adds the lead cell without moving the anchor.
	AddToSelection Name = "addToSelection"
	// ToggleAndAnchor toggles the lead cell and anchors there.
	ToggleAndAnchor Name = "toggleAndAnchor"
	// ExtendTo extends the selection from the anchor to the lead.
	ExtendTo Name = "extendTo"
	// MoveSelectionTo selects only the lead cell.
	MoveSelectionTo Name = "moveSelectionTo"
)

// Kind says how an action is applied.
type Kind int

const (
	// KindMove moves the lead by a delta and changes the selection.
	KindMove Kind = iota
	// KindInSelection moves the lead within the current selection.
	KindInSelection
	// KindChangeLead moves the lead without changing the selection.
	KindChangeLead
	// KindSelect changes the selection at the current lead.
	KindSelect
)

// Action describes one navigation gesture.
type Action struct {
	Name Name
	Kind Kind

	// DX and DY are the step for fixed-delta actions.
	DX, DY int

	// Extend grows the selection from the anchor instead of replacing it.
	Extend bool

	// Paging and to-limit actions derive their delta from the lead and the view.
	// Forwards always means down or right.
	Paging     bool
	ToLimit    bool
	Forwards   bool
	Vertically bool
}

func move(name Name, dx, dy int, extend bool) Action {
	return Action{Name: name, Kind: KindMove, DX: dx, DY: dy, Extend: extend}
}

func inSelection(name Name, dx, dy int) Action {
	dx, dy = unitDelta(dx, dy)
	return Action{Name: name, Kind: KindInSelection, DX: dx, DY: dy}
}

func changeLead(name Name, dx, dy int) Action {
	return Action{Name: name, Kind: KindChangeLead, DX: dx, DY: dy}
}

func page(name Name, extend, forwards, vertically bool) Action {
	return Action{Name: name, Kind: KindMove, Extend: extend, Paging: true, Forwards: forwards, Vertically: vertically}
}

func limit(name Name, extend, forwards, vertically bool) Action {
	return Action{Name: name, Kind: KindMove, Extend: extend, ToLimit: true, Forwards: forwards, Vertically: vertically}
}

var actions = func() map[Name]Action {
	list := []Action{
		move(NextColumn, 1, 0, false),
		changeLead(NextColumnChangeLead, 1, 0),
		move(PreviousColumn, -1, 0, false),
		changeLead(PreviousColumnChangeLead, -1, 0),
		move(NextRow, 0, 1, false),
		changeLead(NextRowChangeLead, 0, 1),
		move(PreviousRow, 0, -1, false),
		changeLead(PreviousRowChangeLead, 0, -1),

		move(NextColumnExtendSelection, 1, 0, true),
		move(PreviousColumnExtendSelection, -1, 0, true),
		move(NextRowExtendSelection, 0, 1, true),
		move(PreviousRowExtendSelection, 0, -1, true),

		page(ScrollUpChangeSelection, false, false, true),
		page(ScrollDownChangeSelection, false, true, true),
		page(ScrollUpExtendSelection, true, false, true),
		page(ScrollDownExtendSelection, true, true, true),
		page(ScrollLeftChangeSelection, false, false, false),
		page(ScrollRightChangeSelection, false, true, false),
		page(ScrollLeftExtendSelection, true, false, false),
		page(ScrollRightExtendSelection, true, true, false),

		limit(FirstColumn, false, false, false),
		limit(LastColumn, false, true, false),
		limit(FirstColumnExtendSelection, true, false, false),
		limit(LastColumnExtendSelection, true, true, false),
		limit(FirstRow, false, false, true),
		limit(LastRow, false, true, true),
		limit(FirstRowExtendSelection, true, false, true),
		limit(LastRowExtendSelection, true, true, true),

		inSelection(NextColumnCell, 1, 0),
		inSelection(PreviousColumnCell, -1, 0),
		inSelection(NextRowCell, 0, 1),
		inSelection(PreviousRowCell, 0, -1),

		{Name: AddToSelection, Kind: KindSelect},
		{Name: ToggleAndAnchor, Kind: KindSelect},
		{Name: ExtendTo, Kind: KindSelect},
		{Name: MoveSelectionTo, Kind: KindSelect},
	}
	m := make(map[Name]Action, len(list))
	for _, a := range list {
		m[a.Name] = a
	}
	return m
}()

// Lookup returns the action registered under name.
func Lookup(name Name) (Action, bool) {
	a, ok := actions[name]
	return a, ok
}

// Names returns every registered action name.
func Names() []Name {
	names := make([]Name, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	return names
}

// Page is the number of rows and columns the host shows at once.
type Page struct {
	Rows    int
	Columns int
}

// Resolve returns the step for a move. Paging and to-limit actions are
// resolved here so that every move goes through StepWithinGrid. A page always
// moves at least one cell.
func (a Action) Resolve(bounds Bounds, page Page) (dx, dy int) {
	switch {
	case a.ToLimit:
		if a.Vertically {
			return 0, directed(bounds.Rows, a.Forwards)
		}
		return directed(bounds.Columns, a.Forwards), 0

	case a.Paging:
		if a.Vertically {
			return 0, directed(max(page.Rows, 1), a.Forwards)
		}
		return directed(max(page.Columns, 1), a.Forwards), 0
	}
	return a.DX, a.DY
}

func directed(n int, forwards bool) int {
	if forwards {
		return n
	}
	return -n
}
