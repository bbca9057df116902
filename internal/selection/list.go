// Package selection holds the per-axis selection state of the grid: which row
// (or column) indices are selected, plus the anchor and lead indices that drive
// extend and toggle gestures.
package selection

import (
	"fmt"
	"strings"
)

// Mode restricts what a List may hold.
type Mode int

const (
	// Single allows at most one selected index.
	Single Mode = iota
	// SingleInterval allows one contiguous run of indices.
	SingleInterval
	// MultipleInterval allows any set of indices.
	MultipleInterval
)

// String returns the config spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case SingleInterval:
		return "single_interval"
	case MultipleInterval:
		return "multiple_interval"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the config spelling of a mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "single_interval":
		return SingleInterval, nil
	case "multiple_interval", "":
		return MultipleInterval, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// List is the selection along one axis. Use NewList to create one.
type List struct {
	mode     Mode
	selected []bool
	count    int
	anchor   int
	lead     int
}

// NewList returns an empty selection in the given mode.
func NewList(mode Mode) *List {
	return &List{mode: mode, anchor: -1, lead: -1}
}

// Mode returns the selection mode.
func (l *List) Mode() Mode {
	return l.mode
}

// SetMode changes the mode and clears the selection.
func (l *List) SetMode(mode Mode) {
	l.mode = mode
	l.Clear()
}

// Anchor returns the anchor index, or -1.
func (l *List) Anchor() int {
	return l.anchor
}

// Lead returns the lead index, or -1.
func (l *List) Lead() int {
	return l.lead
}

// IsSelected reports whether index is selected.
func (l *List) IsSelected(index int) bool {
	return index >= 0 && index < len(l.selected) && l.selected[index]
}

// Count returns the number of selected indices.
func (l *List) Count() int {
	return l.count
}

// IsEmpty reports whether nothing is selected.
func (l *List) IsEmpty() bool {
	return l.count == 0
}

// Min returns the smallest selected index, or -1.
func (l *List) Min() int {
	for i, ok := range l.selected {
		if ok {
			return i
		}
	}
	return -1
}

// Max returns the largest selected index, or -1.
func (l *List) Max() int {
	for i := len(l.selected) - 1; i >= 0; i-- {
		if l.selected[i] {
			return i
		}
	}
	return -1
}

// Selected returns the selected indices in ascending order.
func (l *List) Selected() []int {
	out := make([]int, 0, l.count)
	for i, ok := range l.selected {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// Clear deselects everything. Anchor and lead are kept.
func (l *List) Clear() {
	l.selected = l.selected[:0]
	l.count = 0
}

// SetInterval replaces the selection with [i0, i1] and sets the anchor to i0
// and the lead to i1. In Single mode only i1 is selected. Negative indices are
// ignored.
func (l *List) SetInterval(i0, i1 int) {
	if i0 < 0 || i1 < 0 {
		return
	}
	if l.mode == Single {
		i0 = i1
	}
	l.Clear()
	l.mark(i0, i1, true)
	l.anchor, l.lead = i0, i1
}

// AddInterval adds [i0, i1] to the selection and sets the anchor to i0 and the
// lead to i1. In Single mode, and in SingleInterval mode when the result would
// not be contiguous, this replaces the selection instead.
func (l *List) AddInterval(i0, i1 int) {
	if i0 < 0 || i1 < 0 {
		return
	}
	lo, hi := min(i0, i1), max(i0, i1)
	switch l.mode {
	case Single:
		l.SetInterval(i0, i1)
		return
	case SingleInterval:
		if l.IsEmpty() || hi < l.Min()-1 || lo > l.Max()+1 {
			l.SetInterval(i0, i1)
			return
		}
	}
	l.mark(lo, hi, true)
	l.anchor, l.lead = i0, i1
}

// RemoveInterval deselects [i0, i1] and sets the anchor to i0 and the lead to
// i1. Outside MultipleInterval mode a removal that would split the selection
// removes everything up to the end of it instead.
func (l *List) RemoveInterval(i0, i1 int) {
	if i0 < 0 || i1 < 0 {
		return
	}
	lo, hi := min(i0, i1), max(i0, i1)
	if l.mode != MultipleInterval {
		if first, last := l.Min(), l.Max(); lo > first && hi < last {
			hi = last
		}
	}
	l.mark(lo, hi, false)
	l.anchor, l.lead = i0, i1
}

// SetAnchor moves the anchor without changing the selection.
func (l *List) SetAnchor(index int) {
	l.anchor = index
}

// MoveLead moves the lead without changing the selection.
func (l *List) MoveLead(index int) {
	l.lead = index
}

// Truncate drops selected indices at or above count and unsets an anchor or
// lead that no longer fits.
func (l *List) Truncate(count int) {
	count = max(count, 0)
	for i := count; i < len(l.selected); i++ {
		if l.selected[i] {
			l.count--
		}
	}
	if count < len(l.selected) {
		l.selected = l.selected[:count]
	}
	if l.anchor >= count {
		l.anchor = -1
	}
	if l.lead >= count {
		l.lead = -1
	}
}

func (l *List) mark(i0, i1 int, on bool) {
	lo, hi := min(i0, i1), max(i0, i1)
	if on && hi >= len(l.selected) {
		l.selected = append(l.selected, make([]bool, hi+1-len(l.selected))...)
	}
	hi = min(hi, len(l.selected)-1)
	for i := lo; i <= hi; i++ {
		if l.selected[i] != on {
			l.selected[i] = on
			if on {
				l.count++
			} else {
				l.count--
			}
		}
	}
}

// String renders the selection as ranges, e.g. "[0-2 5]".
func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	start := -1
	flush := func(end int) {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		if start == end {
			fmt.Fprintf(&b, "%d", start)
		} else {
			fmt.Fprintf(&b, "%d-%d", start, end)
		}
	}
	for i, ok := range l.selected {
		switch {
		case ok && start < 0:
			start = i
		case !ok && start >= 0:
			flush(i - 1)
			start = -1
		}
	}
	if start >= 0 {
		flush(len(l.selected) - 1)
	}
	b.WriteByte(']')
	return b.String()
}
