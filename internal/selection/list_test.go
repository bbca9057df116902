package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"single", Single},
		{"single_interval", SingleInterval},
		{"Multiple_Interval", MultipleInterval},
		{"", MultipleInterval},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseMode("rows")
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestMode_StringRoundTrips(t *testing.T) {
	for _, m := range []Mode{Single, SingleInterval, MultipleInterval} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

func TestList_SetInterval(t *testing.T) {
	l := NewList(MultipleInterval)
	require.True(t, l.IsEmpty())
	require.Equal(t, -1, l.Min())
	require.Equal(t, -1, l.Lead())

	l.SetInterval(5, 2)
	require.Equal(t, []int{2, 3, 4, 5}, l.Selected())
	require.Equal(t, 5, l.Anchor())
	require.Equal(t, 2, l.Lead())
	require.Equal(t, 2, l.Min())
	require.Equal(t, 5, l.Max())
	require.Equal(t, 4, l.Count())

	l.SetInterval(7, 7)
	require.Equal(t, []int{7}, l.Selected())
}

func TestList_SingleModeKeepsOneIndex(t *testing.T) {
	l := NewList(Single)
	l.SetInterval(1, 4)
	require.Equal(t, []int{4}, l.Selected())
	require.Equal(t, 4, l.Anchor())

	l.AddInterval(6, 6)
	require.Equal(t, []int{6}, l.Selected())
}

func TestList_AddInterval(t *testing.T) {
	l := NewList(MultipleInterval)
	l.SetInterval(0, 1)
	l.AddInterval(4, 5)
	require.Equal(t, []int{0, 1, 4, 5}, l.Selected())
	require.Equal(t, "[0-1 4-5]", l.String())
	require.Equal(t, 4, l.Anchor())
	require.Equal(t, 5, l.Lead())

	si := NewList(SingleInterval)
	si.SetInterval(0, 1)
	si.AddInterval(4, 5)
	require.Equal(t, []int{4, 5}, si.Selected(), "a disjoint interval replaces the selection")
	si.AddInterval(6, 6)
	require.Equal(t, []int{4, 5, 6}, si.Selected(), "an adjacent interval extends it")
	si.AddInterval(5, 5)
	require.Equal(t, []int{4, 5, 6}, si.Selected())
}

func TestList_RemoveInterval(t *testing.T) {
	l := NewList(MultipleInterval)
	l.SetInterval(0, 6)
	l.RemoveInterval(2, 3)
	require.Equal(t, "[0-1 4-6]", l.String())
	require.Equal(t, 2, l.Anchor())
	require.Equal(t, 3, l.Lead())

	si := NewList(SingleInterval)
	si.SetInterval(0, 6)
	si.RemoveInterval(2, 3)
	require.Equal(t, "[0-1]", si.String(), "removing from the middle truncates the interval")

	l.RemoveInterval(20, 30)
	require.Equal(t, 5, l.Count())
}

func TestList_NegativeIndicesIgnored(t *testing.T) {
	l := NewList(MultipleInterval)
	l.SetInterval(-1, 3)
	l.AddInterval(2, -1)
	l.RemoveInterval(-1, -1)
	require.True(t, l.IsEmpty())
	require.Equal(t, -1, l.Anchor())
}

func TestList_MoveLeadKeepsSelection(t *testing.T) {
	l := NewList(MultipleInterval)
	l.SetInterval(1, 2)
	l.MoveLead(8)
	l.SetAnchor(7)
	require.Equal(t, []int{1, 2}, l.Selected())
	require.Equal(t, 8, l.Lead())
	require.Equal(t, 7, l.Anchor())
}

func TestList_Truncate(t *testing.T) {
	l := NewList(MultipleInterval)
	l.SetInterval(2, 9)
	l.Truncate(5)
	require.Equal(t, []int{2, 3, 4}, l.Selected())
	require.Equal(t, 3, l.Count())
	require.Equal(t, 2, l.Anchor())
	require.Equal(t, -1, l.Lead())
}

func TestList_SetModeClears(t *testing.T) {
	l := NewList(MultipleInterval)
	l.SetInterval(0, 3)
	l.SetMode(Single)
	require.True(t, l.IsEmpty())
	require.Equal(t, Single, l.Mode())
}

func TestProperty_CountMatchesSelected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		mode := rapid.SampledFrom([]Mode{Single, SingleInterval, MultipleInterval}).Draw(rt, "mode")
		l := NewList(mode)
		ops := rapid.IntRange(1, 20).Draw(rt, "ops")
		for range ops {
			i0 := rapid.IntRange(0, 30).Draw(rt, "i0")
			i1 := rapid.IntRange(0, 30).Draw(rt, "i1")
			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				l.SetInterval(i0, i1)
			case 1:
				l.AddInterval(i0, i1)
			case 2:
				l.RemoveInterval(i0, i1)
			case 3:
				l.Truncate(i0)
			}

			sel := l.Selected()
			if len(sel) != l.Count() {
				rt.Fatalf("count %d, selected %v", l.Count(), sel)
			}
			if mode == Single && len(sel) > 1 {
				rt.Fatalf("single mode holds %v", sel)
			}
			if mode != MultipleInterval && len(sel) > 0 && sel[len(sel)-1]-sel[0] != len(sel)-1 {
				rt.Fatalf("%v holds a gap: %v", mode, sel)
			}
		}
	})
}
