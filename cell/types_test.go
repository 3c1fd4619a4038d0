package cell_test

import (
	"testing"

	"github.com/nonogram/solver/cell"
)

func TestUnknown(t *testing.T) {
	cases := []struct {
		numColors int
		want      cell.State
	}{
		{0, 0},
		{2, cell.MonochromeUnknown},
		{3, 0b111},
	}
	for _, tc := range cases {
		if got := cell.Unknown(tc.numColors); got != tc.want {
			t.Errorf("Unknown(%d) = %b; want %b", tc.numColors, got, tc.want)
		}
	}
}

func TestIsSolved(t *testing.T) {
	if cell.MonochromeUnknown.IsSolved() {
		t.Error("fully unknown state must not be solved")
	}
	if !cell.BoxState.IsSolved() {
		t.Error("singleton BoxState must be solved")
	}
	if cell.State(0).IsSolved() {
		t.Error("zero state must not report solved")
	}
}

func TestPopCountAndColors(t *testing.T) {
	s := cell.SpaceState | cell.BoxState
	if got := s.PopCount(); got != 2 {
		t.Errorf("PopCount() = %d; want 2", got)
	}
	colors := s.Colors()
	if len(colors) != 2 || colors[0] != cell.Space || colors[1] != cell.Box {
		t.Errorf("Colors() = %v; want [Space Box]", colors)
	}
}

func TestIntersectAndSubset(t *testing.T) {
	u := cell.MonochromeUnknown
	boxOnly := u.Intersect(cell.BoxState)
	if boxOnly != cell.BoxState {
		t.Errorf("Intersect = %b; want BoxState", boxOnly)
	}
	if !boxOnly.IsSubsetOf(u) {
		t.Error("refined state must be a subset of the original")
	}
	if u.IsSubsetOf(boxOnly) {
		t.Error("wider state must not be a subset of a narrower one")
	}
}

func TestSolvedPanicsOnUnsolved(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Solved() on an unsolved state should panic")
		}
	}()
	_ = cell.MonochromeUnknown.Solved()
}
