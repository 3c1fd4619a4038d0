package line_test

import (
	"errors"
	"testing"

	"github.com/nonogram/solver/cell"
	"github.com/nonogram/solver/clue"
	"github.com/nonogram/solver/line"
)

func unknownLine(n int) []cell.State {
	cells := make([]cell.State, n)
	for i := range cells {
		cells[i] = cell.MonochromeUnknown
	}

	return cells
}

func TestSolveFSMEmptyClueWildcard(t *testing.T) {
	refined, err := line.Solve(clue.Clue{}, unknownLine(3), line.MethodFSM)
	if err != nil {
		t.Fatalf("Solve() error = %v, want nil", err)
	}
	for i, c := range refined {
		if c != cell.SpaceState {
			t.Errorf("cell %d = %v, want SpaceState", i, c)
		}
	}
}

func TestSolveFSMEmptyClueConflict(t *testing.T) {
	cells := unknownLine(3)
	cells[1] = cell.BoxState
	_, err := line.Solve(clue.Clue{}, cells, line.MethodFSM)
	if !errors.Is(err, line.ErrInconsistent) {
		t.Fatalf("err = %v, want ErrInconsistent", err)
	}
}

func TestSolveFSMFullyForced(t *testing.T) {
	c := clue.Clue{clue.Box(5)}
	refined, err := line.Solve(c, unknownLine(5), line.MethodFSM)
	if err != nil {
		t.Fatalf("Solve() error = %v, want nil", err)
	}
	for i, v := range refined {
		if v != cell.BoxState {
			t.Errorf("cell %d = %v, want BoxState", i, v)
		}
	}
}

func TestSolveFSMIdempotent(t *testing.T) {
	c := clue.Clue{clue.Box(2), clue.Box(1)}
	first, err := line.Solve(c, unknownLine(5), line.MethodFSM)
	if err != nil {
		t.Fatalf("first Solve() error = %v", err)
	}
	second, err := line.Solve(c, first, line.MethodFSM)
	if err != nil {
		t.Fatalf("second Solve() error = %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("cell %d not idempotent: %v -> %v", i, first[i], second[i])
		}
	}
}

func TestSolveFSMAlreadySolvedConsistent(t *testing.T) {
	c := clue.Clue{clue.Box(1)}
	cells := []cell.State{cell.SpaceState, cell.BoxState, cell.SpaceState}
	refined, err := line.Solve(c, cells, line.MethodFSM)
	if err != nil {
		t.Fatalf("Solve() error = %v, want nil", err)
	}
	for i := range cells {
		if refined[i] != cells[i] {
			t.Errorf("cell %d = %v, want unchanged %v", i, refined[i], cells[i])
		}
	}
}

func TestSolveFSMAlreadySolvedInconsistent(t *testing.T) {
	c := clue.Clue{clue.Box(2)}
	cells := []cell.State{cell.BoxState, cell.SpaceState, cell.BoxState}
	_, err := line.Solve(c, cells, line.MethodFSM)
	if !errors.Is(err, line.ErrInconsistent) {
		t.Fatalf("err = %v, want ErrInconsistent", err)
	}
}

func TestSolveFSMSameColorNeedsGap(t *testing.T) {
	c := clue.Clue{clue.Box(1), clue.Box(1)}
	refined, err := line.Solve(c, unknownLine(3), line.MethodFSM)
	if err != nil {
		t.Fatalf("Solve() error = %v, want nil", err)
	}
	want := []cell.State{cell.BoxState, cell.SpaceState, cell.BoxState}
	for i := range want {
		if refined[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, refined[i], want[i])
		}
	}
}

func TestSolveFSMColoredDifferentColorsMayTouch(t *testing.T) {
	pal := cell.NewPalette()
	red, _ := pal.Add("red", 'r')
	blue, _ := pal.Add("blue", 'b')

	cells := make([]cell.State, 4)
	for i := range cells {
		cells[i] = pal.Unknown()
	}

	c := clue.Clue{clue.Colored(2, red), clue.Colored(2, blue)}
	refined, err := line.Solve(c, cells, line.MethodFSM)
	if err != nil {
		t.Fatalf("Solve() error = %v, want nil", err)
	}
	want := []cell.State{cell.Single(red), cell.Single(red), cell.Single(blue), cell.Single(blue)}
	for i := range want {
		if refined[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, refined[i], want[i])
		}
	}
}

func TestSolveFSMBlotAbsorbsSlack(t *testing.T) {
	c := clue.Clue{clue.Blot(1)}
	refined, err := line.Solve(c, unknownLine(3), line.MethodBlot)
	if err != nil {
		t.Fatalf("Solve() error = %v, want nil", err)
	}
	// A single open-ended block of minimum length 1 in a 3-cell line:
	// every cell could be inside the run or outside it except none is
	// forced, but every cell must at least admit Box since the run can
	// start anywhere.
	for i, v := range refined {
		if !v.Has(cell.Box) {
			t.Errorf("cell %d = %v, want to admit Box", i, v)
		}
	}
}

func TestSolveFSMInfeasibleLength(t *testing.T) {
	c := clue.Clue{clue.Box(4)}
	_, err := line.Solve(c, unknownLine(3), line.MethodFSM)
	if !errors.Is(err, line.ErrInconsistent) {
		t.Fatalf("err = %v, want ErrInconsistent", err)
	}
}

func TestSolveUnknownMethod(t *testing.T) {
	_, err := line.Solve(clue.Clue{}, unknownLine(1), line.Method(99))
	if !errors.Is(err, line.ErrUnknownMethod) {
		t.Fatalf("err = %v, want ErrUnknownMethod", err)
	}
}
