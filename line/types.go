package line

import (
	"fmt"

	"github.com/nonogram/solver/cell"
	"github.com/nonogram/solver/clue"
)

// Method names a line-solving strategy. The propagation driver picks one
// per line based on board flavor; every Method shares the Solve contract.
type Method int

const (
	// MethodOverlap is the fast, incomplete strategy: it only fills cells
	// that every leftmost and rightmost packing of the clue agree on. It
	// reports ErrInconsistent only on outright infeasibility or when a
	// cell it forces (or, for an empty clue, any cell) has no candidate
	// left, and it never retracts a candidate color based on neighboring
	// cells. The
	// propagation driver runs it as a pre-pass on every non-blotted line
	// before the complete method it selects (see propagate.runner.solveOne),
	// so most of a line's forced cells are filled before the automaton
	// pass ever runs.
	MethodOverlap Method = iota

	// MethodFSM is the complete two-pass reachability solver (forward and
	// backward over the clue's automaton). It is the baseline complete
	// strategy for monochrome, non-blotted lines.
	MethodFSM

	// MethodBGU names the same complete automaton solver, tuned for
	// lines whose clue has many short runs (the case the BGU solver
	// specializes for in the reference literature). This package routes
	// it to the identical implementation as MethodFSM; there is no
	// separate code path.
	MethodBGU

	// MethodEfficient names the complete automaton solver for lines with
	// few, long runs. Routed identically to MethodFSM for the same
	// reason as MethodBGU.
	MethodEfficient

	// MethodBGUColor is MethodBGU generalized to colored clues.
	MethodBGUColor

	// MethodEfficientColor is MethodEfficient generalized to colored
	// clues.
	MethodEfficientColor

	// MethodBlot is the complete automaton solver for lines whose clue
	// contains at least one blotted (open-ended) block.
	MethodBlot

	// MethodBlotColor is MethodBlot generalized to colored clues.
	MethodBlotColor
)

// String renders the method name for diagnostics and cache keys.
func (m Method) String() string {
	switch m {
	case MethodOverlap:
		return "overlap"
	case MethodFSM:
		return "fsm"
	case MethodBGU:
		return "bgu"
	case MethodEfficient:
		return "efficient"
	case MethodBGUColor:
		return "bgu_color"
	case MethodEfficientColor:
		return "efficient_color"
	case MethodBlot:
		return "blot"
	case MethodBlotColor:
		return "blot_color"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Solve refines cells against clue under method, returning the tightest
// monotone narrowing consistent with every placement the method is able
// to reason about. cells is never mutated; the returned slice is a fresh
// copy. Solve reports ErrInconsistent when method is a complete strategy
// (every Method except MethodOverlap) and no placement survives. The
// line length is taken from len(cells); Solve does not return
// ErrLengthMismatch.
func Solve(c clue.Clue, cells []cell.State, method Method) ([]cell.State, error) {
	switch method {
	case MethodOverlap:
		return solveOverlap(c, cells)
	case MethodFSM, MethodBGU, MethodEfficient, MethodBGUColor, MethodEfficientColor, MethodBlot, MethodBlotColor:
		return solveFSM(c, cells)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}
