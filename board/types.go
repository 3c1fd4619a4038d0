package board

import "github.com/nonogram/solver/cell"

// Axis selects a row or a column. Rows carry the lower axis tag so that,
// under equal numeric priority, the propagation driver's queue prefers
// rows over columns on ties (spec'd tie-break).
type Axis int

const (
	// Row selects a horizontal line.
	Row Axis = 0
	// Column selects a vertical line.
	Column Axis = 1
)

// String renders the axis name for diagnostics.
func (a Axis) String() string {
	if a == Column {
		return "column"
	}

	return "row"
}

// Grid is a fully-solved snapshot: one resolved Color per cell. Boards
// produce these for Solutions() once contradiction probing completes a
// trial grid.
type Grid [][]cell.Color

// Option configures a Board at construction time.
type Option func(*Board)

// WithInitialGrid seeds the board with a pre-filled grid of cell states
// instead of all-Unknown. grid must have Board's exact height and width;
// an invalid shape is caught by the constructor and reported as
// ErrLengthMismatch.
func WithInitialGrid(grid [][]cell.State) Option {
	return func(b *Board) {
		b.initialGrid = grid
	}
}

// WithOnRowUpdate registers a hook invoked after a row is refined. Hooks
// are observers: they must not mutate the board.
func WithOnRowUpdate(fn func(index int)) Option {
	return func(b *Board) {
		if fn != nil {
			b.onRowUpdate = fn
		}
	}
}

// WithOnColumnUpdate registers a hook invoked after a column is refined.
func WithOnColumnUpdate(fn func(index int)) Option {
	return func(b *Board) {
		if fn != nil {
			b.onColumnUpdate = fn
		}
	}
}

// WithOnSolutionRoundComplete registers a hook invoked at the end of each
// propagation run that does not fail, once its queue drains or the board
// becomes fully solved. It is not invoked for a run that starts on an
// already fully solved board.
func WithOnSolutionRoundComplete(fn func()) Option {
	return func(b *Board) {
		if fn != nil {
			b.onSolutionRoundComplete = fn
		}
	}
}

// Snapshot is a byte-identical copy of a Board's cell matrix, taken before
// a speculative write so the caller can restore it exactly. Used by the
// contradiction solver around each trial assumption.
type Snapshot struct {
	cells [][]cell.State
}
