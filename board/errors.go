package board

import "errors"

// Sentinel errors for board construction and mutation.
var (
	// ErrInfeasibleClue is returned when a row or column clue cannot fit
	// within the board's dimensions.
	ErrInfeasibleClue = errors.New("board: clue infeasible for line length")

	// ErrClueMismatch is returned when the row and column clues disagree on
	// the total number of filled cells (overall for monochrome, per-color
	// for colored boards).
	ErrClueMismatch = errors.New("board: row/column clue totals disagree")

	// ErrNonMonotoneWrite is returned by SetRow/SetColumn when a proposed
	// cell value is not a subset of the cell it replaces. A monotone
	// refinement step may only narrow a cell's candidate set; widening it
	// is a caller bug, not a puzzle-input error.
	ErrNonMonotoneWrite = errors.New("board: write is not a monotone refinement")

	// ErrIndexOutOfRange names an out-of-bounds row/column index. No Board
	// method returns it: the accessors index the grid directly and panic
	// on an out-of-range index.
	ErrIndexOutOfRange = errors.New("board: index out of range")

	// ErrLengthMismatch is returned when a supplied line has the wrong
	// number of cells for the board's width/height.
	ErrLengthMismatch = errors.New("board: line length mismatch")
)
