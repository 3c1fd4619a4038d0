// Package board holds the 2-D cell grid for a nonogram: the row and column
// clues, the current candidate-color mask per cell, and the mutation
// helpers the propagation and contradiction solvers drive. It mirrors
// core.Graph's shape (an RWMutex-guarded struct reached only through
// methods) generalized from a vertex/edge graph to a fixed-size grid.
package board

import (
	"fmt"
	"sync"

	"github.com/nonogram/solver/cell"
	"github.com/nonogram/solver/clue"
)

// Board is the mutable 2-D grid a solve operates on. Its clues and
// dimensions are fixed at construction; only cell values change, and only
// by monotone refinement (SetRow/SetColumn reject a write that would widen
// a cell's candidate set).
type Board struct {
	mu sync.RWMutex

	rowClues []clue.Clue
	colClues []clue.Clue
	palette  *cell.Palette
	colored  bool

	height, width int
	cells         [][]cell.State

	hasBlots     bool
	rowAttempts  []int
	colAttempts  []int
	solved       bool
	solutions    []Grid
	initialGrid  [][]cell.State // consumed once by newBoard; not read afterward

	onRowUpdate             func(index int)
	onColumnUpdate          func(index int)
	onSolutionRoundComplete func()
}

// NewMonochrome builds a two-color (Space, Box) board from row and column
// clues. Every block's Color must be cell.Box (use clue.Box/clue.Blot to
// construct them).
func NewMonochrome(rowClues, colClues []clue.Clue, opts ...Option) (*Board, error) {
	return newBoard(rowClues, colClues, cell.MonochromePalette(), false, opts...)
}

// NewColored builds a board over the given palette. Every block's Color
// must be a color registered in palette (not cell.Space).
func NewColored(rowClues, colClues []clue.Clue, palette *cell.Palette, opts ...Option) (*Board, error) {
	return newBoard(rowClues, colClues, palette, true, opts...)
}

func newBoard(rowClues, colClues []clue.Clue, palette *cell.Palette, colored bool, opts ...Option) (*Board, error) {
	height := len(rowClues)
	width := len(colClues)

	b := &Board{
		rowClues: rowClues,
		colClues: colClues,
		palette:  palette,
		colored:  colored,
		height:   height,
		width:    width,
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := validateClues(rowClues, width); err != nil {
		return nil, err
	}
	if err := validateClues(colClues, height); err != nil {
		return nil, err
	}
	if err := checkClueMismatch(rowClues, colClues); err != nil {
		return nil, err
	}

	b.hasBlots = linesHaveBlots(rowClues) || linesHaveBlots(colClues)
	b.rowAttempts = make([]int, height)
	b.colAttempts = make([]int, width)

	unknown := palette.Unknown()
	b.cells = make([][]cell.State, height)
	for i := range b.cells {
		b.cells[i] = make([]cell.State, width)
		for j := range b.cells[i] {
			b.cells[i][j] = unknown
		}
	}

	if b.initialGrid != nil {
		if len(b.initialGrid) != height {
			return nil, fmt.Errorf("%w: initial grid has %d rows, want %d", ErrLengthMismatch, len(b.initialGrid), height)
		}
		for i, row := range b.initialGrid {
			if len(row) != width {
				return nil, fmt.Errorf("%w: initial grid row %d has %d cells, want %d", ErrLengthMismatch, i, len(row), width)
			}
			copy(b.cells[i], row)
		}
		b.initialGrid = nil
	}

	return b, nil
}

func validateClues(clues []clue.Clue, lineLength int) error {
	for i, c := range clues {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		if !c.Fits(lineLength) {
			return fmt.Errorf("%w: line %d needs %d cells, has %d", ErrInfeasibleClue, i, c.MinSpan(), lineLength)
		}
	}

	return nil
}

func checkClueMismatch(rowClues, colClues []clue.Clue) error {
	rowSums := make(map[cell.Color]int)
	for _, c := range rowClues {
		for color, n := range c.ColorSums() {
			rowSums[color] += n
		}
	}
	colSums := make(map[cell.Color]int)
	for _, c := range colClues {
		for color, n := range c.ColorSums() {
			colSums[color] += n
		}
	}
	// Blotted clues only give a lower bound per color, so an exact
	// mismatch check would reject valid blotted puzzles; skip the
	// per-color equality check whenever either axis carries a blot.
	if linesHaveBlots(rowClues) || linesHaveBlots(colClues) {
		return nil
	}
	for color, n := range rowSums {
		if colSums[color] != n {
			return fmt.Errorf("%w: color %d has %d cells in rows, %d in columns", ErrClueMismatch, color, n, colSums[color])
		}
	}
	for color, n := range colSums {
		if rowSums[color] != n {
			return fmt.Errorf("%w: color %d has %d cells in rows, %d in columns", ErrClueMismatch, color, rowSums[color], n)
		}
	}

	return nil
}

func linesHaveBlots(clues []clue.Clue) bool {
	for _, c := range clues {
		if c.HasBlots() {
			return true
		}
	}

	return false
}

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Colored reports whether the board uses more than the Space/Box palette.
func (b *Board) Colored() bool { return b.colored }

// HasBlots reports whether any row or column clue contains a blotted block.
func (b *Board) HasBlots() bool { return b.hasBlots }

// Palette returns the board's color palette.
func (b *Board) Palette() *cell.Palette { return b.palette }

// RowClue returns the clue for row i.
func (b *Board) RowClue(i int) clue.Clue { return b.rowClues[i] }

// ColumnClue returns the clue for column j.
func (b *Board) ColumnClue(j int) clue.Clue { return b.colClues[j] }

// GetRow returns a snapshot of row i's current cell states.
func (b *Board) GetRow(i int) []cell.State {
	b.mu.RLock()
	defer b.mu.RUnlock()

	row := make([]cell.State, b.width)
	copy(row, b.cells[i])

	return row
}

// GetColumn returns a snapshot of column j's current cell states.
func (b *Board) GetColumn(j int) []cell.State {
	b.mu.RLock()
	defer b.mu.RUnlock()

	col := make([]cell.State, b.height)
	for i := 0; i < b.height; i++ {
		col[i] = b.cells[i][j]
	}

	return col
}

// SetRow replaces row i with newCells. Each new cell must be a subset of
// the cell it replaces; a violation returns ErrNonMonotoneWrite and leaves
// the board unchanged. Returns the count of cells that strictly narrowed.
func (b *Board) SetRow(i int, newCells []cell.State) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(newCells) != b.width {
		return 0, fmt.Errorf("%w: row %d has width %d, got %d", ErrLengthMismatch, i, b.width, len(newCells))
	}
	if err := checkMonotone(b.cells[i], newCells); err != nil {
		return 0, fmt.Errorf("row %d: %w", i, err)
	}

	changed := 0
	for j, nc := range newCells {
		if nc != b.cells[i][j] {
			changed++
		}
		b.cells[i][j] = nc
	}
	if changed > 0 && b.onRowUpdate != nil {
		b.onRowUpdate(i)
	}

	return changed, nil
}

// SetColumn replaces column j with newCells, with the same monotonicity
// contract as SetRow.
func (b *Board) SetColumn(j int, newCells []cell.State) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(newCells) != b.height {
		return 0, fmt.Errorf("%w: column %d has height %d, got %d", ErrLengthMismatch, j, b.height, len(newCells))
	}
	old := make([]cell.State, b.height)
	for i := 0; i < b.height; i++ {
		old[i] = b.cells[i][j]
	}
	if err := checkMonotone(old, newCells); err != nil {
		return 0, fmt.Errorf("column %d: %w", j, err)
	}

	changed := 0
	for i, nc := range newCells {
		if nc != old[i] {
			changed++
		}
		b.cells[i][j] = nc
	}
	if changed > 0 && b.onColumnUpdate != nil {
		b.onColumnUpdate(j)
	}

	return changed, nil
}

func checkMonotone(old, next []cell.State) error {
	for i := range next {
		if !next[i].IsSubsetOf(old[i]) {
			return fmt.Errorf("%w: cell %d widened from %b to %b", ErrNonMonotoneWrite, i, old[i], next[i])
		}
	}

	return nil
}

// RowSolutionRate returns the fraction of row i's cells that are solved.
func (b *Board) RowSolutionRate(i int) float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return solvedFraction(b.cells[i])
}

// ColumnSolutionRate returns the fraction of column j's cells that are solved.
func (b *Board) ColumnSolutionRate(j int) float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	col := make([]cell.State, b.height)
	for i := 0; i < b.height; i++ {
		col[i] = b.cells[i][j]
	}

	return solvedFraction(col)
}

func solvedFraction(line []cell.State) float64 {
	if len(line) == 0 {
		return 1
	}
	solved := 0
	for _, c := range line {
		if c.IsSolved() {
			solved++
		}
	}

	return float64(solved) / float64(len(line))
}

// SolutionRate returns the fraction of all cells on the board that are solved.
func (b *Board) SolutionRate() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	total := b.height * b.width
	if total == 0 {
		return 1
	}
	solved := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c.IsSolved() {
				solved++
			}
		}
	}

	return float64(solved) / float64(total)
}

// IsSolvedFull reports whether every cell on the board is solved.
func (b *Board) IsSolvedFull() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, row := range b.cells {
		for _, c := range row {
			if !c.IsSolved() {
				return false
			}
		}
	}

	return true
}

// AttemptsToTry returns the heuristic priority used to seed blotted-board
// jobs: the number of times the given line has previously been popped from
// the propagation queue without becoming fully solved. It starts at 0 and
// is monotone in remaining ambiguity (a line tried more without resolving
// sorts later), per spec's open heuristic requirement.
func (b *Board) AttemptsToTry(axis Axis, idx int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if axis == Column {
		return b.colAttempts[idx]
	}

	return b.rowAttempts[idx]
}

// RecordAttempt increments the attempt counter for the given line. Called
// by the propagation driver each time a line of a board with blots is
// popped from the queue and does not fully solve.
func (b *Board) RecordAttempt(axis Axis, idx int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if axis == Column {
		b.colAttempts[idx]++
	} else {
		b.rowAttempts[idx]++
	}
}

// SetSolved sets the externally-visible solved flag.
func (b *Board) SetSolved(solved bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.solved = solved
}

// IsSolved returns the flag last set by SetSolved (distinct from
// IsSolvedFull, which recomputes from the grid every call).
func (b *Board) IsSolved() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.solved
}

// SolutionRoundCompleted fires the OnSolutionRoundComplete hook, if any.
// Called by the propagation driver after a fixpoint round.
func (b *Board) SolutionRoundCompleted() {
	b.mu.RLock()
	hook := b.onSolutionRoundComplete
	b.mu.RUnlock()
	if hook != nil {
		hook()
	}
}

// Snapshot returns a byte-identical copy of the current cell matrix.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cells := make([][]cell.State, b.height)
	for i, row := range b.cells {
		cells[i] = make([]cell.State, b.width)
		copy(cells[i], row)
	}

	return Snapshot{cells: cells}
}

// Restore replaces the cell matrix with a previously taken Snapshot.
// Restore bypasses the monotone-write check: a snapshot restore is meant
// to undo a failed speculative assumption, which may widen cells back to
// their pre-assumption state.
func (b *Board) Restore(s Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, row := range s.cells {
		copy(b.cells[i], row)
	}
}

// Solutions returns the distinct complete grids discovered so far by the
// contradiction solver's speculative propagation. A puzzle — monochrome
// or colored — can admit more than one valid grid; RecordSolutionIfComplete
// records every distinct one Probe's trial assumptions turn up.
func (b *Board) Solutions() []Grid {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Grid, len(b.solutions))
	copy(out, b.solutions)

	return out
}

// RecordSolutionIfComplete appends the current grid to Solutions if every
// cell is solved and the grid has not already been recorded. Returns true
// if a new solution was recorded.
func (b *Board) RecordSolutionIfComplete() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, row := range b.cells {
		for _, c := range row {
			if !c.IsSolved() {
				return false
			}
		}
	}

	grid := make(Grid, b.height)
	for i, row := range b.cells {
		grid[i] = make([]cell.Color, b.width)
		for j, c := range row {
			grid[i][j] = c.Solved()
		}
	}
	for _, existing := range b.solutions {
		if gridsEqual(existing, grid) {
			return false
		}
	}
	b.solutions = append(b.solutions, grid)

	return true
}

func gridsEqual(a, b Grid) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}
