package clue

import (
	"fmt"

	"github.com/nonogram/solver/cell"
)

// Block is one contiguous run of filled cells within a row or column.
// Length is the run's length (or its minimum length, when Blot is true).
// Color identifies which palette color fills the run; it is never
// cell.Space — a block always denotes filled cells.
type Block struct {
	Length int
	Color  cell.Color
	Blot   bool
}

// Box returns a monochrome block of the given length.
func Box(length int) Block {
	return Block{Length: length, Color: cell.Box}
}

// Colored returns a block of the given length and color.
func Colored(length int, c cell.Color) Block {
	return Block{Length: length, Color: c}
}

// Blot returns a monochrome blotted block whose real length is unknown but
// at least minLength.
func Blot(minLength int) Block {
	return Block{Length: minLength, Color: cell.Box, Blot: true}
}

// BlotColored returns a blotted block of the given color.
func BlotColored(minLength int, c cell.Color) Block {
	return Block{Length: minLength, Color: c, Blot: true}
}

// Clue is the ordered sequence of blocks describing one row or column. An
// empty Clue means the whole line is empty (all Space).
type Clue []Block

// Validate reports ErrInvalidBlock if any block has a non-positive length
// or declares cell.Space as its color.
func (c Clue) Validate() error {
	for i, b := range c {
		if b.Length <= 0 {
			return fmt.Errorf("%w: block %d has length %d", ErrInvalidBlock, i, b.Length)
		}
		if b.Color == cell.Space {
			return fmt.Errorf("%w: block %d cannot be colored Space", ErrInvalidBlock, i)
		}
	}

	return nil
}

// IsEmpty reports whether the clue has no blocks at all.
func (c Clue) IsEmpty() bool {
	return len(c) == 0
}

// HasBlots reports whether any block in the clue has unknown length.
func (c Clue) HasBlots() bool {
	for _, b := range c {
		if b.Blot {
			return true
		}
	}

	return false
}

// MinSpan returns the minimum number of cells required to lay out the
// clue: the sum of block lengths (blotted blocks counted at their declared
// minimum) plus one mandatory gap between any two consecutive blocks that
// share the same color. Blocks of different colors may touch, so no gap is
// charged between them.
func (c Clue) MinSpan() int {
	span := 0
	for i, b := range c {
		span += b.Length
		if i > 0 && c[i-1].Color == b.Color {
			span++
		}
	}

	return span
}

// ColorSums returns, for each color used by the clue, the total number of
// cells that color must fill — the sum of lengths of blocks sharing that
// color. Used by board construction to check ClueMismatch across the two
// axes. Blotted blocks contribute only their declared minimum; callers
// comparing row/column sums should treat a board with blots as only
// checkable for a lower bound, not an exact match.
func (c Clue) ColorSums() map[cell.Color]int {
	sums := make(map[cell.Color]int, len(c))
	for _, b := range c {
		sums[b.Color] += b.Length
	}

	return sums
}

// Fits reports whether the clue can be laid out within a line of the given
// length.
func (c Clue) Fits(lineLength int) bool {
	return c.MinSpan() <= lineLength
}
