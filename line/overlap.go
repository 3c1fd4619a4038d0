package line

import (
	"fmt"

	"github.com/nonogram/solver/cell"
	"github.com/nonogram/solver/clue"
)

// solveOverlap computes the leftmost and rightmost packing of the clue's
// blocks (minimum mandatory gaps only: 1 cell between same-color
// neighbors, 0 between different colors) and forces the color of every
// cell the two packings agree is inside the same block. It never
// retracts a color based on a neighboring cell's narrowed candidates
// beyond that single intersect pass, so it can under-refine relative to
// solveFSM; callers needing a complete refinement use a non-overlap
// Method instead.
func solveOverlap(c clue.Clue, cells []cell.State) ([]cell.State, error) {
	length := len(cells)
	if !c.Fits(length) {
		return nil, fmt.Errorf("%w: clue cannot fit a line of length %d", ErrInconsistent, length)
	}

	refined := make([]cell.State, length)
	copy(refined, cells)

	if c.IsEmpty() {
		for i := range refined {
			refined[i] = refined[i].Intersect(cell.SpaceState)
			if refined[i] == 0 {
				return nil, fmt.Errorf("%w: empty clue conflicts with a known box at cell %d", ErrInconsistent, i)
			}
		}

		return refined, nil
	}

	n := len(c)
	leftStart := make([]int, n)
	leftStart[0] = 0
	for i := 1; i < n; i++ {
		leftStart[i] = leftStart[i-1] + c[i-1].Length + minGapBlocks(c[i-1], c[i])
	}

	rightStart := make([]int, n)
	rightStart[n-1] = length - c[n-1].Length
	for i := n - 2; i >= 0; i-- {
		rightStart[i] = rightStart[i+1] - minGapBlocks(c[i], c[i+1]) - c[i].Length
	}

	for i, b := range c {
		lo := rightStart[i]
		hi := leftStart[i] + b.Length // exclusive
		for pos := lo; pos < hi; pos++ {
			refined[pos] = refined[pos].Intersect(cell.Single(b.Color))
			if refined[pos] == 0 {
				return nil, fmt.Errorf("%w: block %d has no room at cell %d", ErrInconsistent, i, pos)
			}
		}
	}

	return refined, nil
}

func minGapBlocks(prev, next clue.Block) int {
	if prev.Color == next.Color {
		return 1
	}

	return 0
}
