package line

import (
	"fmt"

	"github.com/nonogram/solver/cell"
	"github.com/nonogram/solver/clue"
)

func toClueBlocks(c clue.Clue) []clueBlock {
	blocks := make([]clueBlock, len(c))
	for i, b := range c {
		blocks[i] = clueBlock{length: b.Length, color: b.Color, blot: b.Blot}
	}

	return blocks
}

// solveFSM is the complete two-pass reachability solver shared by every
// Method except MethodOverlap. It builds the clue's automaton once, then
// sweeps forward and backward over the line to find, for every cell,
// exactly the set of colors some valid arrangement assigns it.
func solveFSM(c clue.Clue, cells []cell.State) ([]cell.State, error) {
	length := len(cells)
	if !c.Fits(length) {
		return nil, fmt.Errorf("%w: clue cannot fit a line of length %d", ErrInconsistent, length)
	}

	var a automaton
	if c.IsEmpty() {
		a = compileEmpty()
	} else {
		a = compile(toClueBlocks(c))
	}

	numStates := len(a.states)
	accept := a.accept()

	forward := make([][]bool, length+1)
	forward[0] = make([]bool, numStates)
	forward[0][0] = true
	a.closeForward(forward[0])

	for i := 0; i < length; i++ {
		next := make([]bool, numStates)
		for s := 0; s < numStates; s++ {
			if !forward[i][s] {
				continue
			}
			for _, t := range a.outgoing(s) {
				if t.epsilon {
					continue
				}
				if cells[i].Has(t.color) {
					next[t.next] = true
				}
			}
		}
		a.closeForward(next)
		forward[i+1] = next
	}

	if !forward[length][accept] {
		return nil, fmt.Errorf("%w: no arrangement of the clue survives the known cells", ErrInconsistent)
	}

	backward := make([][]bool, length+1)
	backward[length] = make([]bool, numStates)
	backward[length][accept] = true
	a.closeBackward(backward[length])

	for i := length - 1; i >= 0; i-- {
		cur := make([]bool, numStates)
		for s := 0; s < numStates; s++ {
			for _, t := range a.outgoing(s) {
				if t.epsilon {
					continue
				}
				if cells[i].Has(t.color) && backward[i+1][t.next] {
					cur[s] = true
				}
			}
		}
		a.closeBackward(cur)
		backward[i] = cur
	}

	refined := make([]cell.State, length)
	for i := 0; i < length; i++ {
		var mask cell.State
		for s := 0; s < numStates; s++ {
			if !forward[i][s] {
				continue
			}
			for _, t := range a.outgoing(s) {
				if t.epsilon {
					continue
				}
				if cells[i].Has(t.color) && backward[i+1][t.next] {
					mask |= cell.Single(t.color)
				}
			}
		}
		refined[i] = mask
	}

	return refined, nil
}
