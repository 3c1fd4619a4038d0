package line

import "github.com/nonogram/solver/cell"

// stateKind classifies an automaton state by what it is waiting for.
type stateKind int

const (
	// kindFree is a junction between blocks (or before the first block,
	// or after the last): it self-loops on Space forever, and — unless
	// it is the trailing state — has one concrete transition into the
	// next block's first cell.
	kindFree stateKind = iota

	// kindGapUnsatisfied is the first cell of a mandatory single-cell
	// gap between two same-color blocks: it has exactly one transition,
	// consuming a Space into the kindFree junction that follows it.
	kindGapUnsatisfied

	// kindBlock is one cell inside a run: it has exactly one transition,
	// consuming its fixed color into the next state in the run (or the
	// junction that follows the run).
	kindBlock

	// kindBlotExtra is the open tail of a blotted block: it self-loops
	// on its color (absorbing unboundedly many extra cells) and has one
	// epsilon transition into the junction that follows it (stopping the
	// run without consuming a cell).
	kindBlotExtra
)

// automatonState is one node of the per-line automaton compiled from a
// clue. Indices are assigned in the single left-to-right pass compile
// performs, so every non-self transition goes from a lower index to a
// higher one: forward and backward closures can each be computed in one
// ascending or descending sweep instead of a fixpoint loop.
type automatonState struct {
	kind     stateKind
	color    cell.Color
	outColor cell.Color
	hasOut   bool
}

// transition is one outgoing edge of a state. epsilon transitions consume
// no cell; every other transition consumes exactly one cell of the given
// color.
type transition struct {
	color   cell.Color
	next    int
	epsilon bool
}

// automaton is the compiled form of a single clue, independent of line
// length: the same automaton is replayed against cells of the exact
// length the caller supplies.
type automaton struct {
	states []automatonState
}

func minGap(prev, next clueBlock) int {
	if prev.color == next.color {
		return 1
	}

	return 0
}

// clueBlock is the minimal shape compile needs from a clue.Block, kept
// local to avoid an import cycle concern and to make the compiler
// agnostic to the exact clue package shape.
type clueBlock struct {
	length int
	color  cell.Color
	blot   bool
}

// compile builds the automaton for a non-empty clue. The accept state is
// always the last index.
func compile(blocks []clueBlock) automaton {
	var states []automatonState

	// Leading junction.
	states = append(states, automatonState{kind: kindFree})

	for i, b := range blocks {
		if i > 0 {
			gap := minGap(blocks[i-1], b)
			if gap == 1 {
				states = append(states, automatonState{kind: kindGapUnsatisfied})
			}
			states = append(states, automatonState{kind: kindFree})
		}

		// The junction's out-edge consumes the run's first cell, so a run
		// of length L needs only L-1 kindBlock states; after its last
		// mandatory cell a blot lands in a kindBlotExtra state
		// (self-loop to absorb more, epsilon to stop).
		states[len(states)-1].hasOut = true
		states[len(states)-1].outColor = b.color
		for p := 0; p < b.length-1; p++ {
			states = append(states, automatonState{kind: kindBlock, color: b.color})
		}
		if b.blot {
			states = append(states, automatonState{kind: kindBlotExtra, color: b.color})
		}
	}

	// Trailing junction.
	states = append(states, automatonState{kind: kindFree})

	return automaton{states: states}
}

func compileEmpty() automaton {
	return automaton{states: []automatonState{{kind: kindFree}}}
}

// accept returns the index of the automaton's unique accepting state.
func (a automaton) accept() int {
	return len(a.states) - 1
}

// outgoing returns the transitions leaving state idx.
func (a automaton) outgoing(idx int) []transition {
	st := a.states[idx]

	switch st.kind {
	case kindFree:
		out := []transition{{color: cell.Space, next: idx}}
		if st.hasOut {
			out = append(out, transition{color: st.outColor, next: idx + 1})
		}

		return out

	case kindGapUnsatisfied:
		return []transition{{color: cell.Space, next: idx + 1}}

	case kindBlock:
		return []transition{{color: st.color, next: idx + 1}}

	case kindBlotExtra:
		return []transition{
			{color: st.color, next: idx},
			{next: idx + 1, epsilon: true},
		}
	}

	return nil
}

// closeForward extends reach with every state reachable purely via
// epsilon transitions from a state already in reach. Epsilon edges only
// ever point to a strictly higher index, so one ascending sweep suffices.
func (a automaton) closeForward(reach []bool) {
	for s := 0; s < len(reach); s++ {
		if !reach[s] {
			continue
		}
		for _, t := range a.outgoing(s) {
			if t.epsilon {
				reach[t.next] = true
			}
		}
	}
}

// closeBackward extends reach with every state that can reach an already
// marked state via epsilon transitions alone. One descending sweep
// suffices for the same reason closeForward needs only one ascending one.
func (a automaton) closeBackward(reach []bool) {
	for s := len(reach) - 1; s >= 0; s-- {
		if reach[s] {
			continue
		}
		for _, t := range a.outgoing(s) {
			if t.epsilon && reach[t.next] {
				reach[s] = true
				break
			}
		}
	}
}
