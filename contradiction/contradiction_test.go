package contradiction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nonogram/solver/board"
	"github.com/nonogram/solver/cell"
	"github.com/nonogram/solver/clue"
	"github.com/nonogram/solver/contradiction"
	"github.com/nonogram/solver/propagate"
)

func TestProbeSolvesWithPropagationAlone(t *testing.T) {
	r := require.New(t)

	rows := []clue.Clue{{clue.Box(5)}}
	cols := []clue.Clue{{clue.Box(1)}, {clue.Box(1)}, {clue.Box(1)}, {clue.Box(1)}, {clue.Box(1)}}
	b, err := board.NewMonochrome(rows, cols)
	r.NoError(err)

	err = contradiction.Probe(b)
	r.NoError(err)
	r.True(b.IsSolvedFull())
	r.Len(b.Solutions(), 1)
}

func TestProbeAmbiguousDiagonalRecordsBothSolutions(t *testing.T) {
	r := require.New(t)

	// Two single-cell boxes per row and per column on a 2x2 board: the
	// main diagonal and the anti-diagonal are both valid, and nothing in
	// the clues distinguishes them, so plain propagation makes zero
	// progress and probing can't settle which cell gets the box either.
	rows := []clue.Clue{{clue.Box(1)}, {clue.Box(1)}}
	cols := []clue.Clue{{clue.Box(1)}, {clue.Box(1)}}
	b, err := board.NewMonochrome(rows, cols)
	r.NoError(err)

	err = contradiction.Probe(b)
	r.ErrorIs(err, contradiction.ErrAmbiguous)
	r.Len(b.Solutions(), 2)
}

func TestProbePassesThroughInconsistentBoard(t *testing.T) {
	r := require.New(t)

	rows := []clue.Clue{{clue.Box(3)}}
	cols := []clue.Clue{{clue.Box(1)}, {clue.Box(1)}, {clue.Box(1)}}
	initial := [][]cell.State{{cell.MonochromeUnknown, cell.SpaceState, cell.MonochromeUnknown}}
	b, err := board.NewMonochrome(rows, cols, board.WithInitialGrid(initial))
	r.NoError(err)

	err = contradiction.Probe(b)
	r.ErrorIs(err, propagate.ErrInconsistentBoard)
}
