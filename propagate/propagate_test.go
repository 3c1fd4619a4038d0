package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nonogram/solver/board"
	"github.com/nonogram/solver/cell"
	"github.com/nonogram/solver/clue"
	"github.com/nonogram/solver/propagate"
)

func TestSolveFullyForcedSingleRow(t *testing.T) {
	r := require.New(t)

	rows := []clue.Clue{{clue.Box(5)}}
	cols := []clue.Clue{{clue.Box(1)}, {clue.Box(1)}, {clue.Box(1)}, {clue.Box(1)}, {clue.Box(1)}}
	b, err := board.NewMonochrome(rows, cols)
	r.NoError(err)

	changed, err := propagate.Solve(b)
	r.NoError(err)
	r.Greater(changed, 0)
	r.True(b.IsSolvedFull())
	r.True(b.IsSolved())

	for _, v := range b.GetRow(0) {
		r.Equal(cell.BoxState, v)
	}
}

func TestSolvePlusSign3x3(t *testing.T) {
	r := require.New(t)

	rows := []clue.Clue{{clue.Box(1)}, {clue.Box(3)}, {clue.Box(1)}}
	cols := []clue.Clue{{clue.Box(1)}, {clue.Box(3)}, {clue.Box(1)}}
	b, err := board.NewMonochrome(rows, cols)
	r.NoError(err)

	_, err = propagate.Solve(b)
	r.NoError(err)
	r.True(b.IsSolvedFull())

	want := [][]cell.State{
		{cell.SpaceState, cell.BoxState, cell.SpaceState},
		{cell.BoxState, cell.BoxState, cell.BoxState},
		{cell.SpaceState, cell.BoxState, cell.SpaceState},
	}
	for i, row := range want {
		r.Equal(row, b.GetRow(i))
	}
}

func TestSolveDetectsInconsistentBoard(t *testing.T) {
	r := require.New(t)

	rows := []clue.Clue{{clue.Box(3)}}
	cols := []clue.Clue{{clue.Box(1)}, {clue.Box(1)}, {clue.Box(1)}}
	initial := [][]cell.State{{cell.MonochromeUnknown, cell.SpaceState, cell.MonochromeUnknown}}
	b, err := board.NewMonochrome(rows, cols, board.WithInitialGrid(initial))
	r.NoError(err)

	_, err = propagate.Solve(b)
	r.ErrorIs(err, propagate.ErrInconsistentBoard)
}

func TestSolveAlreadySolvedShortCircuits(t *testing.T) {
	r := require.New(t)

	rows := []clue.Clue{{clue.Box(1)}}
	cols := []clue.Clue{{clue.Box(1)}}
	initial := [][]cell.State{{cell.BoxState}}
	b, err := board.NewMonochrome(rows, cols, board.WithInitialGrid(initial))
	r.NoError(err)

	changed, err := propagate.Solve(b)
	r.NoError(err)
	r.Equal(0, changed)
	r.True(b.IsSolved())
}

func TestSolveFiresRoundCompleteHook(t *testing.T) {
	r := require.New(t)

	rows := []clue.Clue{{clue.Box(5)}}
	cols := []clue.Clue{{clue.Box(1)}, {clue.Box(1)}, {clue.Box(1)}, {clue.Box(1)}, {clue.Box(1)}}
	hits := 0
	b, err := board.NewMonochrome(rows, cols, board.WithOnSolutionRoundComplete(func() { hits++ }))
	r.NoError(err)

	_, err = propagate.Solve(b)
	r.NoError(err)
	r.Equal(1, hits)
}
