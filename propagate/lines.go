package propagate

import (
	"github.com/nonogram/solver/board"
	"github.com/nonogram/solver/cell"
	"github.com/nonogram/solver/clue"
)

func lineClue(b *board.Board, axis board.Axis, index int) clue.Clue {
	if axis == board.Row {
		return b.RowClue(index)
	}

	return b.ColumnClue(index)
}

func lineCells(b *board.Board, axis board.Axis, index int) []cell.State {
	if axis == board.Row {
		return b.GetRow(index)
	}

	return b.GetColumn(index)
}

func writeLine(b *board.Board, axis board.Axis, index int, cells []cell.State) (int, error) {
	if axis == board.Row {
		return b.SetRow(index, cells)
	}

	return b.SetColumn(index, cells)
}
