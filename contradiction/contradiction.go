package contradiction

import (
	"sort"

	"github.com/nonogram/solver/board"
	"github.com/nonogram/solver/cell"
	"github.com/nonogram/solver/linecache"
	"github.com/nonogram/solver/propagate"
)

// Probe drives b to a solution (or a proof there isn't one) using
// propagation alone when possible, falling back to guess-and-refute
// probing whenever propagation stalls with cells still ambiguous. It
// returns nil once the board is fully solved, ErrNoSolution if some
// cell's every candidate color refutes, or ErrAmbiguous if a full round
// over every still-undetermined cell made no progress anywhere.
func Probe(b *board.Board, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cache == nil {
		cfg.cache = linecache.New(linecache.DefaultCapacity)
	}

	if _, err := propagate.Solve(b, propagate.WithCache(cfg.cache)); err != nil {
		return err
	}

	for {
		if b.IsSolvedFull() {
			b.RecordSolutionIfComplete()
			b.SetSolved(true)

			return nil
		}

		cells := unsolvedCells(b)
		if len(cells) == 0 {
			// IsSolvedFull() was false, yet no ambiguous cell was found;
			// cannot happen for a well-formed board, but fail safe
			// rather than spin.
			return ErrAmbiguous
		}

		roundProgressed := false

		for _, rc := range cells {
			row := b.GetRow(rc.i)
			if row[rc.j].IsSolved() {
				// Narrowed by an earlier probe this same round.
				continue
			}

			progressed, err := probeCell(b, cfg, rc.i, rc.j)
			if err != nil {
				return err
			}
			if progressed {
				roundProgressed = true
			}
			if b.IsSolvedFull() {
				break
			}
		}

		if !roundProgressed {
			return ErrAmbiguous
		}
	}
}

type rowCol struct {
	i, j  int
	count int
}

// unsolvedCells returns every unsolved cell on the board, ordered by
// fewest candidate colors first (ties broken in row-major order) so a
// round tries the cheapest guesses to refute before the rest — but,
// unlike a single most-constrained pick, the round visits all of them
// before concluding no progress is possible.
func unsolvedCells(b *board.Board) []rowCol {
	var cells []rowCol

	for i := 0; i < b.Height(); i++ {
		row := b.GetRow(i)
		for j, v := range row {
			if v.IsSolved() {
				continue
			}
			cells = append(cells, rowCol{i: i, j: j, count: v.PopCount()})
		}
	}

	sort.SliceStable(cells, func(a, b int) bool {
		return cells[a].count < cells[b].count
	})

	return cells
}

// probeCell tries every candidate color of cell (i, j) as a speculative
// assumption, propagating each to a fixpoint and recording any complete
// solution it reaches. Per spec.md §4.5's colored-puzzle rule ("the
// probing iterates each candidate color in turn, marking the color as
// impossible whenever an assumption contradicts"), any candidate that
// leads to Inconsistency is eliminated even when more than one survives;
// a cell whose mask narrows (whether to a single color or merely fewer
// than it started with) counts as progress. It reports whether it made
// real progress, committed or partial.
func probeCell(b *board.Board, cfg config, i, j int) (bool, error) {
	row := b.GetRow(i)
	mask := row[j]
	colors := mask.Colors()

	var survivors []cell.Color

	for _, c := range colors {
		snap := b.Snapshot()

		trial := b.GetRow(i)
		trial[j] = cell.Single(c)
		if _, err := b.SetRow(i, trial); err != nil {
			b.Restore(snap)

			return false, err
		}

		_, propErr := propagate.Solve(b, propagate.WithCache(cfg.cache))
		if propErr == nil {
			if b.IsSolvedFull() {
				b.RecordSolutionIfComplete()
			}
			survivors = append(survivors, c)
		}

		b.Restore(snap)
	}

	if len(survivors) == 0 {
		return false, ErrNoSolution
	}
	if len(survivors) == len(colors) {
		return false, nil
	}

	return narrow(b, cfg, i, j, survivors)
}

// narrow replaces cell (i, j) with the union of the surviving colors —
// a strict monotone refinement since at least one candidate was
// eliminated — and re-propagates to let the narrower cell ripple out.
func narrow(b *board.Board, cfg config, i, j int, survivors []cell.Color) (bool, error) {
	var mask cell.State
	for _, c := range survivors {
		mask |= cell.Single(c)
	}
	row := b.GetRow(i)
	row[j] = mask
	if _, err := b.SetRow(i, row); err != nil {
		return false, err
	}
	if _, err := propagate.Solve(b, propagate.WithCache(cfg.cache)); err != nil {
		return false, err
	}

	return true, nil
}
