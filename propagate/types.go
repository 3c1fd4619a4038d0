package propagate

import (
	"github.com/nonogram/solver/board"
	"github.com/nonogram/solver/clue"
	"github.com/nonogram/solver/line"
	"github.com/nonogram/solver/linecache"
)

// config holds the resolved settings for a single Solve call.
type config struct {
	rowsFirst bool
	rows      []int
	cols      []int
	cache     *linecache.Cache
}

func defaultConfig() config {
	return config{rowsFirst: true}
}

// Option configures a propagation run.
type Option func(*config)

// WithRowsFirst controls which axis wins priority ties when seeding the
// queue. true (the default) seeds rows ahead of columns; false reverses
// it. Ties beyond the axis are broken by insertion order.
func WithRowsFirst(rowsFirst bool) Option {
	return func(c *config) {
		c.rowsFirst = rowsFirst
	}
}

// WithLines restricts the run to the given row and column indices
// instead of the whole board. A nil slice means "every line on that
// axis" (the default for both).
func WithLines(rows, cols []int) Option {
	return func(c *config) {
		c.rows = rows
		c.cols = cols
	}
}

// WithCache supplies a shared linecache.Cache so repeated runs (e.g. the
// many trial propagations a contradiction probe performs) benefit from
// each other's memoized line solves. Solve allocates a fresh
// linecache.DefaultCapacity cache of its own when no cache is given.
func WithCache(c *linecache.Cache) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}

// selectMethod picks the complete line.Method for clue c, matching the
// board's color and blot flavor, to run after solveOne's MethodOverlap
// pre-pass (skipped for blotted clues — see solveOne). Blotted clues
// always route to the blot-aware method regardless of run shape. Among
// non-blotted clues, one with four or more runs gets the BGU-tuned
// method and one with fewer runs gets the efficient method; the line's
// length is not considered. Both share solveFSM's implementation (see
// line.MethodBGU's doc comment), so the choice only affects which name
// shows up in cache keys and diagnostics.
func selectMethod(c clue.Clue, colored bool) line.Method {
	if c.HasBlots() {
		if colored {
			return line.MethodBlotColor
		}

		return line.MethodBlot
	}

	manyShortRuns := len(c) >= 4

	if manyShortRuns {
		if colored {
			return line.MethodBGUColor
		}

		return line.MethodBGU
	}

	if colored {
		return line.MethodEfficientColor
	}

	return line.MethodEfficient
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

func seedRows(b *board.Board, cfg config) []int {
	if cfg.rows != nil {
		return cfg.rows
	}

	return allIndices(b.Height())
}

func seedCols(b *board.Board, cfg config) []int {
	if cfg.cols != nil {
		return cfg.cols
	}

	return allIndices(b.Width())
}
