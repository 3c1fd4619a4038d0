package propagate

import (
	"container/heap"
	"fmt"

	"github.com/nonogram/solver/board"
	"github.com/nonogram/solver/line"
	"github.com/nonogram/solver/linecache"
)

// Solve runs constraint propagation on b until no row or column can be
// narrowed any further, or the board is already fully solved. It returns
// the total number of cells narrowed across every write it performed.
//
// A line that cannot be solved at all (line.ErrInconsistent) stops the
// run immediately and returns ErrInconsistentBoard, wrapping the
// offending axis and index; the board is left exactly as it was after
// the last successful write, which is what the contradiction solver
// relies on to recognize a failed trial assumption.
func Solve(b *board.Board, opts ...Option) (int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cache == nil {
		cfg.cache = linecache.New(linecache.DefaultCapacity)
	}

	if b.IsSolvedFull() {
		b.SetSolved(true)

		return 0, nil
	}

	r := &runner{b: b, cfg: cfg}

	return r.run()
}

type runner struct {
	b   *board.Board
	cfg config
	pq  jobPQ
	seq int64
}

func (r *runner) axisRank(axis board.Axis) int {
	isRow := axis == board.Row
	if r.cfg.rowsFirst == isRow {
		return 0
	}

	return 1
}

func (r *runner) push(axis board.Axis, index, priority int) {
	r.seq++
	heap.Push(&r.pq, &job{
		axis:     axis,
		index:    index,
		priority: priority,
		axisRank: r.axisRank(axis),
		seq:      r.seq,
	})
}

func (r *runner) run() (int, error) {
	heap.Init(&r.pq)

	for _, i := range seedRows(r.b, r.cfg) {
		r.push(board.Row, i, r.seedPriority(board.Row, i))
	}
	for _, j := range seedCols(r.b, r.cfg) {
		r.push(board.Column, j, r.seedPriority(board.Column, j))
	}

	totalChanged := 0

	for r.pq.Len() > 0 {
		j := heap.Pop(&r.pq).(*job)

		changedAt, solvedLine, err := r.solveOne(j.axis, j.index)
		if err != nil {
			return totalChanged, fmt.Errorf("%w: %s %d: %v", ErrInconsistentBoard, j.axis, j.index, err)
		}
		totalChanged += len(changedAt)

		if r.b.HasBlots() && !solvedLine {
			r.b.RecordAttempt(j.axis, j.index)
		}

		if len(changedAt) > 0 {
			r.requeueCrossing(j.axis, j.priority, changedAt)
		}

		if r.b.IsSolvedFull() {
			break
		}
	}

	r.b.SetSolved(r.b.IsSolvedFull())
	r.b.SolutionRoundCompleted()

	return totalChanged, nil
}

// solveOne re-solves a single line and writes back the refinement. For
// non-blotted clues it runs the cheap MethodOverlap pass first — filling
// only the cells every leftmost/rightmost packing agrees on, assuming
// each block's exact length — and feeds its output into the complete
// method selectMethod picks, so the expensive two-pass automaton only
// ever starts from an already-tightened line. Blotted clues skip the
// overlap pre-pass: its leftmost/rightmost packing math takes each
// block's Length as exact, which for a blotted block is only a declared
// minimum, so the intersection it would compute is not a sound
// refinement. It returns the perpendicular-axis indices whose cell
// strictly narrowed (the crossing lines the caller must re-enqueue) and
// whether the line ended fully solved.
func (r *runner) solveOne(axis board.Axis, index int) ([]int, bool, error) {
	var (
		c     = lineClue(r.b, axis, index)
		cells = lineCells(r.b, axis, index)
	)

	toSolve := cells
	if !c.HasBlots() {
		overlapped, err := r.cfg.cache.Solve(c, cells, line.MethodOverlap, line.Solve)
		if err != nil {
			return nil, false, err
		}
		toSolve = overlapped
	}

	method := selectMethod(c, r.b.Colored())

	refined, err := r.cfg.cache.Solve(c, toSolve, method, line.Solve)
	if err != nil {
		return nil, false, err
	}

	if _, err := writeLine(r.b, axis, index, refined); err != nil {
		return nil, false, err
	}

	solved := true
	var changedAt []int
	for k, v := range refined {
		if v != cells[k] {
			changedAt = append(changedAt, k)
		}
		if !v.IsSolved() {
			solved = false
		}
	}

	return changedAt, solved, nil
}

// requeueCrossing pushes the perpendicular line at each index that
// strictly narrowed, with a priority one ahead of the job that narrowed
// it so follow-up work from a narrowed line outranks untouched seed jobs
// still in the queue (spec: "enqueue the perpendicular line crossing the
// newly refined cell").
func (r *runner) requeueCrossing(axis board.Axis, current int, changedAt []int) {
	perp := board.Column
	if axis == board.Column {
		perp = board.Row
	}
	for _, idx := range changedAt {
		r.push(perp, idx, r.priorityFor(perp, idx, current))
	}
}

// seedPriority returns the initial queue priority for a line: its running
// attempt count on a blotted board (see board.AttemptsToTry), otherwise 0.
func (r *runner) seedPriority(axis board.Axis, index int) int {
	if r.b.HasBlots() {
		return r.b.AttemptsToTry(axis, index)
	}

	return 0
}

// priorityFor returns the queue priority for a requeued line: on a
// blotted board it is the running attempt count (a line tried often
// without resolving sorts later, per board.AttemptsToTry), otherwise one
// less than the priority of the job that narrowed it.
func (r *runner) priorityFor(axis board.Axis, index, current int) int {
	if r.b.HasBlots() {
		return r.b.AttemptsToTry(axis, index)
	}

	return current - 1
}
