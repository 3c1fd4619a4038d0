package propagate

import "errors"

// ErrInconsistentBoard is wrapped with the offending line's axis and
// index when line.Solve reports ErrInconsistent during a propagation
// run: the board's clues and current cells admit no solution.
var ErrInconsistentBoard = errors.New("propagate: board has no consistent solution")
