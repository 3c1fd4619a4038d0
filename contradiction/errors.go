package contradiction

import "errors"

var (
	// ErrNoSolution is returned when every candidate color at some cell
	// leads to a contradiction: the board, as currently constrained, has
	// no valid solution at all.
	ErrNoSolution = errors.New("contradiction: board admits no solution")

	// ErrAmbiguous is returned when probing can make no further
	// progress: at least one cell remains unsolved, but more than one of
	// its candidate colors propagates to a fixpoint without
	// contradiction, so single-level probing cannot pick between them.
	// This alone does not prove that more than one complete solution
	// exists.
	ErrAmbiguous = errors.New("contradiction: board has multiple solutions reachable by probing")
)
