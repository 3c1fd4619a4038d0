package line

import "errors"

var (
	// ErrInconsistent is returned when no placement of the clue is
	// consistent with the line's current candidate masks: either the
	// clue cannot fit the line length at all, or every arrangement that
	// fits collides with an already-narrowed cell.
	ErrInconsistent = errors.New("line: clue inconsistent with current cells")

	// ErrUnknownMethod is returned by Solve for a Method value this
	// package does not recognize.
	ErrUnknownMethod = errors.New("line: unknown method")

	// ErrLengthMismatch names a cells slice whose length differs from
	// the line's. No function in this package returns it: Solve takes
	// the line length from len(cells).
	ErrLengthMismatch = errors.New("line: cells length mismatch")
)
