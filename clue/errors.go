package clue

import "errors"

// ErrInvalidBlock is returned when a block's length is not positive, a
// blotted block declares a non-positive minimum length, or a block is
// colored cell.Space.
var ErrInvalidBlock = errors.New("clue: block length must be positive")
