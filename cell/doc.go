// Package cell defines the unified cell encoding shared by monochrome and
// colored nonogram boards: a bitmask of candidate colors, plus the palette
// that names those colors for colored puzzles.
//
// A cell is never allowed to become the zero mask once constructed; an
// intersection that would empty it is the primitive contradiction signal
// that the line solver and propagation driver surface as an error instead
// of a value.
package cell
