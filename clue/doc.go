// Package clue defines the Block and Clue types that describe a single row
// or column of a nonogram, plus the feasibility arithmetic (minimum span,
// per-color box sums) used by board construction and the line solver.
package clue
