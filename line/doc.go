// Package line solves a single row or column: given its clue and the
// current per-cell candidate-color masks, it returns the tightest
// monotone refinement consistent with every valid placement of the clue,
// or reports that no placement is consistent (ErrInconsistent).
//
// For every Method except MethodOverlap the refinement is complete: a
// color survives at a cell if and only if at least one valid arrangement
// of the clue assigns that color there.
// This is computed via a two-pass reachability over a small per-line
// automaton (forward from the start, backward from the end), the same
// shape as dijkstra's single-pass relaxation generalized to a two-pass
// DP — see fsm.go.
//
// Multiple named Method tags share this one contract; the propagation
// driver selects among them by board flavor (colored vs monochrome, with
// or without blotted blocks), dispatched through a fixed switch exactly
// like prim_kruskal.Compute dispatches on MSTOptions.Method.
package line
