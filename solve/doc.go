// Package solve is the single orchestrator entry point: Solve takes a
// board and runs the whole pipeline — propagation to a fixpoint, then
// contradiction probing if propagation alone leaves cells ambiguous —
// and returns a Stats summary. It plays the same role for this module
// that builder.BuildGraph plays for lvlath: one function that resolves
// options, drives the stages in order, and wraps any stage's error with
// the context of where it happened.
package solve
