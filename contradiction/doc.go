// Package contradiction implements guess-and-refute probing: the
// propagation driver alone cannot solve every nonogram, since some
// puzzles require a case split to make progress. Each round, Probe visits
// every still-ambiguous cell, most constrained first, tries each of its
// candidate colors as a speculative assumption, and propagates from that
// assumption to a fixpoint. A trial that propagates to an inconsistency
// refutes that color outright; the cell is then narrowed for real to the
// colors that survived, whether one or several.
//
// The snapshot/assume/propagate/restore-or-commit shape mirrors
// flow.EdmondsKarp's augment-and-update-residual loop: try a path
// (assumption), measure its effect (propagate to fixpoint), and either
// keep it or roll back before trying the next one.
package contradiction
