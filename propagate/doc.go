// Package propagate drives a board to a constraint-propagation fixpoint:
// it repeatedly picks the most promising row or column, re-solves it via
// the line package, writes the refinement back, and — whenever that
// write actually narrowed a cell — re-queues every line crossing a
// changed column or row. It stops once the queue drains (no line can be
// narrowed further) or, as a shortcut, immediately if the board already
// arrived solved.
//
// The driver is a priority queue over (axis, index) jobs, built the same
// way dijkstra.runner drives its relaxation loop: a container/heap
// min-heap with a lazy decrease-key (stale or duplicate entries are
// simply reprocessed — cheaply, since linecache.Cache makes a repeat
// solve of an unchanged line a map lookup).
package propagate
