// Package linecache memoizes line package results. The propagation
// driver re-solves the same (clue, candidate mask, method) triple
// repeatedly as neighboring lines narrow shared cells; caching the
// result turns that from a rebuild of the clue's automaton plus a full
// two-pass sweep into a map lookup.
//
// The cache is a bounded LRU, evicting the least recently used entry
// once it exceeds its capacity. No example in the reference pack
// implements an LRU, so this package reaches for container/list — the
// same way the standard library's own documentation recommends pairing
// it with a map for this exact structure — rather than inventing a
// hand-rolled ring buffer.
package linecache
