// Package solver (nonogram) is the core solving engine behind a nonogram
// puzzle solver: given row and column clues and a partially known grid,
// it narrows every cell to the tightest solution it can prove, falling
// back to guess-and-refute probing when plain propagation stalls.
//
// 🧩 What is nonogram/solver?
//
//	A thread-safe engine with no third-party production dependency that brings together:
//
//	  • Cell encoding: a bitmask of candidate colors, monochrome or colored
//	  • A line solver: the tightest refinement of one row or column
//	  • A propagation driver: a priority-queue fixpoint loop over dirty lines
//	  • A contradiction solver: guess, propagate, refute, or commit
//
// ✨ Why this shape?
//
//   - Sound      — every refinement is a monotone narrowing, never a guess
//     that leaks into the board without being proven
//   - Complete   — the line solver's FSM pass finds exactly the cells every
//     valid placement agrees on, not just an overlap heuristic
//   - Extensible — OnRowUpdate/OnColumnUpdate/OnSolutionRoundComplete hooks
//     let a caller observe a solve without the core ever importing a logger
//
// Everything is organized under one subpackage per concern:
//
//	cell/          — bitmask cell encoding and color palettes
//	clue/          — blocks, clues, feasibility arithmetic
//	board/         — the 2-D grid, monotone mutation, hooks
//	line/          — per-line solving methods (overlap, FSM, blotted)
//	linecache/     — bounded LRU memoization of line solves
//	propagate/     — the priority-queue propagation driver
//	contradiction/ — guess-and-refute probing
//	solve/         — the single orchestrator entry point
//
// Puzzle input parsing, rendering, and CLI/web front-ends are deliberately
// out of scope; see solve.Solve for the one call a caller needs.
//
//	go get github.com/nonogram/solver
package solver
