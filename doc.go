// Package wordsolve computes near-optimal guessing strategies for
// fixed-length word games with ternary per-letter feedback (exact match /
// present-elsewhere / absent), in the style of Wordle.
//
// 🚀 What is wordsolve?
//
//	A focused, thread-aware, almost-zero-dependency library that brings together:
//		• Feedback encoding: every (guess, solution) pair collapses to one base-3 code
//		• Feedback matrix: all pairwise codes precomputed once for O(1) lookup
//		• Guess ranking: score guesses by how finely they split the candidate set
//		• Decision-tree search: memoized, pruned, bounded-depth recursion
//		• Bounded parallelism: sibling candidate guesses explored on capped workers
//		• Result queries: depth histogram and per-solution guess sequences
//
// ✨ Why choose wordsolve?
//
//   - Exact reference rules – duplicate letters credited at most once per copy
//   - Deterministic – identical inputs always produce identical strategies
//   - Tunable – prune limit and guess budget bound both width and depth
//   - Pure Go – no cgo, hot paths on flat slices
//
// Under the hood, everything is organized under two subpackages:
//
//	feedback/ — Code, Encode, and the immutable guess×solution Matrix
//	solver/   — ranking, partitioning, the memoized tree builder and Result
//
// Quick sketch of a decision tree:
//
//	        salet
//	       ╱  │  ╲
//	   .y..G  │  y.G..
//	   crane  │  pious
//	          G..y.
//	          moist
//
//	each edge is a feedback code; each node is the next guess to play.
//
// Dive into the examples/ directory for runnable scenarios, and into
// solver.Options for the knobs that trade build time against strategy depth.
//
//	go get github.com/katalvlaran/wordsolve
package wordsolve
