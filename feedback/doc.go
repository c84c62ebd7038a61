// Package feedback encodes the per-letter result of comparing a guess word
// against a solution word, and precomputes those results for whole word lists.
//
// Every comparison collapses to a single Code — an integer in [0, 3^L) where
// L is the fixed word length. Base-3 digit i describes letter position i:
//
//	0 — absent:            the letter does not occur in the solution
//	1 — present-elsewhere: the letter occurs, but at a different position
//	2 — exact:             the letter matches at this position
//
// Duplicate letters follow the reference game's rule exactly: a guess letter
// is credited at most once per copy actually present in the solution, with
// exact matches claimed first and remaining copies handed out left to right.
//
// The Matrix type evaluates Encode once for every (guess, solution) pair at
// construction time. For realistic word lists this table is the critical
// memoization of the whole strategy search: every later lookup is a single
// indexed load.
//
// Complexity:
//
//	Encode     — O(L²) worst case (inner scan for present-elsewhere letters)
//	NewMatrix  — O(|guesses|·|solutions|·L²) time, O(|guesses|·|solutions|) memory
//	Matrix.At  — O(1)
//
// Word lists are validated once, at NewMatrix: both lists must be non-empty,
// every word must have length WordLength, and every solution must also be
// present in the guess list. Violations surface as the sentinel errors in
// errors.go, wrapped with the offending word.
package feedback
