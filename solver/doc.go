// Package solver builds near-optimal decision trees for ternary-feedback
// word games over validated guess and solution lists.
//
// The strategy search works on word indexes only: a Solver is constructed
// once from two word lists (every solution must also be a valid guess) and
// precomputes the feedback.Matrix of all pairwise codes. Solve then grows a
// decision tree over the candidate solutions:
//
//  1. Rank every allowed guess by how finely its feedback codes partition
//     the current candidate set — the score is candidates-per-distinct-code,
//     lower is better, and a score below 1 short-circuits the scan outright.
//  2. For each of the top PruneLimit guesses, partition the candidates by
//     feedback code and recurse into every multi-element bucket; singleton
//     buckets resolve immediately (the guess either is the solution or pins
//     it down for one more guess).
//  3. Keep the candidate subtree with the lowest average number of guesses
//     among those that still fit inside the MaxGuesses budget.
//
// Identical candidate sets reached along different guess paths collapse
// through a memo table, so the result is a rooted DAG rather than a strict
// tree. Every node allocated during one Solve call — reachable from the
// final root or not — lives in an arena owned by the returned Result and is
// released as a unit when the Result is dropped.
//
// Sibling candidate guesses are explored in parallel under an
// admission-controlled dispatcher: work runs on a fresh goroutine while a
// worker slot is free and inline on the caller otherwise, so the search
// never blocks waiting for capacity. Two workers may race to build the same
// candidate set; both produce identical-valued nodes (ranking and selection
// are fully deterministic), so whichever lands in the memo last is as good
// as the other and DepthHistogram output is reproducible across runs.
//
// Solve is not safe to call concurrently with itself on one Solver instance.
// A Result is immutable and all its query methods are safe for concurrent
// use.
//
// Complexity is governed by two knobs: PruneLimit bounds the branching
// factor at every decision node and MaxGuesses bounds the depth. The
// reference game's values (PruneLimit 8, MaxGuesses 6) are the defaults.
package solver
