package solver

import (
	"fmt"

	"github.com/katalvlaran/wordsolve/feedback"
)

// Result is the handle to one completed build: the root decision node plus
// the arena owning every node the build ever allocated. Dropping the Result
// releases the whole graph as a unit.
//
// All methods are read-only and safe for concurrent use.
type Result struct {
	root       *node
	nodes      *arena
	solver     *Solver
	maxGuesses int
}

// AverageGuesses reports the mean number of guesses per solved solution,
// computed over the depth histogram. Zero when nothing was solved.
func (r *Result) AverageGuesses() float64 {
	counts := r.DepthHistogram()

	sum, solved := 0, 0
	for d, c := range counts {
		sum += (d + 1) * c
		solved += c
	}
	if solved == 0 {
		return 0
	}

	return float64(sum) / float64(solved)
}

// SolvedCount reports how many solutions the strategy resolves within the
// guess budget.
func (r *Result) SolvedCount() int {
	solved := 0
	for _, c := range r.DepthHistogram() {
		solved += c
	}

	return solved
}

// Unsolved reports how many solutions the strategy fails to resolve within
// the guess budget. Non-zero only for adversarial inputs where no candidate
// subtree fit the budget and the builder fell back to its first choice.
func (r *Result) Unsolved() int {
	return r.solver.matrix.NumSolutions() - r.SolvedCount()
}

// DepthHistogram counts solutions by the number of guesses at which they are
// first solved: index d holds the count solved with exactly d+1 guesses.
// The traversal is bounded by the build's MaxGuesses.
func (r *Result) DepthHistogram() []int {
	counts := make([]int, r.maxGuesses)
	tally(r.root, 0, counts)

	return counts
}

// tally walks the graph accumulating first-solved depths: an exact node
// solves its own word at the current depth, and each direct leaf costs one
// further guess.
func tally(n *node, depth int, counts []int) {
	if depth > len(counts)-1 {
		return
	}

	if n.exact {
		counts[depth]++
	}
	for _, child := range n.children {
		tally(child, depth+1, counts)
	}
	if depth < len(counts)-1 {
		counts[depth+1] += len(n.leaves)
	}
}

// GuessSequence reconstructs the strategy's play for one solution: every
// guess on the path from the root together with the feedback that solution
// answers, ending with the solution itself and the all-exact code.
//
// Errors:
//   - ErrUnknownSolution — the word is not in the solution list.
//   - ErrInconsistentGraph — the word is a known solution but the graph
//     cannot reach it; a build invariant was violated.
func (r *Result) GuessSequence(solution string) ([]Step, error) {
	target, ok := r.solver.solutionIndex[solution]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolution, solution)
	}

	stack, ok := r.findStack(r.root, target, nil)
	if !ok {
		return nil, fmt.Errorf("%w: %q (solution index %d)",
			ErrInconsistentGraph, solution, target)
	}

	steps := make([]Step, 0, len(stack)+1)
	for _, g := range stack {
		steps = append(steps, Step{
			Guess:    r.solver.guesses[g],
			Feedback: r.solver.matrix.At(g, target),
		})
	}
	steps = append(steps, Step{Guess: solution, Feedback: feedback.AllExact})

	return steps, nil
}

// findStack searches depth-first for the target solution and returns the
// guess indexes played before the final, solving guess. An exact node whose
// guess is the target terminates without contributing its own guess (the
// caller appends the solution as the last step); a direct leaf terminates
// after this node's guess.
func (r *Result) findStack(n *node, target int, prefix []int) ([]int, bool) {
	if n.exact {
		if s, ok := r.solver.guessSolution[n.guess]; ok && s == target {
			return append([]int(nil), prefix...), true
		}
	}

	prefix = append(prefix, n.guess)
	for _, leaf := range n.leaves {
		if leaf == target {
			return append([]int(nil), prefix...), true
		}
	}
	for _, child := range n.children {
		if stack, ok := r.findStack(child, target, prefix); ok {
			return stack, true
		}
	}

	return nil, false
}
