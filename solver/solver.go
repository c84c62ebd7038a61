package solver

import (
	"runtime"

	"github.com/katalvlaran/wordsolve/feedback"
)

// Solver holds the immutable state for strategy searches over one pair of
// word lists: the lists themselves, the precomputed feedback matrix, and the
// index maps used by result queries. Construct once, Solve many times.
type Solver struct {
	guesses   []string
	solutions []string
	matrix    *feedback.Matrix

	// solutionIndex maps a solution word to its index.
	solutionIndex map[string]int
	// guessSolution maps a guess index to the solution index carrying the
	// same word, for the guesses that are themselves solutions.
	guessSolution map[int]int
}

// New validates the word lists, builds the feedback matrix and returns a
// ready Solver. Both lists are copied; later mutation of the arguments does
// not affect the Solver.
//
// Errors are the feedback package's construction sentinels: empty lists,
// wrong-length words, or a solution missing from the guess list.
func New(validGuesses, solutions []string) (*Solver, error) {
	guesses := append([]string(nil), validGuesses...)
	sols := append([]string(nil), solutions...)

	m, err := feedback.NewMatrix(guesses, sols)
	if err != nil {
		return nil, err
	}

	s := &Solver{
		guesses:       guesses,
		solutions:     sols,
		matrix:        m,
		solutionIndex: make(map[string]int, len(sols)),
		guessSolution: make(map[int]int, len(sols)),
	}
	for i, word := range sols {
		s.solutionIndex[word] = i
	}
	for g, word := range guesses {
		if i, ok := s.solutionIndex[word]; ok {
			s.guessSolution[g] = i
		}
	}

	return s, nil
}

// Matrix exposes the precomputed feedback matrix for read-only use.
func (s *Solver) Matrix() *feedback.Matrix { return s.matrix }

// Solve builds a decision tree over the full solution set and returns its
// Result handle. Each call starts from a fresh memo table and arena.
//
// Not safe to call concurrently with itself on the same Solver.
//
// Errors: ErrOptionViolation for invalid Options. The search itself never
// fails; with adversarial inputs the weaker guesses may be unable to meet
// the budget, in which case Result.Unsolved reports the shortfall.
func (s *Solver) Solve(opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	pruneLimit := opts.PruneLimit
	if limit := s.matrix.NumGuesses() - 1; pruneLimit > limit {
		pruneLimit = limit
	}
	if pruneLimit < 1 {
		// Degenerate single-guess list; explore that one guess.
		pruneLimit = 1
	}

	workers := opts.MaxWorkers
	if workers == 0 {
		// Twice the number of CPUs accounts for worker lifetime overlap.
		workers = 2 * runtime.NumCPU()
	}

	b := &builder{
		m:          s.matrix,
		maxGuesses: opts.MaxGuesses,
		pruneLimit: pruneLimit,
		pool:       newDispatcher(int64(workers)),
		memo:       make(map[string]*node),
		nodes:      newArena(),
	}

	candidates := make([]int, s.matrix.NumSolutions())
	for i := range candidates {
		candidates[i] = i
	}

	root := b.build(candidates, 0)

	return &Result{
		root:       root,
		nodes:      b.nodes,
		solver:     s,
		maxGuesses: opts.MaxGuesses,
	}, nil
}
