package solver

import (
	"errors"

	"github.com/katalvlaran/wordsolve/feedback"
)

// Sentinel errors for strategy building and result queries.
var (
	// ErrOptionViolation is returned by Solve when an Option field is invalid.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrUnknownSolution is returned by Result.GuessSequence when the
	// requested word is not in the solution list.
	ErrUnknownSolution = errors.New("solver: word is not in the solution list")

	// ErrInconsistentGraph is returned when a known solution cannot be
	// reached in the decision graph. It signals a violated build invariant,
	// not a caller mistake, and carries the solution for diagnosis.
	ErrInconsistentGraph = errors.New("solver: solution unreachable in decision graph")
)

// Options configures one Solve call.
//
// Fields:
//   - MaxGuesses — the guess budget: every solution should be reached within
//     this many guesses. Must be ≥ 1.
//   - PruneLimit — how many of the top-ranked candidate guesses are explored
//     at each decision node. Must be ≥ 1; clamped to |guesses|−1 at build
//     time. Surprisingly low values retain excellent results.
//   - MaxWorkers — cap on concurrently dispatched workers. 0 selects the
//     default of twice the number of CPUs; negative values are rejected.
//
// Example:
//
//	opts := solver.DefaultOptions()
//	opts.PruneLimit = 4 // trade a little optimality for a faster build
//	res, err := s.Solve(opts)
type Options struct {
	MaxGuesses int
	PruneLimit int
	MaxWorkers int
}

const (
	// DefaultMaxGuesses is the reference game's guess budget.
	DefaultMaxGuesses = 6

	// DefaultPruneLimit explores the top 8 ranked guesses per node, which
	// heuristically gives near-optimal trees at a reasonable cost.
	DefaultPruneLimit = 8
)

// DefaultOptions returns the reference game's parameters. MaxWorkers is left
// at 0 so Solve sizes the worker cap from the machine.
func DefaultOptions() Options {
	return Options{
		MaxGuesses: DefaultMaxGuesses,
		PruneLimit: DefaultPruneLimit,
	}
}

// validate rejects option values Solve cannot honor.
func (o Options) validate() error {
	if o.MaxGuesses < 1 {
		return ErrOptionViolation
	}
	if o.PruneLimit < 1 {
		return ErrOptionViolation
	}
	if o.MaxWorkers < 0 {
		return ErrOptionViolation
	}

	return nil
}

// Step is one entry of a reconstructed guess sequence: the word to play and
// the feedback the target solution answers with.
type Step struct {
	Guess    string
	Feedback feedback.Code
}
