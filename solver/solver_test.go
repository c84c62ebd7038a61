// Package solver_test exercises the public strategy-building API.
package solver_test

import (
	"testing"

	"github.com/katalvlaran/wordsolve/feedback"
	"github.com/katalvlaran/wordsolve/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSolutions is a small, well-separated word set every build test shares.
var testSolutions = []string{
	"crane", "slate", "bride", "fight", "mound", "pouch",
	"twist", "lemon", "vapor", "jerky", "whisk", "gloat",
}

// testGuesses extends the solutions with a few pure probe words.
var testGuesses = solver.CombineWordLists(
	[]string{"aeons", "thump", "blind", "grout", "spicy"}, testSolutions)

// newTestSolver constructs the shared fixture.
func newTestSolver(t *testing.T) *solver.Solver {
	t.Helper()

	s, err := solver.New(testGuesses, testSolutions)
	require.NoError(t, err, "fixture word lists must be valid")

	return s
}

// TestNew_ValidationPropagates ensures construction surfaces the feedback
// package's configuration errors unchanged.
func TestNew_ValidationPropagates(t *testing.T) {
	_, err := solver.New(nil, testSolutions)
	assert.ErrorIs(t, err, feedback.ErrNoGuesses)

	_, err = solver.New(testGuesses, nil)
	assert.ErrorIs(t, err, feedback.ErrNoSolutions)

	_, err = solver.New([]string{"abcde"}, []string{"edcba"})
	assert.ErrorIs(t, err, feedback.ErrSolutionNotGuess)

	_, err = solver.New([]string{"abcd"}, []string{"abcd"})
	assert.ErrorIs(t, err, feedback.ErrWordLength)
}

// TestNew_CopiesInputs verifies later mutation of the argument slices does
// not reach the Solver.
func TestNew_CopiesInputs(t *testing.T) {
	guesses := append([]string(nil), testGuesses...)
	solutions := append([]string(nil), testSolutions...)

	s, err := solver.New(guesses, solutions)
	require.NoError(t, err)

	guesses[0] = "xxxxx"
	solutions[0] = "yyyyy"

	res, err := s.Solve(solver.DefaultOptions())
	require.NoError(t, err)
	_, err = res.GuessSequence("crane")
	assert.NoError(t, err, "solver must have kept its own copy of the lists")
}

// TestSolve_OptionValidation covers every rejected Options field.
func TestSolve_OptionValidation(t *testing.T) {
	s := newTestSolver(t)

	bad := solver.DefaultOptions()
	bad.MaxGuesses = 0
	_, err := s.Solve(bad)
	assert.ErrorIs(t, err, solver.ErrOptionViolation, "MaxGuesses 0 must error")

	bad = solver.DefaultOptions()
	bad.PruneLimit = 0
	_, err = s.Solve(bad)
	assert.ErrorIs(t, err, solver.ErrOptionViolation, "PruneLimit 0 must error")

	bad = solver.DefaultOptions()
	bad.MaxWorkers = -1
	_, err = s.Solve(bad)
	assert.ErrorIs(t, err, solver.ErrOptionViolation, "negative MaxWorkers must error")
}

// TestSolve_HandComputedAverage pins the exact tree for a three-guess,
// two-solution set: "abcde" solves itself in one guess and pins "edcba" for
// a second, so the average is 1.5.
func TestSolve_HandComputedAverage(t *testing.T) {
	s, err := solver.New(
		[]string{"abcde", "edcba", "aabbc"},
		[]string{"abcde", "edcba"})
	require.NoError(t, err)

	res, err := s.Solve(solver.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 1.5, res.AverageGuesses(), 1e-12)
	assert.Equal(t, []int{1, 1, 0, 0, 0, 0}, res.DepthHistogram())
	assert.Equal(t, 2, res.SolvedCount())
	assert.Equal(t, 0, res.Unsolved())
}

// TestSolve_TwoWordScenario: with only "aaaaa" and "ababa" in play and the
// tightest prune limit, both solutions resolve within two guesses.
func TestSolve_TwoWordScenario(t *testing.T) {
	words := []string{"aaaaa", "ababa"}
	s, err := solver.New(words, words)
	require.NoError(t, err)

	opts := solver.DefaultOptions()
	opts.PruneLimit = 1
	res, err := s.Solve(opts)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Unsolved(), "both solutions must resolve")
	hist := res.DepthHistogram()
	assert.Equal(t, 1, hist[0], "one solution solved on the first guess")
	assert.Equal(t, 1, hist[1], "the other within two guesses")

	for _, w := range words {
		seq, serr := res.GuessSequence(w)
		require.NoError(t, serr)
		assert.LessOrEqual(t, len(seq), 2, "sequence for %q within two guesses", w)
	}
}

// TestSolve_FullFixture builds over the shared fixture and checks the
// global invariants: everything solved within budget, solved counts
// conserved bottom-up.
func TestSolve_FullFixture(t *testing.T) {
	s := newTestSolver(t)

	res, err := s.Solve(solver.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Unsolved(), "fixture must be fully solvable in six guesses")
	assert.Equal(t, len(testSolutions), res.SolvedCount())
	assert.True(t, res.SolvedCountConserved(), "solvedCount must be conserved bottom-up")
	assert.Greater(t, res.ArenaNodeCount(), 0)
	assert.GreaterOrEqual(t, res.AverageGuesses(), 1.0)
}

// TestSolve_Idempotent verifies that repeated builds — and builds under
// different worker caps — produce identical depth histograms.
func TestSolve_Idempotent(t *testing.T) {
	s := newTestSolver(t)

	opts := solver.DefaultOptions()
	first, err := s.Solve(opts)
	require.NoError(t, err)

	second, err := s.Solve(opts)
	require.NoError(t, err)
	assert.Equal(t, first.DepthHistogram(), second.DepthHistogram(),
		"two builds from identical inputs must agree")

	serial := solver.DefaultOptions()
	serial.MaxWorkers = 1
	third, err := s.Solve(serial)
	require.NoError(t, err)
	assert.Equal(t, first.DepthHistogram(), third.DepthHistogram(),
		"worker scheduling must not affect the strategy")
}

// TestSolve_SingleSolution: the degenerate one-solution game resolves at the
// root with no children.
func TestSolve_SingleSolution(t *testing.T) {
	s, err := solver.New([]string{"abcde", "edcba"}, []string{"edcba"})
	require.NoError(t, err)

	res, err := s.Solve(solver.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, res.RootChildCount())
	assert.Contains(t, []int{1, 2}, res.RootMinDepth())
	assert.Equal(t, 1, res.SolvedCount())

	seq, err := res.GuessSequence("edcba")
	require.NoError(t, err)
	require.Len(t, seq, 1, "the lone solution should be guessed outright")
	assert.Equal(t, "edcba", seq[0].Guess)
	assert.Equal(t, feedback.AllExact, seq[0].Feedback)
}

// TestCombineWordLists checks order preservation and deduplication.
func TestCombineWordLists(t *testing.T) {
	combined := solver.CombineWordLists(
		[]string{"aeons", "crane"},
		[]string{"crane", "slate"})
	assert.Equal(t, []string{"aeons", "crane", "slate"}, combined)

	// No solutions missing: guesses returned as-is.
	same := solver.CombineWordLists([]string{"crane", "slate"}, []string{"slate"})
	assert.Equal(t, []string{"crane", "slate"}, same)
}
