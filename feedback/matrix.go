package feedback

import "fmt"

// Matrix is the immutable table of feedback codes for every
// (guess, solution) pair of two validated word lists. It is built once and
// never mutated afterwards, so it needs no synchronization.
//
// Storage is a single flat slice indexed guess-major: the code for guess g
// against solution s lives at g*numSolutions + s.
type Matrix struct {
	codes        []Code
	numGuesses   int
	numSolutions int
}

// NewMatrix validates both word lists and precomputes the feedback code for
// every (guess, solution) pair.
//
// Validation rules (construction-time configuration errors):
//   - both lists must be non-empty (ErrNoGuesses, ErrNoSolutions);
//   - every word must have length WordLength (ErrWordLength, wrapped with
//     the offending word and its length);
//   - every solution must also appear in the guess list
//     (ErrSolutionNotGuess, wrapped with the offending word).
//
// Complexity: O(|guesses|·|solutions|·L²) time, O(|guesses|·|solutions|) memory.
func NewMatrix(guesses, solutions []string) (*Matrix, error) {
	if err := checkWordLists(guesses, solutions); err != nil {
		return nil, err
	}

	m := &Matrix{
		codes:        make([]Code, len(guesses)*len(solutions)),
		numGuesses:   len(guesses),
		numSolutions: len(solutions),
	}
	for g, guess := range guesses {
		row := m.codes[g*m.numSolutions:]
		for s, solution := range solutions {
			row[s] = Encode(guess, solution)
		}
	}

	return m, nil
}

// At returns the precomputed code for guess index g against solution index s.
func (m *Matrix) At(g, s int) Code {
	return m.codes[g*m.numSolutions+s]
}

// NumGuesses reports the length of the guess list the matrix was built from.
func (m *Matrix) NumGuesses() int { return m.numGuesses }

// NumSolutions reports the length of the solution list the matrix was built from.
func (m *Matrix) NumSolutions() int { return m.numSolutions }

// checkWordLists enforces the construction-time invariants shared by every
// consumer of the matrix.
func checkWordLists(guesses, solutions []string) error {
	if len(guesses) == 0 {
		return ErrNoGuesses
	}
	if len(solutions) == 0 {
		return ErrNoSolutions
	}

	guessSet := make(map[string]struct{}, len(guesses))
	for _, guess := range guesses {
		if len(guess) != WordLength {
			return fmt.Errorf("%w: guess %q has length %d, expected %d",
				ErrWordLength, guess, len(guess), WordLength)
		}
		guessSet[guess] = struct{}{}
	}

	for _, solution := range solutions {
		if len(solution) != WordLength {
			return fmt.Errorf("%w: solution %q has length %d, expected %d",
				ErrWordLength, solution, len(solution), WordLength)
		}
		if _, ok := guessSet[solution]; !ok {
			return fmt.Errorf("%w: %q", ErrSolutionNotGuess, solution)
		}
	}

	return nil
}
