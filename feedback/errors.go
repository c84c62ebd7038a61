package feedback

import "errors"

var (
	// ErrNoGuesses indicates an empty valid-guess list.
	ErrNoGuesses = errors.New("feedback: guess list must be non-empty")
	// ErrNoSolutions indicates an empty solution list.
	ErrNoSolutions = errors.New("feedback: solution list must be non-empty")
	// ErrWordLength indicates a word whose length differs from WordLength.
	ErrWordLength = errors.New("feedback: word has wrong length")
	// ErrSolutionNotGuess indicates a solution absent from the guess list.
	ErrSolutionNotGuess = errors.New("feedback: solution missing from guess list")
)
