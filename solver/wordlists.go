package solver

// CombineWordLists returns validGuesses extended with every solution not
// already present, preserving order and deduplicating. The game's rule that
// any solution is also a playable guess makes this the usual preprocessing
// step before New.
func CombineWordLists(validGuesses, solutions []string) []string {
	out := append([]string(nil), validGuesses...)

	seen := make(map[string]struct{}, len(validGuesses))
	for _, g := range validGuesses {
		seen[g] = struct{}{}
	}
	for _, s := range solutions {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	return out
}
