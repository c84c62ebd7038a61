package feedback

const (
	// WordLength is the fixed number of letters per word.
	WordLength = 5

	// NumCodes is the number of distinct feedback codes: 3^WordLength.
	// It must fit the Code type; for WordLength=5, 243 < 256.
	NumCodes = 243

	// AllExact is the unique code whose every digit is exact — the feedback
	// produced when the guess equals the solution.
	AllExact Code = NumCodes - 1
)

// Code is one encoded comparison between a guess and a solution.
// Base-3 digit i of the value describes letter position i:
// 0 absent, 1 present-elsewhere, 2 exact.
type Code uint8

// String renders the code in clue notation, one byte per position reading
// left to right: '.' absent, 'y' present-elsewhere, 'G' exact.
// AllExact renders as "GGGGG".
func (c Code) String() string {
	buf := make([]byte, WordLength)
	v := int(c)
	for i := 0; i < WordLength; i++ {
		switch v % 3 {
		case 0:
			buf[i] = '.'
		case 1:
			buf[i] = 'y'
		case 2:
			buf[i] = 'G'
		}
		v /= 3
	}

	return string(buf)
}

// Encode compares guess against solution and returns the feedback Code.
//
// Exact matches are claimed first: position i is digit 2 whenever
// guess[i] == solution[i], and that solution letter is consumed. Remaining
// guess letters then scan the solution left to right for an unconsumed copy;
// the first hit yields digit 1 and consumes that copy, so duplicate guess
// letters are credited at most once per copy present in the solution.
//
// Both inputs must have length WordLength; callers obtain validated words
// via NewMatrix and the encoder itself performs no checks.
func Encode(guess, solution string) Code {
	var consumed [WordLength]bool

	code, mult := 0, 1
	for i := 0; i < WordLength; i++ {
		g := guess[i]

		if g == solution[i] {
			code += 2 * mult
			consumed[i] = true
			mult *= 3
			continue
		}

		// Scan for a present-elsewhere copy. Positions that will be exact
		// matches for their own guess letter are never handed out here,
		// including ones the outer loop has not reached yet.
		for j := 0; j < WordLength; j++ {
			if consumed[j] || guess[j] == solution[j] {
				continue
			}
			if solution[j] == g {
				code += mult
				consumed[j] = true
				break
			}
		}
		mult *= 3
	}

	return Code(code)
}
