package solver

import "github.com/katalvlaran/wordsolve/feedback"

// partitionByFeedback groups the candidate solutions by the feedback code
// the given guess would produce against each. The returned slice has one
// bucket per possible code; codes that occur zero times stay nil and the
// builder skips them. Buckets inherit the ascending order of candidates,
// keeping them canonical as memo keys.
func (b *builder) partitionByFeedback(guess int, candidates []int) [][]int {
	buckets := make([][]int, feedback.NumCodes)
	for _, s := range candidates {
		code := b.m.At(guess, s)
		buckets[code] = append(buckets[code], s)
	}

	return buckets
}
