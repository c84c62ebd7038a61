package solver

// node is one decision point in the graph: the guess to play for a given
// candidate set, together with the aggregates of everything solvable below.
// Nodes live in the build's arena; child links are plain non-owning pointers
// and the same node may be shared by several parents through the memo table.
type node struct {
	// guess is the index of the word chosen at this node.
	guess int

	// totalDepth accumulates the guess count of every solution resolved
	// beneath this node; averageGuesses = totalDepth / solvedCount.
	totalDepth  int
	solvedCount int

	// minDepth is the smallest number of further guesses from this node to
	// any solution; the builder prunes a subtree once depth+minDepth exceeds
	// the budget. It stays 0 until the first singleton bucket is recorded.
	minDepth int

	// exact marks that this node's guess is itself a solution (the
	// all-exact bucket was a singleton).
	exact bool

	// children holds one node per multi-element feedback bucket, in
	// ascending code order.
	children []*node

	// leaves are the solutions resolved by exactly one further guess:
	// singleton buckets whose feedback was not all-exact.
	leaves []int
}

// averageGuesses is the key quality metric of a subtree: the mean number of
// guesses needed per solution resolved under this node. Zero when nothing
// has been solved.
func (n *node) averageGuesses() float64 {
	if n.solvedCount == 0 {
		return 0
	}

	return float64(n.totalDepth) / float64(n.solvedCount)
}
