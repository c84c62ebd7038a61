package solver

import (
	"sync"

	"github.com/katalvlaran/wordsolve/feedback"
)

// builder carries the per-Solve search state: the feedback matrix, the two
// pruning parameters, the shared memo table, the node arena and the worker
// dispatcher. A fresh builder is created for every Solve call, so memo and
// arena never leak across builds.
type builder struct {
	m          *feedback.Matrix
	maxGuesses int
	pruneLimit int
	pool       *dispatcher

	memoMu sync.Mutex
	memo   map[string]*node

	nodes *arena
}

// scanOutcome is the explicit early-termination signal of the bucket scan.
type scanOutcome int

const (
	// scanContinue: keep scanning further feedback codes.
	scanContinue scanOutcome = iota
	// scanBudgetExceeded: this subtree can no longer meet the guess budget;
	// stop scanning its remaining codes.
	scanBudgetExceeded
)

// build returns the decision node for a candidate set reached at the given
// depth, consulting and populating the memo table.
//
// A cached node is reused only when depth+cached.minDepth still fits the
// budget: the node itself is depth-independent (it is keyed purely by the
// candidate set), but a node acceptable at a shallow depth may be too deep
// to finish from here.
//
// Sibling candidate guesses are expanded fork-join style through the
// dispatcher; a lone candidate always runs inline.
func (b *builder) build(candidates []int, depth int) *node {
	key := memoKey(candidates)
	if cached := b.lookupMemo(key); cached != nil && depth+cached.minDepth <= b.maxGuesses {
		return cached
	}

	ranked := b.rankGuesses(candidates)
	subtrees := b.nodes.alloc(len(ranked))

	var wg sync.WaitGroup
	for i, sg := range ranked {
		st := subtrees[i]
		st.guess = sg.guess

		if len(ranked) == 1 {
			b.expand(st, candidates, depth)
			continue
		}
		b.pool.fork(&wg, func() { b.expand(st, candidates, depth) })
	}
	wg.Wait()

	// Second heuristic: among subtrees still within budget, keep the lowest
	// average number of guesses. If none qualifies, fall back to the first
	// candidate explored; callers tolerate a partially resolved subtree.
	best := subtrees[0]
	found := false
	for _, st := range subtrees {
		if depth+st.minDepth > b.maxGuesses {
			continue
		}
		if !found || st.averageGuesses() < best.averageGuesses() {
			best = st
			found = true
		}
	}

	b.storeMemo(key, best)

	return best
}

// expand explores every feedback bucket of st's guess over the candidate
// set, in ascending code order, aborting early once the subtree provably
// cannot meet the guess budget.
func (b *builder) expand(st *node, candidates []int, depth int) {
	buckets := b.partitionByFeedback(st.guess, candidates)
	for code := 0; code < feedback.NumCodes; code++ {
		if b.scanBucket(st, depth, buckets[code]) == scanBudgetExceeded {
			break
		}
	}
}

// scanBucket folds one feedback bucket into the subtree: empty buckets are
// skipped, singletons resolve immediately, and larger buckets recurse.
func (b *builder) scanBucket(st *node, depth int, bucket []int) scanOutcome {
	switch len(bucket) {
	case 0:
		return scanContinue
	case 1:
		b.markSolved(st, bucket[0])

		return scanContinue
	}

	child := b.build(bucket, depth+1)
	st.children = append(st.children, child)
	st.solvedCount += child.solvedCount
	// Every solution under child sits one guess deeper than the child's own
	// accounting, hence the extra solvedCount term.
	st.totalDepth += child.solvedCount + child.totalDepth
	if child.minDepth+1 < st.minDepth {
		st.minDepth = child.minDepth + 1
	}

	if depth+st.minDepth > b.maxGuesses {
		return scanBudgetExceeded
	}

	return scanContinue
}

// markSolved records a singleton bucket: either the node's guess is that
// lone solution (exact match, one guess) or the solution is pinned down and
// needs exactly one more guess to confirm.
func (b *builder) markSolved(st *node, solution int) {
	st.solvedCount++
	st.totalDepth++

	if b.m.At(st.guess, solution) == feedback.AllExact {
		st.exact = true
		if st.minDepth < 1 {
			st.minDepth = 1
		}

		return
	}

	st.leaves = append(st.leaves, solution)
	st.totalDepth++
	if st.minDepth < 2 {
		st.minDepth = 2
	}
}
