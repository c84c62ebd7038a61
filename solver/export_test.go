package solver

// Test-only bridges into package internals, compiled for tests exclusively.

// ArenaNodeCount reports how many nodes the build allocated in total,
// reachable from the root or not.
func (r *Result) ArenaNodeCount() int { return r.nodes.size() }

// SolvedCountConserved walks the graph verifying the bottom-up invariant:
// every node's solvedCount equals its own exact match plus its direct
// leaves plus the solved counts of its children.
func (r *Result) SolvedCountConserved() bool { return solvedConserved(r.root) }

func solvedConserved(n *node) bool {
	total := len(n.leaves)
	if n.exact {
		total++
	}
	for _, child := range n.children {
		if !solvedConserved(child) {
			return false
		}
		total += child.solvedCount
	}

	return total == n.solvedCount
}

// RootMinDepth exposes the root node's minDepth for boundary tests.
func (r *Result) RootMinDepth() int { return r.root.minDepth }

// RootChildCount exposes the root node's child count for boundary tests.
func (r *Result) RootChildCount() int { return len(r.root.children) }
