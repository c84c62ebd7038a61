package solver

import "sync"

// arenaChunkSize is the node capacity of one arena chunk. Chunks are never
// regrown, only appended, so interior pointers stay valid for the arena's
// whole lifetime.
const arenaChunkSize = 512

// arena owns every node allocated during one build, whether or not it ends
// up reachable from the final root. The Result handle retains the arena and
// the whole graph is released as a unit; no node is freed individually.
type arena struct {
	mu     sync.Mutex
	chunks [][]node
}

func newArena() *arena { return &arena{} }

// alloc returns pointers to n freshly zeroed nodes. Safe for concurrent use
// by build workers.
func (a *arena) alloc(n int) []*node {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*node, n)
	for i := range out {
		last := len(a.chunks) - 1
		if last < 0 || len(a.chunks[last]) == cap(a.chunks[last]) {
			a.chunks = append(a.chunks, make([]node, 0, arenaChunkSize))
			last++
		}
		chunk := a.chunks[last][:len(a.chunks[last])+1]
		a.chunks[last] = chunk
		out[i] = &chunk[len(chunk)-1]
	}

	return out
}

// size reports how many nodes the arena has handed out.
func (a *arena) size() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	total := 0
	for _, chunk := range a.chunks {
		total += len(chunk)
	}

	return total
}
