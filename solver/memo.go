package solver

import "encoding/binary"

// memoKey canonicalizes a candidate set for memo lookup. Candidate slices
// are always produced in ascending index order (the root set is 0..n-1 and
// partitioning preserves order), so encoding the raw indexes is canonical:
// two logically identical sets always yield the same key.
func memoKey(candidates []int) string {
	buf := make([]byte, 4*len(candidates))
	for i, s := range candidates {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(s))
	}

	return string(buf)
}

// lookupMemo returns the node previously selected for the keyed candidate
// set, or nil. The lock covers only the map access, never the recursive
// build, so two workers may race to build the same set; both produce
// identical-valued nodes and last write wins.
func (b *builder) lookupMemo(key string) *node {
	b.memoMu.Lock()
	defer b.memoMu.Unlock()

	return b.memo[key]
}

// storeMemo records the winning node for a candidate set.
func (b *builder) storeMemo(key string, n *node) {
	b.memoMu.Lock()
	b.memo[key] = n
	b.memoMu.Unlock()
}
