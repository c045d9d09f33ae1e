package imt

// nodeStatus marks whether a node's stored hash is stale relative to its
// children since the last settle pass.
type nodeStatus uint8

const (
	statusClean nodeStatus = iota
	statusDirty
)

// markDirty flags one node slot for recomputation of its ancestors.
func (t *Tree) markDirty(flat uint64) {
	t.status[flat] = statusDirty
}

// settle brings every internal hash up to date with the current leaf hashes
// and recomputes the root.
//
// The pass walks the internal levels bottom-up and recomputes a node only
// when at least one of its children is dirty; the recomputed node is itself
// marked dirty so the next level up sees the change, and the children are
// marked clean. Cost is O(depth) hashing per dirty leaf plus an O(n) flag
// scan. The root is recomputed unconditionally from the last two array
// slots, so the two top flags never need clearing.
func (t *Tree) settle() {
	for level := 1; level < t.depth; level++ {
		levelStart := t.table.Offset(level)
		childStart := t.table.Offset(level - 1)
		width := t.table.LevelWidth(level)

		for j := uint64(0); j < width; j++ {
			left := childStart + j*2
			right := left + 1
			if t.status[left] != statusDirty && t.status[right] != statusDirty {
				continue
			}

			node := levelStart + j
			t.hashes[node] = t.compressor.Compress(&t.hashes[left], &t.hashes[right])
			t.status[left] = statusClean
			t.status[right] = statusClean
			t.status[node] = statusDirty
		}
	}

	t.recomputeRoot()
}

// recomputeRoot sets the root from the two children in the final array
// slots.
func (t *Tree) recomputeRoot() {
	n := uint64(len(t.hashes))
	t.root = t.compressor.Compress(&t.hashes[n-2], &t.hashes[n-1])
}
