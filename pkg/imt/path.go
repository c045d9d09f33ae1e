package imt

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/Layr-Labs/imt-go/pkg/layout"
)

// HashPath returns the authentication path for the given leaf index: depth
// sibling pairs, leaf level first. The pass settles any pending dirty hash
// state before reading, so the pairs are never stale.
func (t *Tree) HashPath(index uint64) (HashPath, error) {
	if index >= t.totalLeaves {
		return nil, fmt.Errorf("%w: index %d, capacity %d", ErrIndexOutOfRange, index, t.totalLeaves)
	}

	t.settle()

	path := make(HashPath, t.depth)
	flat := index
	for level := 0; ; level++ {
		low, high := layout.SiblingPair(flat)
		path[level] = PathPair{Left: t.hashes[low], Right: t.hashes[high]}
		if level == t.depth-1 {
			break
		}
		flat = t.table.ParentOf(flat)
	}

	return path, nil
}

// UpdateLeafHash overwrites the committed hash of one leaf slot and returns
// the new root.
//
// This bypasses the linked-list bookkeeping entirely: the stored preimage
// table is not consulted or changed, only the node hashes above the slot are
// recomputed. It exists for callers that maintain leaf preimages externally,
// e.g. when mirroring an update produced inside a circuit.
func (t *Tree) UpdateLeafHash(index uint64, leafHash fr.Element) (fr.Element, error) {
	if index >= t.totalLeaves {
		return fr.Element{}, fmt.Errorf("%w: index %d, capacity %d", ErrIndexOutOfRange, index, t.totalLeaves)
	}

	t.hashes[index] = leafHash
	t.markDirty(index)
	t.settle()

	return t.root, nil
}
