package imt

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"go.uber.org/zap"
)

// Insert threads value into the sorted linked list, commits the new leaf at
// the next free slot, and returns the new root.
//
// Placement is canonical: the value is rejected if it is already present,
// otherwise it is inserted immediately before the first strictly greater
// successor. On any error the tree is left untouched.
func (t *Tree) Insert(value fr.Element) (fr.Element, error) {
	newIndex := uint64(len(t.leaves))
	if newIndex >= t.totalLeaves {
		return fr.Element{}, ErrTreeFull
	}

	// The zero value is the list head sentinel; treat it as always present.
	if value.IsZero() {
		return fr.Element{}, ErrDuplicateValue
	}

	predecessor, err := t.findPredecessor(&value)
	if err != nil {
		return fr.Element{}, err
	}

	// The new leaf inherits the predecessor's old successor, then the
	// predecessor is rewired to point at the new leaf. Append before taking
	// the pointer: growing the slice may move it.
	t.leaves = append(t.leaves, Leaf{
		Value:     value,
		NextIndex: t.leaves[predecessor].NextIndex,
		NextValue: t.leaves[predecessor].NextValue,
	})
	p := &t.leaves[predecessor]
	p.NextIndex = newIndex
	p.NextValue = value

	t.hashes[newIndex] = t.compressor.HashLeaf(&t.leaves[newIndex].Value, t.leaves[newIndex].NextIndex, &t.leaves[newIndex].NextValue)
	t.hashes[predecessor] = t.compressor.HashLeaf(&p.Value, p.NextIndex, &p.NextValue)
	t.markDirty(newIndex)
	t.markDirty(predecessor)

	t.settle()

	t.logger.Debug("inserted value",
		zap.String("value", value.String()),
		zap.Uint64("leafIndex", newIndex),
		zap.Uint64("predecessor", predecessor),
	)

	return t.root, nil
}

// findPredecessor walks the linked list from the sentinel head and returns
// the index of the leaf after which value belongs: the first leaf whose
// cached successor is either absent or strictly greater than value. The walk
// does not mutate anything, so rejection leaves no partial state behind.
func (t *Tree) findPredecessor(value *fr.Element) (uint64, error) {
	idx := uint64(0)
	for {
		leaf := &t.leaves[idx]
		if leaf.NextValue.Equal(value) {
			return 0, ErrDuplicateValue
		}
		if leaf.NextValue.IsZero() || leaf.NextValue.Cmp(value) > 0 {
			return idx, nil
		}
		idx = leaf.NextIndex
	}
}
