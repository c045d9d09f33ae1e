package imt

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/Layr-Labs/imt-go/pkg/hasher"
)

// VerifyHashPath recomputes the root from a leaf hash and its path and
// compares it to the expected root. The leaf index supplies the parity bit
// at each level: even means the path node is the left child of its pair.
// Verification is pure and needs no tree, only the compressor the tree was
// built with.
func VerifyHashPath(leafHash fr.Element, index uint64, path HashPath, root fr.Element, c hasher.Compressor) bool {
	current := leafHash
	idx := index

	for _, pair := range path {
		self := pair.Left
		if idx%2 == 1 {
			self = pair.Right
		}
		if !self.Equal(&current) {
			return false
		}
		current = c.Compress(&pair.Left, &pair.Right)
		idx /= 2
	}

	return current.Equal(&root)
}

// ProveMembership builds a membership proof for an inserted value by
// walking the linked list to its slot. Returns ErrValueNotFound if the
// value was never inserted; the sentinel zero is not a member.
func (t *Tree) ProveMembership(value fr.Element) (*MembershipProof, error) {
	if value.IsZero() {
		return nil, ErrValueNotFound
	}

	idx := uint64(0)
	for {
		leaf := t.leaves[idx]
		if leaf.NextValue.IsZero() || leaf.NextValue.Cmp(&value) > 0 {
			return nil, ErrValueNotFound
		}
		if leaf.NextValue.Equal(&value) {
			idx = leaf.NextIndex
			break
		}
		idx = leaf.NextIndex
	}

	path, err := t.HashPath(idx)
	if err != nil {
		return nil, err
	}

	return &MembershipProof{
		LeafIndex: idx,
		Leaf:      t.leaves[idx],
		Path:      path,
	}, nil
}

// VerifyMembership checks a membership proof against a root: the leaf
// preimage must contain the value and its hash path must recombine to the
// root.
func VerifyMembership(proof *MembershipProof, value fr.Element, root fr.Element, c hasher.Compressor) bool {
	if proof == nil {
		return false
	}
	if !proof.Leaf.Value.Equal(&value) {
		return false
	}

	leafHash := c.HashLeaf(&proof.Leaf.Value, proof.Leaf.NextIndex, &proof.Leaf.NextValue)
	return VerifyHashPath(leafHash, proof.LeafIndex, proof.Path, root, c)
}

// ProveNonMembership builds a non-membership proof for an absent value: the
// bracketing low leaf plus its hash path. Returns ErrValuePresent if the
// value is in fact a member (the sentinel zero always is).
func (t *Tree) ProveNonMembership(value fr.Element) (*NonMembershipProof, error) {
	if value.IsZero() {
		return nil, ErrValuePresent
	}

	idx := uint64(0)
	for {
		leaf := t.leaves[idx]
		if leaf.NextValue.Equal(&value) {
			return nil, ErrValuePresent
		}
		if leaf.NextValue.IsZero() || leaf.NextValue.Cmp(&value) > 0 {
			break
		}
		idx = leaf.NextIndex
	}

	path, err := t.HashPath(idx)
	if err != nil {
		return nil, err
	}

	return &NonMembershipProof{
		Value:        value,
		LowLeafIndex: idx,
		LowLeaf:      t.leaves[idx],
		Path:         path,
	}, nil
}

// VerifyNonMembership checks a non-membership proof against a root. The low
// leaf must bracket the value — lowLeaf.Value < value, and lowLeaf.NextValue
// is either zero (no successor) or strictly greater than value — and the
// low leaf must be committed under the root.
func VerifyNonMembership(proof *NonMembershipProof, root fr.Element, c hasher.Compressor) bool {
	if proof == nil {
		return false
	}
	if proof.Value.IsZero() {
		return false
	}

	// Bracket check. The sentinel head has value 0, which is below any
	// provable value, so Cmp < 0 covers it too.
	if proof.LowLeaf.Value.Cmp(&proof.Value) >= 0 {
		return false
	}
	if !proof.LowLeaf.NextValue.IsZero() && proof.LowLeaf.NextValue.Cmp(&proof.Value) <= 0 {
		return false
	}

	leafHash := c.HashLeaf(&proof.LowLeaf.Value, proof.LowLeaf.NextIndex, &proof.LowLeaf.NextValue)
	return VerifyHashPath(leafHash, proof.LowLeafIndex, proof.Path, root, c)
}
