package imt

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Leaf is the preimage committed at one leaf slot. The non-zero leaves of
// the tree form a sorted singly-linked list over the inserted values:
// NextIndex addresses the leaf holding the next-larger value and NextValue
// caches that value. The list head lives at index 0 and is always the
// sentinel {0, 0, 0}.
type Leaf struct {
	// Value is the committed element.
	Value fr.Element

	// NextIndex is the leaf-array index of the successor, or 0 when this
	// leaf holds the largest value.
	NextIndex uint64

	// NextValue is the successor's value, or 0 when there is no successor.
	NextValue fr.Element
}

// PathPair is one level of a hash path: the two children of the node on the
// path from a leaf to the root, low array index first.
type PathPair struct {
	Left  fr.Element
	Right fr.Element
}

// HashPath is the authentication path for a leaf: depth sibling pairs
// ordered leaf level first. Combined with the leaf index parity bits it
// recomputes the root.
type HashPath []PathPair

// MembershipProof shows a value is committed in the tree: the full leaf
// preimage plus the hash path for its slot.
type MembershipProof struct {
	// LeafIndex is the slot holding the value.
	LeafIndex uint64

	// Leaf is the preimage at that slot.
	Leaf Leaf

	// Path is the hash path from the slot to the root.
	Path HashPath
}

// NonMembershipProof shows a value is absent from the tree: a "low leaf"
// whose value and cached successor value bracket the missing value, plus
// the hash path proving that low leaf is committed.
type NonMembershipProof struct {
	// Value is the absent value being proven.
	Value fr.Element

	// LowLeafIndex is the slot of the bracketing predecessor.
	LowLeafIndex uint64

	// LowLeaf is the predecessor's preimage. LowLeaf.Value < Value and
	// either LowLeaf.NextValue > Value or LowLeaf.NextValue == 0.
	LowLeaf Leaf

	// Path is the hash path for the low leaf.
	Path HashPath
}
