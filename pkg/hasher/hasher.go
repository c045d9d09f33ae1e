package hasher

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Compressor is the two-to-one compression primitive the indexed merkle tree
// is built on. Implementations must be deterministic and collision-resistant.
//
// The tree always calls Compress with the lower-indexed child as left and the
// higher-indexed child as right; implementations must not reorder the inputs.
type Compressor interface {
	// Compress hashes a pair of field elements into one.
	Compress(left, right *fr.Element) fr.Element

	// HashLeaf hashes a leaf preimage {value, nextIndex, nextValue}.
	HashLeaf(value *fr.Element, nextIndex uint64, nextValue *fr.Element) fr.Element

	// Scheme returns the configured hash scheme name for logging.
	Scheme() string
}

// ZeroLeafHash returns the hash of the empty leaf preimage {0, 0, 0} under
// the given compressor. Every unoccupied leaf slot in the tree commits to
// this value.
func ZeroLeafHash(c Compressor) fr.Element {
	var zero fr.Element
	return c.HashLeaf(&zero, 0, &zero)
}
