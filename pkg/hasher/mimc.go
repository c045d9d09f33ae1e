package hasher

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// MiMCCompressor hashes with the MiMC permutation over the BN254 scalar
// field. This is the default scheme: MiMC is cheap to verify inside an
// arithmetic circuit, which is where indexed merkle tree paths are
// ultimately checked.
type MiMCCompressor struct{}

var _ Compressor = (*MiMCCompressor)(nil)

// NewMiMC creates a MiMC-based compressor.
func NewMiMC() *MiMCCompressor {
	return &MiMCCompressor{}
}

// Compress computes MiMC(left, right).
func (m *MiMCCompressor) Compress(left, right *fr.Element) fr.Element {
	h := mimc.NewMiMC()
	lb := left.Bytes()
	rb := right.Bytes()
	_, _ = h.Write(lb[:])
	_, _ = h.Write(rb[:])

	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}

// HashLeaf computes MiMC(value, nextIndex, nextValue). The index is lifted
// into the field before hashing so the preimage is three field elements.
func (m *MiMCCompressor) HashLeaf(value *fr.Element, nextIndex uint64, nextValue *fr.Element) fr.Element {
	var idx fr.Element
	idx.SetUint64(nextIndex)

	h := mimc.NewMiMC()
	vb := value.Bytes()
	ib := idx.Bytes()
	nb := nextValue.Bytes()
	_, _ = h.Write(vb[:])
	_, _ = h.Write(ib[:])
	_, _ = h.Write(nb[:])

	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}

// Scheme returns the scheme name.
func (m *MiMCCompressor) Scheme() string {
	return "mimc"
}
