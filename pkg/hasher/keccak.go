package hasher

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// KeccakCompressor hashes with keccak256 for Solidity compatibility, the
// same scheme the on-chain verifier contracts use. Digests are reduced into
// the BN254 scalar field, matching how contracts coerce bytes32 into field
// elements before passing them to a verifier.
type KeccakCompressor struct{}

var _ Compressor = (*KeccakCompressor)(nil)

// NewKeccak creates a keccak256-based compressor.
func NewKeccak() *KeccakCompressor {
	return &KeccakCompressor{}
}

// Compress computes keccak256(left || right) reduced into the field.
// Equivalent to: keccak256(abi.encodePacked(left, right))
func (k *KeccakCompressor) Compress(left, right *fr.Element) fr.Element {
	lb := left.Bytes()
	rb := right.Bytes()
	digest := ethcrypto.Keccak256(lb[:], rb[:])

	var out fr.Element
	out.SetBytes(digest)
	return out
}

// HashLeaf computes keccak256(value || nextIndex || nextValue) reduced into
// the field. The index is encoded as 32 bytes big-endian so the packing
// matches abi.encodePacked(uint256, uint256, uint256) on the contract side.
func (k *KeccakCompressor) HashLeaf(value *fr.Element, nextIndex uint64, nextValue *fr.Element) fr.Element {
	var idxBytes [32]byte
	binary.BigEndian.PutUint64(idxBytes[24:], nextIndex)

	vb := value.Bytes()
	nb := nextValue.Bytes()
	digest := ethcrypto.Keccak256(vb[:], idxBytes[:], nb[:])

	var out fr.Element
	out.SetBytes(digest)
	return out
}

// Scheme returns the scheme name.
func (k *KeccakCompressor) Scheme() string {
	return "keccak256"
}
