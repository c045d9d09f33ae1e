// Package imt implements an indexed merkle tree: a fixed-depth, array-backed
// binary hash tree whose leaves encode a sorted singly-linked list over the
// inserted values. Beyond classic merkle inclusion, the linked list lets a
// verifier prove a value is *absent* by exhibiting two adjacent leaves that
// bracket it, which is what makes this the standard commitment structure for
// rollup nullifier sets and sorted registries.
package imt

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"go.uber.org/zap"

	"github.com/Layr-Labs/imt-go/pkg/hasher"
	"github.com/Layr-Labs/imt-go/pkg/layout"
)

// Config holds tree construction parameters.
type Config struct {
	// Depth is the tree height; capacity is 2^Depth leaves. Must be in
	// [1, 32].
	Depth int

	// Compressor is the two-to-one hash the tree commits with. Defaults to
	// MiMC over BN254 if nil.
	Compressor hasher.Compressor

	// Logger is optional; defaults to a nop logger if nil.
	Logger *zap.Logger
}

// Tree is an in-memory indexed merkle tree.
//
// A Tree is a single-owner structure with no internal locking: callers that
// share one instance across goroutines must serialize Insert themselves, and
// must treat HashPath and the proof builders as writes too since they settle
// pending hash state.
type Tree struct {
	depth       int
	totalLeaves uint64

	// leaves holds the preimages of occupied slots; index 0 is always the
	// {0,0,0} sentinel. Grows by one per insertion up to totalLeaves.
	leaves []Leaf

	// hashes is the flat node array of length 2*totalLeaves - 2; the root
	// lives outside it.
	hashes []fr.Element

	// status tracks, per node slot, whether the stored hash is stale
	// relative to its children.
	status []nodeStatus

	table        *layout.LevelTable
	compressor   hasher.Compressor
	zeroLeafHash fr.Element
	root         fr.Element
	logger       *zap.Logger
}

// New creates an indexed merkle tree of the configured depth with every leaf
// slot committed to the empty preimage {0, 0, 0}.
func New(cfg *Config) (*Tree, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Depth < layout.MinDepth || cfg.Depth > layout.MaxDepth {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, cfg.Depth)
	}

	table, err := layout.NewLevelTable(cfg.Depth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDepth, err)
	}

	compressor := cfg.Compressor
	if compressor == nil {
		compressor = hasher.NewMiMC()
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	t := &Tree{
		depth:       cfg.Depth,
		totalLeaves: table.Leaves(),
		leaves:      []Leaf{{}},
		hashes:      make([]fr.Element, table.NodeCount()),
		status:      make([]nodeStatus, table.NodeCount()),
		table:       table,
		compressor:  compressor,
		logger:      log,
	}
	t.zeroLeafHash = hasher.ZeroLeafHash(compressor)

	for i := uint64(0); i < t.totalLeaves; i++ {
		t.hashes[i] = t.zeroLeafHash
		t.status[i] = statusDirty
	}
	t.settle()

	log.Debug("indexed merkle tree created",
		zap.Int("depth", cfg.Depth),
		zap.Uint64("capacity", t.totalLeaves),
		zap.String("scheme", compressor.Scheme()),
	)

	return t, nil
}

// Root returns the current root hash.
func (t *Tree) Root() fr.Element {
	return t.root
}

// Depth returns the tree height.
func (t *Tree) Depth() int {
	return t.depth
}

// Capacity returns the total leaf capacity, 2^depth.
func (t *Tree) Capacity() uint64 {
	return t.totalLeaves
}

// LeafCount returns the number of occupied leaf slots, including the index-0
// sentinel.
func (t *Tree) LeafCount() uint64 {
	return uint64(len(t.leaves))
}

// DumpHashes returns a copy of the full node hash array. Leaf hashes occupy
// indices [0, Capacity()); the last two entries are the root's children.
func (t *Tree) DumpHashes() []fr.Element {
	out := make([]fr.Element, len(t.hashes))
	copy(out, t.hashes)
	return out
}

// DumpLeaves returns a copy of the full leaf preimage table, one entry per
// leaf slot. Slots that were never written hold the zero preimage.
func (t *Tree) DumpLeaves() []Leaf {
	out := make([]Leaf, t.totalLeaves)
	copy(out, t.leaves)
	return out
}
