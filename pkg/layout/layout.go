// Package layout implements the flat-array node addressing used by the
// indexed merkle tree.
//
// All node hashes for a tree of depth d live in one flat array of length
// 2*2^d - 2. Leaves occupy indices [0, 2^d), each subsequent level halves
// the slot count, and the final two slots are the two children of the root
// (the root itself is stored outside the array):
//
//	+------------------------------------------------------------------+
//	|  0 -> h_{0,0} h_{0,1} h_{0,2} h_{0,3} h_{0,4} ... h_{0,7}        |
//	|  8 -> h_{1,0} h_{1,1} h_{1,2} h_{1,3}                            |
//	| 12 -> h_{2,0} h_{2,1}                                            |
//	+------------------------------------------------------------------+
//
// The package is pure index arithmetic with no hashing, so the off-by-one
// prone parts of the tree can be tested in isolation.
package layout

import (
	"fmt"
	"math/bits"
)

const (
	// MinDepth is the smallest supported tree depth (two leaves).
	MinDepth = 1
	// MaxDepth is the largest supported tree depth.
	MaxDepth = 32
)

// LevelTable holds the per-level starting offsets into the flat node array
// for a fixed tree depth. It is computed once at construction and shared
// read-only by every lookup afterwards.
type LevelTable struct {
	depth   int
	leaves  uint64
	offsets []uint64
}

// NewLevelTable derives the level table for the given depth. Depth must be
// in [MinDepth, MaxDepth].
func NewLevelTable(depth int) (*LevelTable, error) {
	if depth < MinDepth || depth > MaxDepth {
		return nil, fmt.Errorf("tree depth must be in [%d, %d], got %d", MinDepth, MaxDepth, depth)
	}

	leaves := uint64(1) << depth

	// offsets[0] = 0 (leaf level); offsets[l+1] = offsets[l] + leaves>>l
	offsets := make([]uint64, depth)
	for l := 1; l < depth; l++ {
		offsets[l] = offsets[l-1] + leaves>>uint(l-1)
	}

	return &LevelTable{
		depth:   depth,
		leaves:  leaves,
		offsets: offsets,
	}, nil
}

// Depth returns the tree depth.
func (t *LevelTable) Depth() int {
	return t.depth
}

// Leaves returns the leaf capacity, 2^depth.
func (t *LevelTable) Leaves() uint64 {
	return t.leaves
}

// NodeCount returns the flat node array length, 2*leaves - 2. The root is
// not part of the array.
func (t *LevelTable) NodeCount() uint64 {
	return 2*t.leaves - 2
}

// Offset returns the flat index at which the given level starts. Level 0 is
// the leaf level.
func (t *LevelTable) Offset(level int) uint64 {
	return t.offsets[level]
}

// LevelWidth returns the number of nodes at the given level.
func (t *LevelTable) LevelWidth(level int) uint64 {
	return t.leaves >> uint(level)
}

// LevelOf returns the level the flat index belongs to.
func (t *LevelTable) LevelOf(flat uint64) int {
	level := 0
	for l := 1; l < t.depth; l++ {
		if flat >= t.offsets[l] {
			level = l
		}
	}
	return level
}

// ParentOf maps a flat node index to the flat index of its parent.
//
// For this layout the identity parent(i) = leaves + i/2 holds at every
// level, not just for leaves: offsets[l+1] = offsets[l]/2 + leaves for all
// l, so the level bookkeeping cancels out of the division.
func (t *LevelTable) ParentOf(flat uint64) uint64 {
	return t.leaves + flat/2
}

// ChildrenOf maps an internal node's flat index to the flat indices of its
// left and right children.
func (t *LevelTable) ChildrenOf(flat uint64) (left, right uint64) {
	level := t.LevelOf(flat)
	inLevel := flat - t.offsets[level]
	left = t.offsets[level-1] + inLevel*2
	return left, left + 1
}

// SiblingPair returns the flat indices of the sibling pair containing the
// given node, low index first. Every level starts at an even offset, so
// pair membership is plain index parity.
func SiblingPair(flat uint64) (low, high uint64) {
	return flat &^ 1, flat | 1
}

// IsLeaf reports whether the flat index addresses a leaf slot.
func (t *LevelTable) IsLeaf(flat uint64) bool {
	return flat < t.leaves
}

// DepthForCapacity returns the smallest depth whose tree holds at least n
// leaves, clamped to MinDepth.
func DepthForCapacity(n uint64) int {
	if n <= 2 {
		return MinDepth
	}
	return bits.Len64(n - 1)
}
