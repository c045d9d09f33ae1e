package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewLevelTableOffsets checks the per-level offsets against hand-computed
// tables for small depths.
func TestNewLevelTableOffsets(t *testing.T) {
	testCases := []struct {
		name    string
		depth   int
		offsets []uint64
	}{
		{"Depth 1", 1, []uint64{0}},
		{"Depth 2", 2, []uint64{0, 4}},
		{"Depth 3", 3, []uint64{0, 8, 12}},
		{"Depth 4", 4, []uint64{0, 16, 24, 28}},
		{"Depth 5", 5, []uint64{0, 32, 48, 56, 60}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := NewLevelTable(tc.depth)
			require.NoError(t, err)
			require.Equal(t, tc.depth, table.Depth())
			require.Equal(t, uint64(1)<<tc.depth, table.Leaves())
			require.Equal(t, 2*table.Leaves()-2, table.NodeCount())

			for l, want := range tc.offsets {
				require.Equal(t, want, table.Offset(l), "offset of level %d", l)
			}
		})
	}
}

// TestNewLevelTableInvalidDepth rejects depths outside [1, 32].
func TestNewLevelTableInvalidDepth(t *testing.T) {
	for _, depth := range []int{-1, 0, 33, 64} {
		table, err := NewLevelTable(depth)
		require.Error(t, err, "depth %d", depth)
		require.Nil(t, table)
	}
}

// TestLevelOf walks the whole node array for a few depths and checks each
// flat index lands in the right level.
func TestLevelOf(t *testing.T) {
	for _, depth := range []int{1, 2, 3, 5} {
		table, err := NewLevelTable(depth)
		require.NoError(t, err)

		for flat := uint64(0); flat < table.NodeCount(); flat++ {
			level := table.LevelOf(flat)
			require.GreaterOrEqual(t, flat, table.Offset(level))
			if level+1 < depth {
				require.Less(t, flat, table.Offset(level+1))
			}
			require.Equal(t, level == 0, table.IsLeaf(flat))
		}
	}
}

// TestParentOfMatchesOffsets cross-checks the parent(i) = leaves + i/2
// shortcut against the definitional form offsets[l+1] + inLevel/2 for every
// node below the root children.
func TestParentOfMatchesOffsets(t *testing.T) {
	for _, depth := range []int{2, 3, 4, 6} {
		table, err := NewLevelTable(depth)
		require.NoError(t, err)

		for flat := uint64(0); flat < table.NodeCount(); flat++ {
			level := table.LevelOf(flat)
			if level == depth-1 {
				// Root children; the parent is the root, outside the array.
				require.Equal(t, table.NodeCount(), table.ParentOf(flat))
				continue
			}

			inLevel := flat - table.Offset(level)
			want := table.Offset(level+1) + inLevel/2
			require.Equal(t, want, table.ParentOf(flat), "depth %d flat %d", depth, flat)
		}
	}
}

// TestChildrenOfRoundTrip checks ParentOf(ChildrenOf(i)) == i for every
// internal node.
func TestChildrenOfRoundTrip(t *testing.T) {
	for _, depth := range []int{2, 3, 4, 6} {
		table, err := NewLevelTable(depth)
		require.NoError(t, err)

		for flat := table.Leaves(); flat < table.NodeCount(); flat++ {
			left, right := table.ChildrenOf(flat)
			require.Equal(t, left+1, right)
			require.Equal(t, flat, table.ParentOf(left))
			require.Equal(t, flat, table.ParentOf(right))
		}
	}
}

// TestSiblingPair checks parity-based pair selection.
func TestSiblingPair(t *testing.T) {
	testCases := []struct {
		flat, low, high uint64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{6, 6, 7},
		{7, 6, 7},
		{12, 12, 13},
		{13, 12, 13},
	}
	for _, tc := range testCases {
		low, high := SiblingPair(tc.flat)
		require.Equal(t, tc.low, low)
		require.Equal(t, tc.high, high)
	}
}

// TestLevelWidth checks the halving progression.
func TestLevelWidth(t *testing.T) {
	table, err := NewLevelTable(4)
	require.NoError(t, err)
	require.Equal(t, uint64(16), table.LevelWidth(0))
	require.Equal(t, uint64(8), table.LevelWidth(1))
	require.Equal(t, uint64(4), table.LevelWidth(2))
	require.Equal(t, uint64(2), table.LevelWidth(3))
}

// TestDepthForCapacity checks the smallest-depth helper.
func TestDepthForCapacity(t *testing.T) {
	testCases := []struct {
		n     uint64
		depth int
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{1 << 20, 20},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.depth, DepthForCapacity(tc.n), "capacity %d", tc.n)
	}
}
