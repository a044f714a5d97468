package mmr

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidSizeAgainstConstruction(t *testing.T) {
	const leaves = 1000

	valid := map[uint64]bool{0: true}
	acc := NewKeccak()
	for i := uint64(0); i < leaves; i++ {
		valid[acc.Append(word(i))] = true
	}

	for n := uint64(0); n <= acc.Size(); n++ {
		require.Equal(t, valid[n], IsValidSize(n), "size %d", n)
	}
}

func TestIsValidSizeSmall(t *testing.T) {
	cases := []struct {
		n    uint64
		want bool
	}{
		{0, true}, {1, true}, {2, false}, {3, true}, {4, true}, {5, false},
		{6, false}, {7, true}, {8, true}, {10, true}, {11, true}, {12, false},
		{14, false}, {15, true},
	}
	for _, c := range cases {
		require.Equal(t, c.want, IsValidSize(c.n), "size %d", c.n)
	}
}

func TestPeakPositions(t *testing.T) {
	cases := []struct {
		size  uint64
		peaks []uint64
	}{
		{0, nil},
		{1, []uint64{1}},
		{3, []uint64{3}},
		{4, []uint64{3, 4}},
		{7, []uint64{7}},
		{8, []uint64{7, 8}},
		{10, []uint64{7, 10}},
		{11, []uint64{7, 10, 11}},
		{25, []uint64{15, 22, 25}},
	}
	for _, c := range cases {
		got, err := PeakPositions(c.size)
		require.NoError(t, err)
		require.Equal(t, c.peaks, got, "size %d", c.size)
	}
}

func TestPeakPositionsInvalid(t *testing.T) {
	for _, n := range []uint64{2, 5, 6, 9, 12} {
		_, err := PeakPositions(n)
		var sizeErr *InvalidSizeError
		require.ErrorAs(t, err, &sizeErr, "size %d", n)
		require.Equal(t, n, sizeErr.Size)
		require.NotZero(t, sizeErr.Remainder)
	}
}

func sizeFor(t *testing.T, leaves uint64) uint64 {
	t.Helper()
	n, err := SizeForLeaves(leaves)
	require.NoError(t, err)
	return n
}

func TestSizeForLeaves(t *testing.T) {
	for k := uint64(0); k < 512; k++ {
		n := sizeFor(t, k)
		require.True(t, IsValidSize(n))
		peaks, err := PeakPositions(n)
		require.NoError(t, err)
		require.Len(t, peaks, bits.OnesCount64(k))
	}
}

func TestSizeForLeavesBoundary(t *testing.T) {
	require.Equal(t, uint64(1<<64-1), sizeFor(t, MaxLeaves))
	require.True(t, IsValidSize(sizeFor(t, MaxLeaves)))
	require.Equal(t, uint64(1<<64-65), sizeFor(t, MaxLeaves-1))

	for _, k := range []uint64{MaxLeaves + 1, 1<<64 - 1} {
		_, err := SizeForLeaves(k)
		require.ErrorIs(t, err, ErrTooManyLeaves, "leaves %d", k)
	}
}
