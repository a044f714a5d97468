package mmr

import (
	"math/bits"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/mmrhints/internal/keccak"
	"github.com/yourorg/mmrhints/pkg/felt"
)

func word(v uint64) uint256.Int { return *uint256.NewInt(v) }

func TestThreeLeafRoundTrip(t *testing.T) {
	acc := NewKeccak()
	a, b, c := word(0xa), word(0xb), word(0xc)

	require.Equal(t, uint64(1), acc.Append(a))
	require.Equal(t, uint64(3), acc.Append(b))
	require.Equal(t, uint64(4), acc.Append(c))

	require.Equal(t, uint64(4), acc.Size())
	require.Equal(t, uint64(3), acc.LeafCount())
	require.Equal(t, []uint64{3, 4}, acc.Peaks())

	ab := keccak.Pair(&a, &b)
	nodes, err := acc.Nodes([]uint64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, []uint256.Int{a, b, *ab, c}, nodes)

	// pop the shortest peak, fold the rest from the back, bind the size
	bagged := keccak.Pair(ab, &c)
	want := keccak.Pair(uint256.NewInt(4), bagged)

	root, err := acc.Root()
	require.NoError(t, err)
	require.True(t, want.Eq(&root), "root %s, want %s", root.Hex(), want.Hex())
}

func TestRootOnEmptyFails(t *testing.T) {
	_, err := NewKeccak().Root()
	require.ErrorIs(t, err, ErrEmpty)

	_, err = NewPoseidon().Root()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestNodesOutOfRange(t *testing.T) {
	acc := NewKeccak()
	acc.Append(word(1))
	acc.Append(word(2))

	_, err := acc.Nodes([]uint64{0})
	require.ErrorIs(t, err, ErrPositionOutOfRange)

	_, err = acc.Nodes([]uint64{1, 4})
	require.ErrorIs(t, err, ErrPositionOutOfRange)

	vals, err := acc.Nodes([]uint64{3})
	require.NoError(t, err)
	require.Len(t, vals, 1)
}

func TestSizeGrowth(t *testing.T) {
	acc := NewKeccak()
	var want uint64
	for i := uint64(0); i < 300; i++ {
		merges := uint64(bits.TrailingZeros64(^i))
		want += 1 + merges

		require.Equal(t, want, acc.Append(word(i)), "leaf %d", i)
		require.Equal(t, sizeFor(t, i+1), acc.Size())
	}
}

func TestPeakShape(t *testing.T) {
	acc := NewPoseidon()
	for i := uint64(0); i < 200; i++ {
		acc.Append(felt.FromUint64(i * 7))

		peaks := acc.Peaks()
		require.Len(t, peaks, bits.OnesCount64(acc.LeafCount()))
		require.Equal(t, acc.Size(), peaks[len(peaks)-1])

		var prev, prevSubtree uint64
		for j, p := range peaks {
			require.LessOrEqual(t, p, acc.Size())
			subtree := p - prev
			if j > 0 {
				require.Greater(t, p, prev)
				require.Less(t, subtree, prevSubtree)
			}
			prev, prevSubtree = p, subtree
		}
	}
}

func TestRootChangesAndIsDeterministic(t *testing.T) {
	build := func(n uint64) []uint256.Int {
		acc := NewKeccak()
		roots := make([]uint256.Int, 0, n)
		for i := uint64(0); i < n; i++ {
			acc.Append(word(i + 1))
			root, err := acc.Root()
			require.NoError(t, err)
			roots = append(roots, root)
		}
		return roots
	}

	first, second := build(64), build(64)
	require.Equal(t, first, second)

	seen := make(map[uint256.Int]int)
	for i, r := range first {
		j, dup := seen[r]
		require.False(t, dup, "root after %d appends equals root after %d", i+1, j+1)
		seen[r] = i
	}
}

func TestSameLeavesDifferentSize(t *testing.T) {
	// a single repeated leaf still yields a new root per append
	acc := NewPoseidon()
	one := felt.FromUint64(1)

	var last felt.Felt
	for i := 0; i < 16; i++ {
		acc.Append(one)
		root, err := acc.Root()
		require.NoError(t, err)
		require.False(t, root.Equal(&last), "append %d", i)
		last = root
	}
}

func TestPoseidonHasher(t *testing.T) {
	var h Poseidon
	a, b := felt.FromUint64(1), felt.FromUint64(2)

	ab, ba := h.Hash(a, b), h.Hash(b, a)
	require.False(t, ab.Equal(&ba))

	again := h.Hash(a, b)
	require.True(t, ab.Equal(&again))

	// outputs stay canonical in the Stark field
	wide := h.Hash(felt.FromInt64(-1), felt.FromInt64(-2))
	require.Negative(t, felt.Big(wide).Cmp(felt.Modulus()))

	size := h.Size(9)
	require.Equal(t, uint64(9), size.Uint64())
}

func TestPoseidon2Hasher(t *testing.T) {
	h := NewPoseidon2Hasher()
	var a, b fr.Element
	a.SetUint64(1)
	b.SetUint64(2)

	ab, ba := h.Hash(a, b), h.Hash(b, a)
	require.False(t, ab.Equal(&ba))

	again := h.Hash(a, b)
	require.True(t, ab.Equal(&again))

	acc := NewPoseidon2()
	acc.Append(a)
	acc.Append(b)
	root, err := acc.Root()
	require.NoError(t, err)
	want := h.Hash(h.Size(3), h.Hash(a, b))
	require.True(t, want.Equal(&root))
}

func TestKeccakHasherMatchesPair(t *testing.T) {
	l, r := word(5), word(6)
	got := Keccak{}.Hash(l, r)
	require.True(t, keccak.Pair(&l, &r).Eq(&got))
}
