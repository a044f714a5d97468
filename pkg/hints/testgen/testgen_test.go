package testgen

import (
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/mmrhints/internal/keccak"
	"github.com/yourorg/mmrhints/pkg/felt"
	"github.com/yourorg/mmrhints/pkg/hints"
	"github.com/yourorg/mmrhints/pkg/mmr"
	"github.com/yourorg/mmrhints/pkg/vm"
)

func seeded() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func sizeFor(t *testing.T, leaves uint64) uint64 {
	t.Helper()
	n, err := mmr.SizeForLeaves(leaves)
	require.NoError(t, err)
	return n
}

func execute(t *testing.T, code string, f *vm.Frame) {
	t.Helper()
	require.NoError(t, Catalog(seeded()).Execute(code, f, hints.NewScope()))
}

func vector(t *testing.T, f *vm.Frame, name string, n uint64) []felt.Felt {
	t.Helper()
	ptr, err := hints.ReadPtr(f, name)
	require.NoError(t, err)
	cells, err := f.Memory().Range(ptr, n)
	require.NoError(t, err)
	out := make([]felt.Felt, n)
	for i, c := range cells {
		v, ok := c.Felt()
		require.True(t, ok)
		out[i] = v
	}
	return out
}

func wordVector(t *testing.T, f *vm.Frame, name string, n uint64) []*uint256.Int {
	t.Helper()
	flat := vector(t, f, name, 2*n)
	out := make([]*uint256.Int, n)
	for i := range out {
		v, err := hints.JoinUint256(flat[2*i], flat[2*i+1])
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func readUint(t *testing.T, f *vm.Frame, name string) uint64 {
	t.Helper()
	n, err := hints.ReadUint64(f, name)
	require.NoError(t, err)
	return n
}

func arrays(t *testing.T, f *vm.Frame, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := f.Array(name)
		require.NoError(t, err)
	}
}

func locals(t *testing.T, f *vm.Frame, size uint64, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := f.Local(name, size)
		require.NoError(t, err)
	}
}

func TestSequentialSizes(t *testing.T) {
	for _, code := range []string{codeGenerateSequential, codeGenerateSequentialVerbose} {
		f := vm.NewFrame(vm.NewMemory())
		require.NoError(t, f.Set("num_elems", vm.Uint(10)))
		arrays(t, f, "expected_output", "input_array")
		execute(t, code, f)

		size := sizeFor(t, 10)
		expected := vector(t, f, "expected_output", size+1)
		inputs := vector(t, f, "input_array", size+1)
		for i := uint64(0); i <= size; i++ {
			require.Equal(t, i, inputs[i].Uint64())
			want := i != 0 && mmr.IsValidSize(i)
			require.Equal(t, want, expected[i].IsOne(), "size %d", i)
		}
	}
}

func TestRandomSizes(t *testing.T) {
	f := vm.NewFrame(vm.NewMemory())
	require.NoError(t, f.Set("num_sizes", vm.Uint(200)))
	arrays(t, f, "expected_output", "input_array")
	execute(t, codeGenerateRandom, f)

	expected := vector(t, f, "expected_output", 200)
	inputs := vector(t, f, "input_array", 200)
	seen := make(map[uint64]bool)
	for i := range inputs {
		n := inputs[i].Uint64()
		require.Less(t, n, uint64(sampleRange))
		require.False(t, seen[n], "duplicate size %d", n)
		seen[n] = true
		require.Equal(t, validSize(n), expected[i].IsOne())
	}
}

func TestRandomSizesRejectsOversizedSample(t *testing.T) {
	f := vm.NewFrame(vm.NewMemory())
	require.NoError(t, f.Set("num_sizes", vm.Uint(sampleRange+1)))
	arrays(t, f, "expected_output", "input_array")
	err := Catalog(seeded()).Execute(codeGenerateRandom, f, hints.NewScope())
	require.ErrorIs(t, err, hints.ErrOutOfRange)
}

func TestAssignBitLength(t *testing.T) {
	for code, want := range map[string]felt.Felt{
		codeBitLength140:         felt.FromUint64(140),
		codeBitLength2500:        felt.FromUint64(2500),
		codeBitLengthNegativeOne: felt.FromInt64(-1),
	} {
		f := vm.NewFrame(vm.NewMemory())
		locals(t, f, 1, "bit_length")
		execute(t, code, f)
		got, err := hints.ReadFelt(f, "bit_length")
		require.NoError(t, err)
		require.True(t, want.Equal(&got))
	}
}

func TestNegativeBitLengthIsStarkPrimeMinusOne(t *testing.T) {
	f := vm.NewFrame(vm.NewMemory())
	locals(t, f, 1, "bit_length")
	execute(t, codeBitLengthNegativeOne, f)
	got, err := hints.ReadFelt(f, "bit_length")
	require.NoError(t, err)
	require.Equal(t, "3618502788666131213697322783095070105623107215331596699973092056135872020480", felt.Big(got).String())
}

func TestPrintHints(t *testing.T) {
	f := vm.NewFrame(vm.NewMemory())
	require.NoError(t, f.Set("N", vm.Uint(3)))
	require.NoError(t, f.Set("n", vm.Uint(4)))
	execute(t, codePrintBreakline, f)
	execute(t, codePrintPass, f)
	execute(t, codePrintNs, f)
}

func TestEncodePacked(t *testing.T) {
	f := vm.NewFrame(vm.NewMemory())
	arrays(t, f, "x_array", "y_array", "keccak_result_array")
	locals(t, f, 1, "len")
	execute(t, codeEncodePacked, f)

	n := readUint(t, f, "len")
	require.Equal(t, uint64(2*randomPairs), n)

	xs := wordVector(t, f, "x_array", n)
	ys := wordVector(t, f, "y_array", n)
	results := wordVector(t, f, "keccak_result_array", n)
	for i := range results {
		require.True(t, keccak.Pair(xs[i], ys[i]).Eq(results[i]), "pair %d", i)
		require.NotZero(t, xs[i].BitLen())
	}
	for b := 1; b <= maxBits; b++ {
		i := randomPairs + b - 1
		require.Equal(t, b, xs[i].BitLen())
		require.Equal(t, b, ys[i].BitLen())
	}
}

// bag recomputes a root from peak values the way the accumulator does.
func bag[T any](h mmr.Hasher[T], size uint64, peaks []T) T {
	acc := peaks[len(peaks)-1]
	for i := len(peaks) - 2; i >= 0; i-- {
		acc = h.Hash(peaks[i], acc)
	}
	return h.Hash(h.Size(size), acc)
}

func leavesFor(t *testing.T, size uint64) uint64 {
	t.Helper()
	for k := uint64(0); k <= size; k++ {
		if sizeFor(t, k) == size {
			return k
		}
	}
	t.Fatalf("no leaf count yields size %d", size)
	return 0
}

func constructFrame(t *testing.T) *vm.Frame {
	t.Helper()
	f := vm.NewFrame(vm.NewMemory())
	arrays(t, f, "poseidon_hash_array", "keccak_hash_array", "previous_peaks_values_poseidon", "previous_peaks_values_keccak")
	locals(t, f, 1, "n_values_to_append", "mmr_offset", "mmr_last_root_poseidon", "expected_new_root_poseidon", "expected_new_len")
	locals(t, f, 2, "mmr_last_root_keccak", "expected_new_root_keccak")
	return f
}

func TestConstructMMR(t *testing.T) {
	f := constructFrame(t)
	execute(t, codeConstructMMR, f)

	n := readUint(t, f, "n_values_to_append")
	require.GreaterOrEqual(t, n, uint64(1))
	require.LessOrEqual(t, n, uint64(maxValues))

	offset := readUint(t, f, "mmr_offset")
	require.True(t, mmr.IsValidSize(offset))
	prevLeaves := leavesFor(t, offset)
	peaks := uint64(bits.OnesCount64(prevLeaves))

	require.Equal(t, sizeFor(t, prevLeaves+n), readUint(t, f, "expected_new_len"))

	pPeaks := vector(t, f, "previous_peaks_values_poseidon", peaks)
	pRoot, err := hints.ReadFelt(f, "mmr_last_root_poseidon")
	require.NoError(t, err)
	want := bag[felt.Felt](mmr.Poseidon{}, offset, pPeaks)
	require.True(t, want.Equal(&pRoot))

	kPeaks := wordVector(t, f, "previous_peaks_values_keccak", peaks)
	vals := make([]uint256.Int, len(kPeaks))
	for i, p := range kPeaks {
		vals[i] = *p
	}
	kRoot, err := hints.ReadUint256(f, "mmr_last_root_keccak")
	require.NoError(t, err)
	wantK := bag[uint256.Int](mmr.Keccak{}, offset, vals)
	require.True(t, wantK.Eq(kRoot))

	// the appended arrays are fully written
	vector(t, f, "poseidon_hash_array", n)
	wordVector(t, f, "keccak_hash_array", n)

	_, err = hints.ReadUint256(f, "expected_new_root_keccak")
	require.NoError(t, err)
}

func TestConstructMMRSeeded(t *testing.T) {
	a, b := constructFrame(t), constructFrame(t)
	execute(t, codeConstructMMR, a)
	execute(t, codeConstructMMR, b)

	for _, name := range []string{"n_values_to_append", "mmr_offset", "expected_new_len", "expected_new_root_poseidon"} {
		va, err := hints.ReadFelt(a, name)
		require.NoError(t, err)
		vb, err := hints.ReadFelt(b, name)
		require.NoError(t, err)
		require.True(t, va.Equal(&vb), name)
	}
}
