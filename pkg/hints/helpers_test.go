package hints

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/mmrhints/pkg/felt"
	"github.com/yourorg/mmrhints/pkg/vm"
)

// newFrame binds each name to a fresh local holding its value.
func newFrame(t *testing.T, vals map[string]uint64) *vm.Frame {
	t.Helper()
	f := vm.NewFrame(vm.NewMemory())
	for name, v := range vals {
		require.NoError(t, f.Set(name, vm.Uint(v)))
	}
	return f
}

// declare reserves empty one-cell locals for hint outputs.
func declare(t *testing.T, f *vm.Frame, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := f.Local(name, 1)
		require.NoError(t, err)
	}
}

func setUint256(t *testing.T, f *vm.Frame, name string, v *uint256.Int) {
	t.Helper()
	addr, err := f.Local(name, 2)
	require.NoError(t, err)
	low, high := SplitUint256(v)
	_, err = f.Memory().LoadData(addr, []vm.MaybeRelocatable{vm.Int(low), vm.Int(high)})
	require.NoError(t, err)
}

func lookupUint(t *testing.T, f *vm.Frame, name string) uint64 {
	t.Helper()
	v, err := f.Lookup(name)
	require.NoError(t, err)
	x, ok := v.Felt()
	require.True(t, ok, "%s holds a pointer", name)
	n, err := felt.Uint64(x)
	require.NoError(t, err)
	return n
}

func apUint(t *testing.T, f *vm.Frame, offset uint64) uint64 {
	t.Helper()
	v, err := f.Get(f.AP().Add(offset))
	require.NoError(t, err)
	x, ok := v.Felt()
	require.True(t, ok)
	return x.Uint64()
}

func run(code string, f *vm.Frame, s *Scope) error {
	if s == nil {
		s = NewScope()
	}
	return Library().Execute(code, f, s)
}
