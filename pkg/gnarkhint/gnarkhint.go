// Package gnarkhint exposes the deterministic hint computations as gnark
// solver hints, so circuits checking the same relations can reuse them.
package gnarkhint

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"

	"github.com/yourorg/mmrhints/pkg/hints"
	"github.com/yourorg/mmrhints/pkg/mmr"
)

// All lists every hint of the package.
func All() []solver.Hint {
	return []solver.Hint{BitLength, DivMod, IsValidMMRSize, MMRSize, RLPPrefixKind}
}

// Register makes the hints known to the gnark solver.
func Register() {
	solver.RegisterHint(All()...)
}

func arity(name string, inputs, outputs []*big.Int, nIn, nOut int) error {
	if len(inputs) != nIn || len(outputs) != nOut {
		return fmt.Errorf("%s: want %d inputs and %d outputs, got %d and %d", name, nIn, nOut, len(inputs), len(outputs))
	}
	return nil
}

func uint64Input(name string, v *big.Int) (uint64, error) {
	if !v.IsUint64() {
		return 0, &hints.InvalidValueError{Name: name, Value: v.String(), Reason: "does not fit in 64 bits"}
	}
	return v.Uint64(), nil
}

func setBool(out *big.Int, b bool) {
	if b {
		out.SetUint64(1)
		return
	}
	out.SetUint64(0)
}

// BitLength writes the bit length of each input to the matching output.
func BitLength(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != len(outputs) {
		return fmt.Errorf("bit length: %d inputs, %d outputs", len(inputs), len(outputs))
	}
	for i, in := range inputs {
		outputs[i].SetInt64(int64(in.BitLen()))
	}
	return nil
}

// DivMod takes (value, div) and returns (q, r).
func DivMod(_ *big.Int, inputs, outputs []*big.Int) error {
	if err := arity("divmod", inputs, outputs, 2, 2); err != nil {
		return err
	}
	if inputs[1].Sign() == 0 {
		return hints.ErrDivisionByZero
	}
	outputs[0].QuoRem(inputs[0], inputs[1], outputs[1])
	return nil
}

// IsValidMMRSize returns 1 if the input is a reachable MMR size.
func IsValidMMRSize(_ *big.Int, inputs, outputs []*big.Int) error {
	if err := arity("valid mmr size", inputs, outputs, 1, 1); err != nil {
		return err
	}
	n, err := uint64Input("size", inputs[0])
	if err != nil {
		return err
	}
	setBool(outputs[0], mmr.IsValidSize(n))
	return nil
}

// MMRSize returns the node count of an MMR holding the input leaf count.
func MMRSize(_ *big.Int, inputs, outputs []*big.Int) error {
	if err := arity("mmr size", inputs, outputs, 1, 1); err != nil {
		return err
	}
	k, err := uint64Input("leaves", inputs[0])
	if err != nil {
		return err
	}
	size, err := mmr.SizeForLeaves(k)
	if err != nil {
		return &hints.InvalidValueError{Name: "leaves", Value: inputs[0].String(), Reason: err.Error()}
	}
	outputs[0].SetUint64(size)
	return nil
}

// RLPPrefixKind classifies an RLP prefix byte, see hints.PrefixKind.
func RLPPrefixKind(_ *big.Int, inputs, outputs []*big.Int) error {
	if err := arity("rlp prefix", inputs, outputs, 1, 1); err != nil {
		return err
	}
	b := inputs[0]
	if b.Sign() < 0 || b.Cmp(big.NewInt(0xff)) > 0 {
		return &hints.InvalidValueError{Name: "prefix", Value: b.String(), Reason: "not a byte"}
	}
	outputs[0].SetInt64(int64(hints.ClassifyPrefix(byte(b.Uint64()))))
	return nil
}
