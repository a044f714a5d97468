package hints

import (
	"math/big"

	"github.com/yourorg/mmrhints/pkg/felt"
)

// bitLength writes the bit length of operand src into bit_length.
func bitLength(src string) Func {
	return func(h Host, _ *Scope) error {
		x, err := ReadFelt(h, src)
		if err != nil {
			return err
		}
		return WriteFelt(h, "bit_length", felt.FromUint64(uint64(felt.BitLen(x))))
	}
}

func writeDivRem(h Host, value, div felt.Felt) error {
	q, r, err := felt.DivRem(value, div)
	if err != nil {
		return err
	}
	if err := WriteFelt(h, "q", q); err != nil {
		return err
	}
	return WriteFelt(h, "r", r)
}

// divmodBy divides operand value by the operand (or constant) div.
func divmodBy(div string) Func {
	return func(h Host, _ *Scope) error {
		value, err := ReadFelt(h, "value")
		if err != nil {
			return err
		}
		d, err := readFeltOrConstant(h, div)
		if err != nil {
			return err
		}
		return writeDivRem(h, value, d)
	}
}

func divmod8(h Host, _ *Scope) error {
	value, err := ReadFelt(h, "value")
	if err != nil {
		return err
	}
	return writeDivRem(h, value, felt.FromUint64(8))
}

// powCut divides array[start_word+i] by pow_cut.
func powCut(h Host, _ *Scope) error {
	array, err := ReadPtr(h, "array")
	if err != nil {
		return err
	}
	start, err := ReadUint64(h, "start_word")
	if err != nil {
		return err
	}
	i, err := ReadUint64(h, "i")
	if err != nil {
		return err
	}
	cut, err := ReadFelt(h, "pow_cut")
	if err != nil {
		return err
	}

	addr := array.Add(start + i)
	cell, err := h.Get(addr)
	if err != nil {
		return &InvalidValueError{Name: "array", Value: addr.String(), Reason: err.Error()}
	}
	value, ok := cell.Felt()
	if !ok {
		return &InvalidValueError{Name: "array", Value: addr.String(), Reason: "holds a pointer"}
	}
	return writeDivRem(h, value, cut)
}

// assertInteger accepts any divisor in (0, PRIME]. Every canonical field
// element is below the prime, so only zero is rejected.
func assertInteger(name string) Func {
	return func(h Host, _ *Scope) error {
		d, err := readFeltOrConstant(h, name)
		if err != nil {
			return err
		}
		if d.IsZero() {
			return &InvalidValueError{Name: name, Value: "0x0", Reason: "is out of the valid range"}
		}
		return nil
	}
}

// carry computes the two carry bits of a 256-bit addition done in
// SHIFT-sized halves. The high sum includes the low carry.
func carry(h Host, _ *Scope) error {
	var in [4]*big.Int
	for i, name := range []string{"a.low", "a.high", "b.low", "b.high"} {
		v, err := ReadFelt(h, name)
		if err != nil {
			return err
		}
		in[i] = felt.Big(v)
	}
	s, err := readFeltOrConstant(h, "SHIFT")
	if err != nil {
		return err
	}
	shift := felt.Big(s)

	sumLow := new(big.Int).Add(in[0], in[2])
	carryLow := sumLow.Cmp(shift) >= 0
	sumHigh := new(big.Int).Add(in[1], in[3])
	if carryLow {
		sumHigh.Add(sumHigh, big.NewInt(1))
	}
	carryHigh := sumHigh.Cmp(shift) >= 0

	if err := writeBool(h, "carry_low", carryLow); err != nil {
		return err
	}
	return writeBool(h, "carry_high", carryHigh)
}
