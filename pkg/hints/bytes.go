package hints

import (
	"fmt"

	"github.com/yourorg/mmrhints/pkg/felt"
)

// TrailingZeroBytes counts the zero bytes at the end of the 32-byte
// big-endian encoding of x. Zero has 32.
func TrailingZeroBytes(x felt.Felt) uint64 {
	b := felt.Big(x)
	if b.Sign() == 0 {
		return 32
	}
	return uint64(b.TrailingZeroBits() / 8)
}

func trailingZeroesBytes(h Host, _ *Scope) error {
	x, err := ReadFelt(h, "x")
	if err != nil {
		return err
	}
	return WriteFelt(h, "trailing_zeroes_bytes", felt.FromUint64(TrailingZeroBytes(x)))
}

// writeWord writes the width big-endian bytes of word at ap, ap+1, ...
func writeWord(width int) Func {
	return func(h Host, _ *Scope) error {
		w, err := ReadFelt(h, "word")
		if err != nil {
			return err
		}
		word := felt.Big(w)
		if word.BitLen() > 8*width {
			return &AssertionError{Msg: fmt.Sprintf("Word value %s exceeds %d bits.", word, 8*width)}
		}
		for i, b := range word.FillBytes(make([]byte, width)) {
			if err := WriteAP(h, uint64(i), felt.FromUint64(uint64(b))); err != nil {
				return err
			}
		}
		return nil
	}
}
