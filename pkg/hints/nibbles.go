package hints

import (
	"math/big"

	"github.com/yourorg/mmrhints/pkg/felt"
)

func readBigs(h Host, names ...string) ([]*big.Int, error) {
	out := make([]*big.Int, len(names))
	for i, name := range names {
		f, err := ReadFelt(h, name)
		if err != nil {
			return nil, err
		}
		out[i] = felt.Big(f)
	}
	return out, nil
}

// isZeroNibble reports whether nibble_index falls inside the key's
// leading zero nibbles.
func isZeroNibble(h Host, _ *Scope) error {
	v, err := readBigs(h, "nibble_index", "key_leading_zeroes_nibbles")
	if err != nil {
		return err
	}
	return writeBool(h, "is_zero", v[0].Cmp(v[1]) < 0)
}

func inRange(v *big.Int, lo, hi int64) bool {
	return v.Cmp(big.NewInt(lo)) >= 0 && v.Cmp(big.NewInt(hi)) <= 0
}

// nibbleFromLow reports whether nibble_index addresses the low word of a
// key of key_nibbles nibbles.
func nibbleFromLow(h Host, _ *Scope) error {
	v, err := readBigs(h, "nibble_index", "key_nibbles")
	if err != nil {
		return err
	}
	index, nibbles := v[0], v[1]
	short := nibbles.Cmp(big.NewInt(32)) <= 0
	low := (inRange(index, 0, 31) && short) || (inRange(index, 32, 63) && !short)
	return writeBool(h, "get_nibble_from_low", low)
}

func needsNextWord(bytesName string) Func {
	return func(h Host, _ *Scope) error {
		v, err := readBigs(h, bytesName, "avl_bytes_in_word")
		if err != nil {
			return err
		}
		return writeBool(h, "needs_next_word", v[0].Cmp(v[1]) > 0)
	}
}

// wordsLoop writes at ap whether every word has been handled.
func wordsLoop(h Host, _ *Scope) error {
	total, err := ReadFelt(h, "n_words_to_handle_in_loop")
	if err != nil {
		return err
	}
	handled, err := ReadFelt(h, "n_words_handled")
	if err != nil {
		return err
	}
	return WriteAP(h, 0, felt.FromBool(total.Equal(&handled)))
}
