package hints

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"github.com/yourorg/mmrhints/pkg/felt"
)

// LeadingZeroNibbles encodes the minimal big-endian bytes of v in reverse
// byte order as hex and counts the leading '0' characters. With cut the
// first character is dropped before counting. Zero encodes to the empty
// string and has no leading zeros.
func LeadingZeroNibbles(v *uint256.Int, cut bool) uint64 {
	b := slices.Clone(v.Bytes())
	slices.Reverse(b)
	s := hex.EncodeToString(b)
	if cut && len(s) > 0 {
		s = s[1:]
	}
	return uint64(len(s) - len(strings.TrimLeft(s, "0")))
}

// KeyNibble returns the nibble at index of the minimal hex encoding of key,
// false if index runs past the encoding.
func KeyNibble(key *uint256.Int, index uint64) (uint64, bool) {
	s := strings.TrimPrefix(key.Hex(), "0x")
	if index >= uint64(len(s)) {
		return 0, false
	}
	n, err := strconv.ParseUint(s[index:index+1], 16, 8)
	return n, err == nil
}

// expectedLeadingZeroes stores the leading zero nibble count of x in scope.
func expectedLeadingZeroes(h Host, s *Scope) error {
	x, err := ReadUint256(h, "x")
	if err != nil {
		return err
	}
	cut, err := ReadFelt(h, "cut_nibble")
	if err != nil {
		return err
	}
	one := felt.FromUint64(1)
	s.Set("expected_leading_zeroes", felt.FromUint64(LeadingZeroNibbles(x, cut.Equal(&one))))
	return nil
}

// expectedNibble stores the nibble of key at nibble_index in scope.
func expectedNibble(h Host, s *Scope) error {
	key, err := ReadUint256(h, "key")
	if err != nil {
		return err
	}
	// the zero padding only shifts the index it is then added to
	if _, err := ReadFelt(h, "key_leading_zeroes_nibbles"); err != nil {
		return err
	}
	index, err := ReadUint64(h, "nibble_index")
	if err != nil {
		return err
	}
	n, ok := KeyNibble(key, index)
	if !ok {
		return &InvalidValueError{Name: "nibble_index", Value: fmt.Sprint(index), Reason: "past the end of key " + key.Hex()}
	}
	s.Set("expected_nibble", felt.FromUint64(n))
	return nil
}

// assertScope compares an operand with a value stored by an earlier hint.
func assertScope(operand, key string, msg func(got, want string) string) Func {
	return func(h Host, s *Scope) error {
		got, err := ReadFelt(h, operand)
		if err != nil {
			return err
		}
		want, err := s.Get(key)
		if err != nil {
			return err
		}
		if !got.Equal(&want) {
			return &AssertionError{Msg: msg(got.String(), want.String())}
		}
		return nil
	}
}
