package hints

import (
	"fmt"

	"github.com/yourorg/mmrhints/pkg/felt"
)

// PrefixKind is the item class an RLP prefix byte announces.
type PrefixKind int

const (
	SingleByte  PrefixKind = iota // 0x00..0x7f
	ShortString                   // 0x80..0xb7
	LongString                    // 0xb8..0xbf
	ShortList                     // 0xc0..0xf7
	LongList                      // 0xf8..0xff
)

func (k PrefixKind) String() string {
	switch k {
	case SingleByte:
		return "single byte"
	case ShortString:
		return "short string"
	case LongString:
		return "long string"
	case ShortList:
		return "short list"
	case LongList:
		return "long list"
	}
	return fmt.Sprintf("PrefixKind(%d)", int(k))
}

// ClassifyPrefix returns the kind announced by an RLP prefix byte. All
// ranges are inclusive.
func ClassifyPrefix(b byte) PrefixKind {
	switch {
	case b <= 0x7f:
		return SingleByte
	case b <= 0xb7:
		return ShortString
	case b <= 0xbf:
		return LongString
	case b <= 0xf7:
		return ShortList
	default:
		return LongList
	}
}

func readPrefix(h Host, name string) (byte, error) {
	f, err := ReadFelt(h, name)
	if err != nil {
		return 0, err
	}
	v, err := felt.Uint64(f)
	if err != nil || v > 0xff {
		return 0, &InvalidValueError{Name: name, Value: f.String(), Reason: "not a byte"}
	}
	return byte(v), nil
}

// classify writes the index of the prefix kind in accepted to dst and
// fails for any other kind.
func classify(src, dst string, accepted ...PrefixKind) Func {
	return func(h Host, _ *Scope) error {
		prefix, err := readPrefix(h, src)
		if err != nil {
			return err
		}
		kind := ClassifyPrefix(prefix)
		for i, k := range accepted {
			if k == kind {
				return WriteFelt(h, dst, felt.FromUint64(uint64(i)))
			}
		}
		return &InvalidValueError{
			Name:   src,
			Value:  fmt.Sprintf("%#x", prefix),
			Reason: fmt.Sprintf("unsupported prefix (%s)", kind),
		}
	}
}

// rlpBigintSize writes at ap whether byte is a single-byte item.
func rlpBigintSize(h Host, _ *Scope) error {
	b, err := ReadFelt(h, "byte")
	if err != nil {
		return err
	}
	return WriteAP(h, 0, felt.FromBool(felt.Cmp(b, felt.FromUint64(0x7f)) <= 0))
}
