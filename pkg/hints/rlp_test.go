package hints

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"
)

func prefixOf(t *testing.T, v interface{}) byte {
	t.Helper()
	enc, err := rlp.EncodeToBytes(v)
	require.NoError(t, err)
	return enc[0]
}

func TestClassifyEncodedPrefixes(t *testing.T) {
	long := bytes.Repeat([]byte{0xaa}, 56)
	for _, tc := range []struct {
		name string
		v    interface{}
		want PrefixKind
	}{
		{"zero byte", []byte{0x00}, SingleByte},
		{"largest single byte", []byte{0x7f}, SingleByte},
		{"smallest string byte", []byte{0x80}, ShortString},
		{"empty string", []byte{}, ShortString},
		{"55 byte string", long[:55], ShortString},
		{"56 byte string", long, LongString},
		{"empty list", []uint{}, ShortList},
		{"short list", []uint{1, 2, 3}, ShortList},
		{"long list", [][]byte{long}, LongList},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyPrefix(prefixOf(t, tc.v)))
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	for _, tc := range []struct {
		b    byte
		want PrefixKind
	}{
		{0x7f, SingleByte}, {0x80, ShortString},
		{0xb7, ShortString}, {0xb8, LongString},
		{0xbf, LongString}, {0xc0, ShortList},
		{0xf7, ShortList}, {0xf8, LongList},
		{0xff, LongList},
	} {
		require.Equal(t, tc.want, ClassifyPrefix(tc.b), "%#x", tc.b)
	}
}

func TestItemTypeHints(t *testing.T) {
	for _, tc := range []struct {
		code, src, dst string
		prefix, want   uint64
	}{
		{codeFirstItemType, "first_item_prefix", "first_item_type", 0x7f, 0},
		{codeFirstItemType, "first_item_prefix", "first_item_type", 0x80, 1},
		{codeSecondItemType, "second_item_prefix", "second_item_type", 0xb7, 1},
		{codeSecondItemType, "second_item_prefix", "second_item_type", 0xb8, 2},
		{codeItemType, "item_prefix", "item_type", 0x00, 0},
		{codeItemType, "item_prefix", "item_type", 0xa0, 1},
		{codeLongShortList, "list_prefix", "long_short_list", 0xf7, 0},
		{codeLongShortList, "list_prefix", "long_short_list", 0xf8, 1},
	} {
		f := newFrame(t, map[string]uint64{tc.src: tc.prefix})
		declare(t, f, tc.dst)
		require.NoError(t, run(tc.code, f, nil))
		require.Equal(t, tc.want, lookupUint(t, f, tc.dst), "%s=%#x", tc.src, tc.prefix)
	}
}

func TestItemTypeRejects(t *testing.T) {
	for _, tc := range []struct {
		code, src, dst string
		prefix         uint64
	}{
		{codeFirstItemType, "first_item_prefix", "first_item_type", 0xb8},
		{codeSecondItemType, "second_item_prefix", "second_item_type", 0xc0},
		{codeItemType, "item_prefix", "item_type", 0xbf},
		{codeLongShortList, "list_prefix", "long_short_list", 0xbf},
		{codeLongShortList, "list_prefix", "long_short_list", 0x100},
	} {
		f := newFrame(t, map[string]uint64{tc.src: tc.prefix})
		declare(t, f, tc.dst)
		err := run(tc.code, f, nil)
		require.ErrorIs(t, err, ErrOutOfRange, "%s=%#x", tc.src, tc.prefix)

		var invalid *InvalidValueError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, tc.src, invalid.Name)
		if tc.prefix <= 0xff {
			require.Equal(t, fmt.Sprintf("%#x", tc.prefix), invalid.Value)
			require.Contains(t, invalid.Reason, "unsupported prefix")
		}
	}
}

func TestRLPBigintSize(t *testing.T) {
	f := newFrame(t, map[string]uint64{"byte": 127})
	require.NoError(t, run(codeRLPBigintSize, f, nil))
	require.Equal(t, uint64(1), apUint(t, f, 0))

	f = newFrame(t, map[string]uint64{"byte": 128})
	require.NoError(t, run(codeRLPBigintSize, f, nil))
	require.Equal(t, uint64(0), apUint(t, f, 0))
}
