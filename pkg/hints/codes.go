package hints

import "fmt"

// Hint texts, verbatim as they appear in the proved program.
const (
	codeBitLengthX   = `ids.bit_length = ids.x.bit_length()`
	codeBitLengthMMR = `ids.bit_length = ids.mmr_len.bit_length()`

	codeMMRLeftChild         = `ids.in_mmr = 1 if ids.left_child <= ids.mmr_len else 0`
	codePositionInMMRArray   = `ids.is_position_in_mmr_array= 1 if ids.position > ids.mmr_offset else 0`
	codeRLPBigintSize        = `memory[ap] = 1 if ids.byte <= 127 else 0`
	codePrintVar             = `print(ids.x)`
	codeValueDiv32           = `ids.q, ids.r = divmod(ids.value, ids.DIV_32)`
	codeValue8               = `ids.q, ids.r = divmod(ids.value, 8)`
	codeValueDiv             = `ids.q, ids.r = divmod(ids.value, ids.div)`
	codePowCut               = `ids.q, ids.r = divmod(memory[ids.array + ids.start_word + ids.i], ids.pow_cut)`
	codeIsZero               = `ids.is_zero = 1 if ids.nibble_index <= (ids.key_leading_zeroes_nibbles - 1) else 0`
	codeNibbleFromLow        = `ids.get_nibble_from_low = 1 if (0 <= ids.nibble_index <= 31 and ids.key_nibbles <= 32) or (32 <= ids.nibble_index <= 63 and ids.key_nibbles > 32) else 0`
	codeNeedsNextWord        = `ids.needs_next_word = 1 if ids.n_bytes > ids.avl_bytes_in_word else 0`
	codeNeedsNextWordEnding  = `ids.needs_next_word = 1 if ids.n_ending_bytes > ids.avl_bytes_in_word else 0`
	codeWordsLoop            = `memory[ap] = 1 if (ids.n_words_to_handle_in_loop - ids.n_words_handled) == 0 else 0`
	codeAssertLeadingZeroes  = `assert ids.res == expected_leading_zeroes, f"Expected {expected_leading_zeroes} but got {ids.res}"`
	codeAssertExpectedNibble = `assert ids.extracted_nibble_at_pos == expected_nibble, f"extracted_nibble_at_pos={ids.extracted_nibble_at_pos} expected_nibble={expected_nibble}"`
)

const codeLongShortList = `from tools.py.hints import is_short_list, is_long_list
if is_short_list(ids.list_prefix):
    ids.long_short_list = 0
elif is_long_list(ids.list_prefix):
    ids.long_short_list = 1
else:
    raise ValueError(f"Invalid list prefix: {hex(ids.list_prefix)}. Not a recognized list type.")`

const codeFirstItemType = `from tools.py.hints import is_single_byte, is_short_string
if is_single_byte(ids.first_item_prefix):
    ids.first_item_type = 0
elif is_short_string(ids.first_item_prefix):
    ids.first_item_type = 1
else:
    raise ValueError(f"Unsupported first item prefix: {hex(ids.first_item_prefix)}.")`

const codeSecondItemType = `from tools.py.hints import is_single_byte, is_short_string, is_long_string
if is_single_byte(ids.second_item_prefix):
    ids.second_item_type = 0
elif is_short_string(ids.second_item_prefix):
    ids.second_item_type = 1
elif is_long_string(ids.second_item_prefix):
    ids.second_item_type = 2
else:
    raise ValueError(f"Unsupported second item prefix: {hex(ids.second_item_prefix)}.")`

const codeItemType = `from tools.py.hints import is_single_byte, is_short_string
if is_single_byte(ids.item_prefix):
    ids.item_type = 0
elif is_short_string(ids.item_prefix):
    ids.item_type = 1
else:
    raise ValueError(f"Unsupported item prefix: {hex(ids.item_prefix)} for a branch node. Should be single byte or short string only.")`

const codeExpectedLeadingZeroes = `from tools.py.utils import parse_int_to_bytes, count_leading_zero_nibbles_from_hex
reversed_hex = parse_int_to_bytes(ids.x.low + (2 ** 128) * ids.x.high)[::-1].hex()
expected_leading_zeroes = count_leading_zero_nibbles_from_hex(reversed_hex[1:] if ids.cut_nibble == 1 else reversed_hex)`

const codeExpectedNibble = `key_hex = ids.key_leading_zeroes_nibbles * '0' + hex(ids.key.low + (2 ** 128) * ids.key.high)[2:]
expected_nibble = int(key_hex[ids.nibble_index + ids.key_leading_zeroes_nibbles], 16)`

const codeAssertIntegerDiv32 = `from starkware.cairo.common.math_utils import assert_integer
assert_integer(ids.DIV_32)
if not (0 < ids.DIV_32 <= PRIME):
    raise ValueError(f'div={hex(ids.DIV_32)} is out of the valid range.')`

const codeAssertIntegerDiv = `from starkware.cairo.common.math_utils import assert_integer
assert_integer(ids.div)
if not (0 < ids.div <= PRIME):
    raise ValueError(f'div={hex(ids.div)} is out of the valid range.')`

const codeCarry = `sum_low = ids.a.low + ids.b.low
ids.carry_low = 1 if sum_low >= ids.SHIFT else 0
sum_high = ids.a.high + ids.b.high + ids.carry_low
ids.carry_high = 1 if sum_high >= ids.SHIFT else 0`

const codeTrailingZeroesBytes = `from tools.py.utils import count_trailing_zero_bytes_from_int
ids.trailing_zeroes_bytes = count_trailing_zero_bytes_from_int(ids.x)`

// Word widths with a write hint.
const (
	minWordWidth = 2
	maxWordWidth = 7
)

func codeWriteWord(width int) string {
	return fmt.Sprintf("from tools.py.hints import write_word_to_memory\nwrite_word_to_memory(ids.word, %d, memory, ap)", width)
}
