package hints

import "fmt"

// Library returns a fresh catalog holding every production hint. All of
// its routines are deterministic in their operands.
func Library() Catalog {
	c := Catalog{
		codeBitLengthX:   bitLength("x"),
		codeBitLengthMMR: bitLength("mmr_len"),

		codeMMRLeftChild:       leftChildInMMR,
		codePositionInMMRArray: positionInMMRArray,

		codeRLPBigintSize:  rlpBigintSize,
		codeLongShortList:  classify("list_prefix", "long_short_list", ShortList, LongList),
		codeFirstItemType:  classify("first_item_prefix", "first_item_type", SingleByte, ShortString),
		codeSecondItemType: classify("second_item_prefix", "second_item_type", SingleByte, ShortString, LongString),
		codeItemType:       classify("item_prefix", "item_type", SingleByte, ShortString),

		codeIsZero:              isZeroNibble,
		codeNibbleFromLow:       nibbleFromLow,
		codeNeedsNextWord:       needsNextWord("n_bytes"),
		codeNeedsNextWordEnding: needsNextWord("n_ending_bytes"),
		codeWordsLoop:           wordsLoop,

		codeExpectedLeadingZeroes: expectedLeadingZeroes,
		codeExpectedNibble:        expectedNibble,
		codeAssertLeadingZeroes:   assertScope("res", "expected_leading_zeroes", leadingZeroesMsg),
		codeAssertExpectedNibble:  assertScope("extracted_nibble_at_pos", "expected_nibble", nibbleMsg),

		codeValueDiv32: divmodBy("DIV_32"),
		codeValue8:     divmod8,
		codeValueDiv:   divmodBy("div"),
		codePowCut:     powCut,

		codeAssertIntegerDiv32: assertInteger("DIV_32"),
		codeAssertIntegerDiv:   assertInteger("div"),
		codeCarry:              carry,

		codeTrailingZeroesBytes: trailingZeroesBytes,

		codePrintVar: printVar,
	}
	for w := minWordWidth; w <= maxWordWidth; w++ {
		c[codeWriteWord(w)] = writeWord(w)
	}
	return c
}

func leadingZeroesMsg(got, want string) string {
	return fmt.Sprintf("Expected %s but got %s", want, got)
}

func nibbleMsg(got, want string) string {
	return fmt.Sprintf("extracted_nibble_at_pos=%s expected_nibble=%s", got, want)
}
