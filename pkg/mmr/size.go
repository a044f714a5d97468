package mmr

import (
	"fmt"
	"math/bits"
)

// InvalidSizeError reports a node count that cannot be decomposed into
// perfect subtrees.
type InvalidSizeError struct {
	Size      uint64
	Remainder uint64
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("mmr: size %d is not a valid mmr size (remainder %d)", e.Size, e.Remainder)
}

// PeakPositions returns the 1-indexed positions of the peaks of an MMR
// holding size nodes, tallest subtree first.
func PeakPositions(size uint64) ([]uint64, error) {
	if size == 0 {
		return nil, nil
	}

	var (
		peaks     []uint64
		remaining = size
		offset    uint64
	)
	for h := bits.Len64(size); h >= 1; h-- {
		subtree := uint64(1)<<uint(h) - 1
		if subtree <= remaining {
			remaining -= subtree
			offset += subtree
			peaks = append(peaks, offset)
		}
	}
	if remaining != 0 {
		return nil, &InvalidSizeError{Size: size, Remainder: remaining}
	}
	return peaks, nil
}

// IsValidSize reports whether some sequence of appends to an empty MMR
// yields exactly n nodes. The empty MMR (n = 0) counts as valid.
func IsValidSize(n uint64) bool {
	for h := bits.Len64(n); h >= 0; h-- {
		nodes := uint64(1)<<uint(h+1) - 1
		if nodes <= n {
			n -= nodes
		}
	}
	return n == 0
}

// MaxLeaves is the largest leaf count whose node count fits in a uint64.
const MaxLeaves = 1 << 63

// SizeForLeaves is the node count after appending leaves values. Leaf
// counts above MaxLeaves fail with ErrTooManyLeaves.
func SizeForLeaves(leaves uint64) (uint64, error) {
	if leaves > MaxLeaves {
		return 0, fmt.Errorf("%w: %d leaves", ErrTooManyLeaves, leaves)
	}
	return 2*leaves - uint64(bits.OnesCount64(leaves)), nil
}
