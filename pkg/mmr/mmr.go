// Package mmr implements an append-only Merkle Mountain Range over a
// pluggable two-input hash.
//
// Nodes are stored in post-order, which is the natural append order, and
// addressed by 1-indexed position. Appending a leaf behaves like
// incrementing a binary counter over the leaf count: every carry merges the
// two most recent peaks into a parent node.
package mmr

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/holiman/uint256"

	"github.com/yourorg/mmrhints/pkg/felt"
)

var (
	ErrEmpty              = errors.New("mmr: empty accumulator has no root")
	ErrPositionOutOfRange = errors.New("mmr: node position out of range")
	ErrTooManyLeaves      = errors.New("mmr: node count overflows 64 bits")
)

// Accumulator is not safe for concurrent use.
type Accumulator[T any] struct {
	hasher    Hasher[T]
	nodes     []T
	leafCount uint64
}

func New[T any](h Hasher[T]) *Accumulator[T] {
	return &Accumulator[T]{hasher: h}
}

// NewKeccak returns an accumulator over 256-bit words.
func NewKeccak() *Accumulator[uint256.Int] {
	return New[uint256.Int](Keccak{})
}

// NewPoseidon returns an accumulator over Stark field elements.
func NewPoseidon() *Accumulator[felt.Felt] {
	return New[felt.Felt](Poseidon{})
}

// NewPoseidon2 returns an accumulator over BN254 scalar field elements.
func NewPoseidon2() *Accumulator[fr.Element] {
	return New[fr.Element](NewPoseidon2Hasher())
}

// Size is the number of stored nodes, leaves and parents alike.
func (a *Accumulator[T]) Size() uint64 { return uint64(len(a.nodes)) }

func (a *Accumulator[T]) LeafCount() uint64 { return a.leafCount }

// Peaks returns the peak positions, tallest subtree first. The node list
// is only ever grown by Append, so a size that fails to decompose means
// the accumulator is corrupt and Peaks panics.
func (a *Accumulator[T]) Peaks() []uint64 {
	peaks, err := PeakPositions(a.Size())
	if err != nil {
		panic(err)
	}
	return peaks
}

// Nodes returns the values at the given 1-indexed positions.
func (a *Accumulator[T]) Nodes(positions []uint64) ([]T, error) {
	out := make([]T, len(positions))
	for i, p := range positions {
		if p == 0 || p > a.Size() {
			return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrPositionOutOfRange, p, a.Size())
		}
		out[i] = a.nodes[p-1]
	}
	return out, nil
}

// PeakValues returns the values of the current peaks, tallest first.
func (a *Accumulator[T]) PeakValues() []T {
	vals, err := a.Nodes(a.Peaks())
	if err != nil {
		panic(err)
	}
	return vals
}

// Append adds a leaf plus one parent node per completed subtree and returns
// the new size.
func (a *Accumulator[T]) Append(leaf T) uint64 {
	peaks := a.PeakValues()
	merges := bits.TrailingZeros64(^a.leafCount) // trailing ones

	a.leafCount++
	a.nodes = append(a.nodes, leaf)

	last := leaf
	for i := 0; i < merges; i++ {
		last = a.hasher.Hash(peaks[len(peaks)-1-i], last)
		a.nodes = append(a.nodes, last)
	}
	return a.Size()
}

// Root bags the peaks from the shortest one towards the tallest and binds
// the node count into the result.
func (a *Accumulator[T]) Root() (T, error) {
	var zero T
	if len(a.nodes) == 0 {
		return zero, ErrEmpty
	}

	peaks := a.PeakValues()
	acc := peaks[len(peaks)-1]
	for i := len(peaks) - 2; i >= 0; i-- {
		acc = a.hasher.Hash(peaks[i], acc)
	}
	return a.hasher.Hash(a.hasher.Size(a.Size()), acc), nil
}
