package testgen

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"

	"github.com/yourorg/mmrhints/internal/keccak"
	"github.com/yourorg/mmrhints/pkg/felt"
	"github.com/yourorg/mmrhints/pkg/hints"
	"github.com/yourorg/mmrhints/pkg/vm"
)

const (
	randomPairs = 256
	maxBits     = 256
)

// legacyKeccak hashes pad32(x) ‖ pad32(y) with a second keccak
// implementation, used to cross-check keccak.Pair.
func legacyKeccak(x, y *uint256.Int) *uint256.Int {
	d := sha3.NewLegacyKeccak256()
	xb, yb := x.Bytes32(), y.Bytes32()
	d.Write(xb[:])
	d.Write(yb[:])
	return new(uint256.Int).SetBytes(d.Sum(nil))
}

func pairs(vals []*uint256.Int) []vm.MaybeRelocatable {
	out := make([]vm.MaybeRelocatable, 0, 2*len(vals))
	for _, v := range vals {
		low, high := hints.SplitUint256(v)
		out = append(out, vm.Int(low), vm.Int(high))
	}
	return out
}

// encodePacked writes keccak256(abi.encodePacked(x, y)) test vectors: 256
// pairs of random bit lengths, then one pair of equal bit length for each
// length from 1 to 256.
func (g *generator) encodePacked(h hints.Host, _ *hints.Scope) error {
	var xs, ys []*uint256.Int
	for i := 0; i < randomPairs; i++ {
		xs = append(xs, g.randomBits(g.between(1, maxBits)))
		ys = append(ys, g.randomBits(g.between(1, maxBits)))
	}
	for bits := 1; bits <= maxBits; bits++ {
		xs = append(xs, g.randomBits(bits))
		ys = append(ys, g.randomBits(bits))
	}

	results := make([]*uint256.Int, len(xs))
	for i := range xs {
		results[i] = keccak.Pair(xs[i], ys[i])
		if other := legacyKeccak(xs[i], ys[i]); !other.Eq(results[i]) {
			return &hints.AssertionError{Msg: fmt.Sprintf("keccak mismatch at %d: %s != %s", i, results[i].Hex(), other.Hex())}
		}
	}

	if err := hints.WriteVector(h, "x_array", pairs(xs)); err != nil {
		return err
	}
	if err := hints.WriteVector(h, "y_array", pairs(ys)); err != nil {
		return err
	}
	if err := hints.WriteVector(h, "keccak_result_array", pairs(results)); err != nil {
		return err
	}
	log.Debug("Wrote encode-packed test vector", "len", len(results))
	return hints.WriteFelt(h, "len", felt.FromUint64(uint64(len(results))))
}
