package testgen

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/yourorg/mmrhints/pkg/felt"
)

// randomWord draws a uniform 256-bit word.
func (g *generator) randomWord() *uint256.Int {
	return &uint256.Int{g.rng.Uint64(), g.rng.Uint64(), g.rng.Uint64(), g.rng.Uint64()}
}

// randomBits draws a value of exactly bits bits, 1 <= bits <= 256.
func (g *generator) randomBits(bits int) *uint256.Int {
	v := g.randomWord()
	if bits < 256 {
		mask := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bits))
		mask.SubUint64(mask, 1)
		v.And(v, mask)
	}
	top := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bits-1))
	return v.Or(v, top)
}

// randomFelt draws a field element. Reducing a 256-bit word is close
// enough to uniform for test vectors.
func (g *generator) randomFelt() felt.Felt {
	return felt.FromBig(new(big.Int).Mod(g.randomWord().ToBig(), felt.Modulus()))
}

// between draws from [lo, hi].
func (g *generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
