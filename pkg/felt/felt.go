// Package felt holds the field element type used for every host memory cell.
package felt

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/holiman/uint256"
)

// Curve is the curve whose base field backs host memory and the Poseidon
// accumulator.
func Curve() ecc.ID { return ecc.STARK_CURVE }

// Felt is an element of the Stark prime field, p = 2^251 + 17·2^192 + 1.
type Felt = fp.Element

var (
	ErrOverflow       = errors.New("felt: value does not fit")
	ErrDivisionByZero = errors.New("felt: division by zero")
)

var (
	two128  = new(big.Int).Lsh(big.NewInt(1), 128)
	mask128 = new(uint256.Int).Rsh(new(uint256.Int).SetAllOne(), 128)
)

// Modulus returns a copy of the field prime.
func Modulus() *big.Int { return fp.Modulus() }

func FromUint64(v uint64) Felt {
	var f Felt
	f.SetUint64(v)
	return f
}

// FromInt64 maps negative values to p - |v|.
func FromInt64(v int64) Felt {
	var f Felt
	f.SetInt64(v)
	return f
}

// FromBig reduces v modulo the field prime.
func FromBig(v *big.Int) Felt {
	var f Felt
	f.SetBigInt(v)
	return f
}

func FromBool(b bool) Felt {
	if b {
		return FromUint64(1)
	}
	return FromUint64(0)
}

// Big returns the canonical representative of f in [0, p).
func Big(f Felt) *big.Int {
	return f.BigInt(new(big.Int))
}

// Uint64 returns f as a uint64 or ErrOverflow.
func Uint64(f Felt) (uint64, error) {
	if !f.IsUint64() {
		return 0, ErrOverflow
	}
	return f.Uint64(), nil
}

// BitLen is the bit length of the canonical representative; zero has length 0.
func BitLen(f Felt) int {
	return Big(f).BitLen()
}

// Cmp compares the canonical representatives of a and b.
func Cmp(a, b Felt) int {
	return Big(a).Cmp(Big(b))
}

// DivRem performs integer division on the canonical representatives.
func DivRem(a, b Felt) (q, r Felt, err error) {
	if b.IsZero() {
		return q, r, ErrDivisionByZero
	}
	qb, rb := new(big.Int).QuoRem(Big(a), Big(b), new(big.Int))
	return FromBig(qb), FromBig(rb), nil
}

// FromUint256 converts v without reduction; values >= p are rejected.
func FromUint256(v *uint256.Int) (Felt, error) {
	b := v.ToBig()
	if b.Cmp(fp.Modulus()) >= 0 {
		return Felt{}, ErrOverflow
	}
	return FromBig(b), nil
}

// ToUint256 returns the canonical representative of f as a 256-bit word.
func ToUint256(f Felt) *uint256.Int {
	b := f.Bytes()
	return new(uint256.Int).SetBytes32(b[:])
}

// Split128 splits v into its low and high 128-bit halves.
func Split128(v *uint256.Int) (low, high Felt) {
	lo := new(uint256.Int).And(v, mask128)
	hi := new(uint256.Int).Rsh(v, 128)
	low.SetBigInt(lo.ToBig())
	high.SetBigInt(hi.ToBig())
	return low, high
}

// Join128 rebuilds low + high·2^128. Each half must be below 2^128.
func Join128(low, high Felt) (*uint256.Int, error) {
	lo, hi := Big(low), Big(high)
	if lo.Cmp(two128) >= 0 || hi.Cmp(two128) >= 0 {
		return nil, ErrOverflow
	}
	v := new(big.Int).Lsh(hi, 128)
	v.Or(v, lo)
	out, _ := uint256.FromBig(v)
	return out, nil
}
