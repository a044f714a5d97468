package mmr

import (
	"github.com/NethermindEth/juno/core/crypto"
	junofelt "github.com/NethermindEth/juno/core/felt"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"
	"github.com/holiman/uint256"

	"github.com/yourorg/mmrhints/internal/keccak"
	"github.com/yourorg/mmrhints/pkg/felt"
)

// Hasher is the two-input combining function an Accumulator is built on.
// Hash must be deterministic and is expected to be order sensitive.
type Hasher[T any] interface {
	Hash(left, right T) T
	// Size lifts a node count into the value domain so it can be bound
	// into the root.
	Size(n uint64) T
}

// Keccak combines 256-bit words as keccak256(pad32(left) ‖ pad32(right)).
type Keccak struct{}

func (Keccak) Hash(left, right uint256.Int) uint256.Int {
	return *keccak.Pair(&left, &right)
}

func (Keccak) Size(n uint64) uint256.Int {
	return *uint256.NewInt(n)
}

// Poseidon is the Starknet poseidon_hash(left, right) over the Stark
// prime field: the Hades permutation of (left, right, 2), first lane out.
type Poseidon struct{}

func (Poseidon) Hash(left, right felt.Felt) felt.Felt {
	h := crypto.Poseidon(toJuno(&left), toJuno(&right))
	b := h.Bytes()
	var out felt.Felt
	out.SetBytes(b[:])
	return out
}

func (Poseidon) Size(n uint64) felt.Felt {
	return felt.FromUint64(n)
}

func toJuno(e *felt.Felt) *junofelt.Felt {
	b := e.Bytes()
	return new(junofelt.Felt).SetBytes(b[:])
}

// Poseidon2 parameters for the BN254 scalar field: width 2, 6 full rounds,
// 50 partial rounds.
const (
	poseidon2Width         = 2
	poseidon2FullRounds    = 6
	poseidon2PartialRounds = 50
)

// Poseidon2 combines BN254 scalar field elements with the Poseidon2
// permutation used as a 2-to-1 compression function: permute (left, right)
// and add right back into the second lane.
type Poseidon2 struct {
	perm *poseidon2.Permutation
}

func NewPoseidon2Hasher() *Poseidon2 {
	return &Poseidon2{perm: poseidon2.NewPermutation(poseidon2Width, poseidon2FullRounds, poseidon2PartialRounds)}
}

func (p *Poseidon2) Hash(left, right fr.Element) fr.Element {
	state := [poseidon2Width]fr.Element{left, right}
	if err := p.perm.Permutation(state[:]); err != nil {
		// only returned for a state of the wrong width
		panic(err)
	}
	state[1].Add(&state[1], &right)
	return state[1]
}

func (p *Poseidon2) Size(n uint64) fr.Element {
	var e fr.Element
	e.SetUint64(n)
	return e
}
