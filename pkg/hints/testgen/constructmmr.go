package testgen

import (
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/yourorg/mmrhints/pkg/felt"
	"github.com/yourorg/mmrhints/pkg/hints"
	"github.com/yourorg/mmrhints/pkg/mmr"
	"github.com/yourorg/mmrhints/pkg/vm"
)

const maxValues = 200

// constructMMR builds a random MMR for each hasher, writes its size, peaks
// and root, then appends a random batch of values and writes the expected
// root and size after the append.
//
// The batch is appended from its last element to its first, which is the
// order the program consumes the arrays in.
func (g *generator) constructMMR(h hints.Host, _ *hints.Scope) error {
	previous := g.between(1, maxValues)
	n := g.between(1, maxValues)
	if err := hints.WriteFelt(h, "n_values_to_append", felt.FromUint64(uint64(n))); err != nil {
		return err
	}

	newPoseidon := make([]felt.Felt, n)
	newKeccak := make([]*uint256.Int, n)
	for i := range newPoseidon {
		newPoseidon[i] = g.randomFelt()
	}
	for i := range newKeccak {
		newKeccak[i] = g.randomWord()
	}
	if err := hints.WriteVector(h, "poseidon_hash_array", felts(newPoseidon)); err != nil {
		return err
	}
	if err := hints.WriteVector(h, "keccak_hash_array", pairs(newKeccak)); err != nil {
		return err
	}

	pAcc, kAcc := mmr.NewPoseidon(), mmr.NewKeccak()
	for i := 0; i < previous; i++ {
		pAcc.Append(g.randomFelt())
	}
	for i := 0; i < previous; i++ {
		kAcc.Append(*g.randomWord())
	}

	if err := hints.WriteFelt(h, "mmr_offset", felt.FromUint64(pAcc.Size())); err != nil {
		return err
	}
	if err := hints.WriteVector(h, "previous_peaks_values_poseidon", felts(pAcc.PeakValues())); err != nil {
		return err
	}
	if err := hints.WriteVector(h, "previous_peaks_values_keccak", pairs(words(kAcc.PeakValues()))); err != nil {
		return err
	}
	if err := writeRoots(h, pAcc, kAcc, "mmr_last_root_poseidon", "mmr_last_root_keccak"); err != nil {
		return err
	}

	for i := n - 1; i >= 0; i-- {
		pAcc.Append(newPoseidon[i])
		kAcc.Append(*newKeccak[i])
	}
	if err := writeRoots(h, pAcc, kAcc, "expected_new_root_poseidon", "expected_new_root_keccak"); err != nil {
		return err
	}
	log.Debug("Constructed test MMRs", "previous", previous, "appended", n, "size", pAcc.Size())
	return hints.WriteFelt(h, "expected_new_len", felt.FromUint64(pAcc.Size()))
}

func writeRoots(h hints.Host, pAcc *mmr.Accumulator[felt.Felt], kAcc *mmr.Accumulator[uint256.Int], pName, kName string) error {
	pRoot, err := pAcc.Root()
	if err != nil {
		return err
	}
	kRoot, err := kAcc.Root()
	if err != nil {
		return err
	}
	if err := hints.WriteFelt(h, pName, pRoot); err != nil {
		return err
	}
	return hints.WriteUint256(h, kName, &kRoot)
}

func felts(vals []felt.Felt) []vm.MaybeRelocatable {
	out := make([]vm.MaybeRelocatable, len(vals))
	for i, v := range vals {
		out[i] = vm.Int(v)
	}
	return out
}

func words(vals []uint256.Int) []*uint256.Int {
	out := make([]*uint256.Int, len(vals))
	for i := range vals {
		out[i] = &vals[i]
	}
	return out
}
