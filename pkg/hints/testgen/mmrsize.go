package testgen

import (
	"strconv"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/yourorg/mmrhints/pkg/hints"
	"github.com/yourorg/mmrhints/pkg/mmr"
	"github.com/yourorg/mmrhints/pkg/vm"
)

// sampleRange is the half-open range random sizes are drawn from.
const sampleRange = 20_000_000

// validSize is the predicate the test programs check against. They reject
// the empty MMR, so zero is reported invalid here.
func validSize(n uint64) bool {
	return n != 0 && mmr.IsValidSize(n)
}

func writeSizes(h hints.Host, sizes []uint64, valid func(uint64) bool) error {
	expected := make([]vm.MaybeRelocatable, len(sizes))
	inputs := make([]vm.MaybeRelocatable, len(sizes))
	for i, n := range sizes {
		expected[i] = vm.Uint(b2u(valid(n)))
		inputs[i] = vm.Uint(n)
	}
	if err := hints.WriteVector(h, "expected_output", expected); err != nil {
		return err
	}
	return hints.WriteVector(h, "input_array", inputs)
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// randomSizes samples num_sizes distinct sizes and their validity.
func (g *generator) randomSizes(h hints.Host, _ *hints.Scope) error {
	n, err := hints.ReadUint64(h, "num_sizes")
	if err != nil {
		return err
	}
	if n > sampleRange {
		return &hints.InvalidValueError{Name: "num_sizes", Value: strconv.FormatUint(n, 10), Reason: "sample larger than population"}
	}
	log.Info("Testing is_valid_mmr_size against random sizes", "count", n, "range", sampleRange)

	seen := make(map[uint64]struct{}, n)
	sizes := make([]uint64, 0, n)
	for uint64(len(sizes)) < n {
		s := g.rng.Uint64N(sampleRange)
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		sizes = append(sizes, s)
	}
	return writeSizes(h, sizes, validSize)
}

// sequentialSizes builds an MMR of num_elems leaves and reports, for every
// size up to the final one, whether an append produced it.
func sequentialSizes(verbose bool) hints.Func {
	return func(h hints.Host, _ *hints.Scope) error {
		n, err := hints.ReadUint64(h, "num_elems")
		if err != nil {
			return err
		}
		log.Info("Testing is_valid_mmr_size by creating the mmr", "elems", n)

		acc := mmr.NewKeccak()
		produced := make(map[uint64]bool)
		for i := uint64(0); i < n; i++ {
			produced[acc.Append(*uint256.NewInt(i))] = true
		}

		sizes := make([]uint64, acc.Size()+1)
		for i := range sizes {
			sizes[i] = uint64(i)
			if verbose {
				log.Debug("MMR size", "size", i, "valid", produced[uint64(i)])
			}
		}
		return writeSizes(h, sizes, func(s uint64) bool { return produced[s] })
	}
}
