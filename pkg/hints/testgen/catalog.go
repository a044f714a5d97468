// Package testgen holds the hints used by test programs to build random
// test vectors. Unlike the production library they draw from a random
// source and are not reproducible unless that source is seeded.
package testgen

import (
	"math/rand/v2"

	"github.com/yourorg/mmrhints/pkg/hints"
)

// Catalog returns the test-vector hints, drawing randomness from rng.
func Catalog(rng *rand.Rand) hints.Catalog {
	g := &generator{rng: rng}
	return hints.Catalog{
		codePrintBreakline: printBreakline,
		codePrintPass:      printPass,

		codeGenerateRandom:            g.randomSizes,
		codeGenerateSequential:        sequentialSizes(false),
		codeGenerateSequentialVerbose: sequentialSizes(true),

		codeBitLength140:         assignBitLength(140),
		codeBitLength2500:        assignBitLength(2500),
		codeBitLengthNegativeOne: assignBitLength(-1),
		codePrintNs:              printNs,

		codeEncodePacked: g.encodePacked,
		codeConstructMMR: g.constructMMR,
	}
}

// NewRand returns a source seeded from the operating system.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

type generator struct {
	rng *rand.Rand
}
