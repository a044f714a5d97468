package testgen

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/yourorg/mmrhints/pkg/felt"
	"github.com/yourorg/mmrhints/pkg/hints"
)

func printBreakline(hints.Host, *hints.Scope) error {
	log.Info("")
	return nil
}

func printPass(hints.Host, *hints.Scope) error {
	log.Info("Pass!")
	return nil
}

func printNs(h hints.Host, _ *hints.Scope) error {
	bigN, err := hints.ReadFelt(h, "N")
	if err != nil {
		return err
	}
	n, err := hints.ReadFelt(h, "n")
	if err != nil {
		return err
	}
	log.Info("print", "N", bigN.String(), "n", n.String())
	return nil
}

// assignBitLength writes a fixed, possibly negative, bit_length.
func assignBitLength(v int64) hints.Func {
	return func(h hints.Host, _ *hints.Scope) error {
		return hints.WriteFelt(h, "bit_length", felt.FromInt64(v))
	}
}
