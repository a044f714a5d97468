package hints

import "github.com/ethereum/go-ethereum/log"

func printVar(h Host, _ *Scope) error {
	v, err := read(h, "x")
	if err != nil {
		return err
	}
	log.Info("print", "x", v.String())
	return nil
}
