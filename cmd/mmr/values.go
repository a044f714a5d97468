package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/holiman/uint256"
	"github.com/tidwall/gjson"

	"github.com/yourorg/mmrhints/pkg/felt"
)

// loadValues returns the positional arguments, or, with --input, the
// elements of the JSON array found at path in that file.
func loadValues(args []string, input, path string) ([]string, error) {
	if input == "" {
		return args, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: invalid JSON", input)
	}
	res := gjson.GetBytes(data, path)
	if path == "" {
		res = gjson.ParseBytes(data)
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("%s: %q is not an array", input, path)
	}
	var out []string
	for _, v := range res.Array() {
		out = append(out, v.String())
	}
	return append(out, args...), nil
}

// parseInt accepts decimal or 0x-prefixed hex.
func parseInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid value %q", s)
	}
	return v, nil
}

func parseWords(vals []string) ([]uint256.Int, error) {
	out := make([]uint256.Int, len(vals))
	for i, s := range vals {
		b, err := parseInt(s)
		if err != nil {
			return nil, err
		}
		w, overflow := uint256.FromBig(b)
		if overflow {
			return nil, fmt.Errorf("value %q exceeds 256 bits", s)
		}
		out[i] = *w
	}
	return out, nil
}

func parseFelts(vals []string) ([]felt.Felt, error) {
	out := make([]felt.Felt, len(vals))
	for i, s := range vals {
		b, err := parseInt(s)
		if err != nil {
			return nil, err
		}
		if b.Cmp(felt.Modulus()) >= 0 {
			return nil, fmt.Errorf("value %q is not a field element", s)
		}
		out[i] = felt.FromBig(b)
	}
	return out, nil
}

// parseScalars parses BN254 scalar field elements for the poseidon2 hasher.
func parseScalars(vals []string) ([]fr.Element, error) {
	out := make([]fr.Element, len(vals))
	for i, s := range vals {
		b, err := parseInt(s)
		if err != nil {
			return nil, err
		}
		if b.Cmp(fr.Modulus()) >= 0 {
			return nil, fmt.Errorf("value %q is not a bn254 scalar", s)
		}
		out[i].SetBigInt(b)
	}
	return out, nil
}
