package keccak

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Pair returns keccak256( pad32(a) ‖ pad32(b) ) as a big-endian word, the
// same digest solidity produces for keccak256(abi.encodePacked(a, b)) on two
// uint256 values.
func Pair(a, b *uint256.Int) *uint256.Int {
	var buf [64]byte

	// first 32 bytes = a, last 32 bytes = b
	ab, bb := a.Bytes32(), b.Bytes32()
	copy(buf[:32], ab[:])
	copy(buf[32:], bb[:])

	h := crypto.Keccak256Hash(buf[:]) // legacy Keccak-256
	return new(uint256.Int).SetBytes32(h[:])
}
