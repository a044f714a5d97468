// Package blocks feeds historical block hashes from a JSON-RPC endpoint
// into a Keccak MMR.
package blocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/yourorg/mmrhints/pkg/mmr"
)

var (
	ErrBlockNotFound = errors.New("blocks: block not found")
	ErrBrokenChain   = errors.New("blocks: parent hash mismatch")
	ErrEmptyRange    = errors.New("blocks: empty block range")
)

// Header holds the header fields the accumulator needs.
type Header struct {
	Number     hexutil.Uint64 `json:"number"`
	Hash       common.Hash    `json:"hash"`
	ParentHash common.Hash    `json:"parentHash"`
}

func FetchHeader(ctx context.Context, cli *ethclient.Client, block uint64) (*Header, error) {
	var hdr *Header
	if err := cli.Client().CallContext(ctx, &hdr, "eth_getBlockByNumber", hexutil.Uint64(block), false); err != nil {
		return nil, fmt.Errorf("fetch block %d: %w", block, err)
	}
	if hdr == nil {
		return nil, fmt.Errorf("%w: %d", ErrBlockNotFound, block)
	}
	return hdr, nil
}

func FetchBlockHash(ctx context.Context, cli *ethclient.Client, block uint64) (common.Hash, error) {
	hdr, err := FetchHeader(ctx, cli, block)
	if err != nil {
		return common.Hash{}, err
	}
	return hdr.Hash, nil
}

// Accumulate appends the hashes of blocks from..to (inclusive) to acc in
// ascending order, checking that each block links to the previous one.
// It returns the accumulator size after the last append.
func Accumulate(ctx context.Context, cli *ethclient.Client, from, to uint64, acc *mmr.Accumulator[uint256.Int]) (uint64, error) {
	if from > to {
		return 0, fmt.Errorf("%w: %d > %d", ErrEmptyRange, from, to)
	}

	var prev common.Hash
	for n := from; n <= to; n++ {
		hdr, err := FetchHeader(ctx, cli, n)
		if err != nil {
			return acc.Size(), err
		}
		if n > from && hdr.ParentHash != prev {
			return acc.Size(), fmt.Errorf("%w: block %d has parent %s, want %s", ErrBrokenChain, n, hdr.ParentHash, prev)
		}
		size := acc.Append(*new(uint256.Int).SetBytes32(hdr.Hash[:]))
		log.Debug("Appended block hash", "number", n, "hash", hdr.Hash, "size", size)
		prev = hdr.Hash

		// guard the n++ wrap at the top of the range
		if n == to {
			break
		}
	}
	return acc.Size(), nil
}
