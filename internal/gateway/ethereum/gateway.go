package ethereum

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/pkg/safe"
	"github.com/onrik/ethrpc"
)

// ErrNotFound is returned when the node has no block or receipt for the request.
var ErrNotFound = errors.New("not found")

// Gateway serves blocks and receipts from an EVM JSON-RPC node.
type Gateway struct {
	client EthClient
}

// NewGateway creates a Gateway over client.
func NewGateway(client EthClient) *Gateway {
	return &Gateway{client: client}
}

// BlockWithTransactions returns the block at number including full transaction bodies.
func (g *Gateway) BlockWithTransactions(ctx context.Context, number uint64) (*model.Block, error) {
	src, err := g.getBlock(ctx, number, true)
	if err != nil {
		return nil, err
	}
	block, err := ConvertBlock(src)
	if err != nil {
		return nil, fmt.Errorf("convert block %d: %w", number, err)
	}
	return block, nil
}

// BlockHeader returns the header of the block at number.
func (g *Gateway) BlockHeader(ctx context.Context, number uint64) (*model.BlockHeader, error) {
	src, err := g.getBlock(ctx, number, false)
	if err != nil {
		return nil, err
	}
	header, err := ConvertHeader(src)
	if err != nil {
		return nil, fmt.Errorf("convert block %d header: %w", number, err)
	}
	return &header, nil
}

// Receipt returns the receipt of the transaction with txHash.
func (g *Gateway) Receipt(ctx context.Context, txHash string) (*model.Receipt, error) {
	src, err := call(ctx, func() (*ethrpc.TransactionReceipt, error) {
		return g.client.EthGetTransactionReceipt(txHash)
	})
	if err != nil {
		return nil, fmt.Errorf("get receipt %s: %w", txHash, err)
	}
	// ethrpc decodes a null result into an empty receipt.
	if src == nil || src.TransactionHash == "" {
		return nil, fmt.Errorf("receipt %s: %w", txHash, ErrNotFound)
	}
	return ConvertReceipt(src)
}

func (g *Gateway) getBlock(ctx context.Context, number uint64, withTransactions bool) (*ethrpc.Block, error) {
	n, err := safe.Int(number)
	if err != nil {
		return nil, fmt.Errorf("block number %d exceeds rpc limit: %w", number, err)
	}
	src, err := call(ctx, func() (*ethrpc.Block, error) {
		return g.client.EthGetBlockByNumber(n, withTransactions)
	})
	if err != nil {
		return nil, fmt.Errorf("get block %d: %w", number, err)
	}
	if src == nil {
		return nil, fmt.Errorf("block %d: %w", number, ErrNotFound)
	}
	return src, nil
}

// call runs fn and returns early when ctx is done. ethrpc has no context
// support, so an abandoned call keeps running until its HTTP timeout.
func call[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := fn()
		done <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-done:
		return r.value, r.err
	}
}
