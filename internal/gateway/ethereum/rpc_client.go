package ethereum

import (
	"time"

	"github.com/onrik/ethrpc"
	"go.uber.org/ratelimit"
)

// RPCClient wraps an ethrpc client with rate limiting and metrics instrumentation.
type RPCClient struct {
	client     EthClient
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client. A nil limiter disables rate limiting.
func NewRPCClient(client EthClient, limiter ratelimit.Limiter, rpcMetrics RPCMetrics) *RPCClient {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &RPCClient{
		client:     client,
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
	}
}

// NewLimiter returns a limiter allowing rps requests per second, unlimited when rps <= 0.
func NewLimiter(rps int) ratelimit.Limiter {
	if rps <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(rps)
}

// EthGetBlockByNumber returns the block at number, with full transactions when requested.
func (r *RPCClient) EthGetBlockByNumber(number int, withTransactions bool) (block *ethrpc.Block, err error) {
	operation := "get_block"
	if withTransactions {
		operation = "get_block_with_txs"
	}
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe(operation, err, started)
	}()
	return r.client.EthGetBlockByNumber(number, withTransactions)
}

// EthGetTransactionReceipt returns the receipt of a transaction.
func (r *RPCClient) EthGetTransactionReceipt(hash string) (receipt *ethrpc.TransactionReceipt, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_receipt", err, started)
	}()
	return r.client.EthGetTransactionReceipt(hash)
}
